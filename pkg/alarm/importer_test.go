package alarm

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testAlarmClass = "SupportedAlarm"

func TestImportBuildsAlarmObjects(t *testing.T) {
	input := strings.NewReader(" 9001 , EQUIPMENT ,active\n\n9002,CELL, polled \n")

	inv, err := Import(input, testAlarmClass)
	require.NoError(t, err)
	require.Equal(t, []string{testAlarmClass}, inv.Classes())
	require.Equal(t, []string{
		"Device-1/FaultMgmt-1/SupportedAlarm-1",
		"Device-1/FaultMgmt-1/SupportedAlarm-2",
	}, inv.Leaves(testAlarmClass))

	first, ok := inv.Get(testAlarmClass, "Device-1/FaultMgmt-1/SupportedAlarm-1")
	require.True(t, ok)
	require.Equal(t, testAlarmClass, first.Class)
	require.Equal(t, "create", first.Operation)
	require.Equal(t, []string{"FaultIdn", "MocIdn", "ReportingMechanism"}, first.Params.Names())

	fault, _ := first.Params.Get("FaultIdn")
	require.Equal(t, "9001", fault, "surrounding spaces should be trimmed")
	moc, _ := first.Params.Get("MocIdn")
	require.Equal(t, "EQUIPMENT", moc)

	second, _ := inv.Get(testAlarmClass, "Device-1/FaultMgmt-1/SupportedAlarm-2")
	mechanism, _ := second.Params.Get("ReportingMechanism")
	require.Equal(t, "polled", mechanism)
}

func TestImportSkipsShortRows(t *testing.T) {
	input := strings.NewReader("9001,EQUIPMENT,active\nonly-one-column\n9003,CELL,active\n")

	inv, err := Import(input, testAlarmClass)
	require.NoError(t, err)
	require.Equal(t, 2, inv.TotalObjects())

	// Numbering follows kept rows, not input rows
	obj, ok := inv.Get(testAlarmClass, "Device-1/FaultMgmt-1/SupportedAlarm-2")
	require.True(t, ok)
	fault, _ := obj.Params.Get("FaultIdn")
	require.Equal(t, "9003", fault)
}

func TestImportIgnoresSurplusColumns(t *testing.T) {
	input := strings.NewReader("9001,EQUIPMENT,active,extra,columns\n")

	inv, err := Import(input, testAlarmClass)
	require.NoError(t, err)
	require.Equal(t, 1, inv.TotalObjects())

	obj, _ := inv.Get(testAlarmClass, "Device-1/FaultMgmt-1/SupportedAlarm-1")
	require.Equal(t, 3, obj.Params.Len())
}

func TestImportRejectsInvalidEncoding(t *testing.T) {
	_, err := Import(bytes.NewReader([]byte{0x39, 0xff, 0xfe, 0x0a}), testAlarmClass)
	require.ErrorIs(t, err, ErrEncoding)
}

func TestImportFailsOnMalformedRow(t *testing.T) {
	_, err := Import(strings.NewReader("9001,\"EQUIPMENT,active\n"), testAlarmClass)
	require.Error(t, err)
}

func TestImportEmptyInput(t *testing.T) {
	inv, err := Import(strings.NewReader(""), testAlarmClass)
	require.NoError(t, err)
	require.Equal(t, 0, inv.TotalObjects())
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "missing.csv"), testAlarmClass)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestImportFileReadsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alarms.csv")
	require.NoError(t, os.WriteFile(path, []byte("9001,EQUIPMENT,active\n"), 0644))

	inv, err := ImportFile(path, testAlarmClass)
	require.NoError(t, err)
	require.Equal(t, 1, inv.TotalObjects())
}
