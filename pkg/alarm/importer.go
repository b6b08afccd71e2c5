// Package alarm imports supported-alarm definitions from a delimited table
// into synthetic managed objects that replace the plan's alarm class.
package alarm

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/seshasai-1827/File-generation-proj/pkg/scf"
)

// ErrEncoding indicates the alarm table is not valid UTF-8.
var ErrEncoding = errors.New("alarm table is not valid UTF-8")

// leafFormat places synthesized alarm objects under the fault-management
// branch, numbered from 1 in row order.
const leafFormat = "Device-1/FaultMgmt-1/SupportedAlarm-%d"

// minColumns is the number of leading columns a row must carry:
// FaultIdn, MocIdn, ReportingMechanism.
const minColumns = 3

// ImportFile reads the alarm table at path. The file is required to exist:
// callers only reach this with an explicitly supplied path.
func ImportFile(path, class string) (*scf.Inventory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alarm table %s: %w", path, err)
	}
	defer file.Close()

	inv, err := Import(file, class)
	if err != nil {
		return nil, fmt.Errorf("import alarm table %s: %w", path, err)
	}
	return inv, nil
}

// Import parses a headerless comma-separated alarm table into an inventory
// holding one object per well-formed row under class. Rows with fewer than
// three columns are skipped with a warning; surplus columns are ignored.
// Invalid UTF-8 input fails with ErrEncoding.
func Import(r io.Reader, class string) (*scf.Inventory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, ErrEncoding
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows are validated per record below

	inv := scf.NewInventory()
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}
		row++
		if len(record) < minColumns {
			zap.S().Warnw("skipping short alarm row", "row", row, "columns", len(record))
			continue
		}

		obj := &scf.ManagedObject{Class: class, Operation: scf.DefaultOperation}
		obj.Params.Set("FaultIdn", strings.TrimSpace(record[0]))
		obj.Params.Set("MocIdn", strings.TrimSpace(record[1]))
		obj.Params.Set("ReportingMechanism", strings.TrimSpace(record[2]))

		leaf := fmt.Sprintf(leafFormat, inv.TotalObjects()+1)
		inv.Put(class, leaf, obj)
	}
	return inv, nil
}
