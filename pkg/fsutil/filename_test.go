package fsutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFileName(t *testing.T) {
	valid := []string{
		"plan.xml",
		"merged_plan_v2.xml",
		"plan with spaces.xml",
		"UPPER.XML",
		"consul.xml", // merely starts with a device name
		"null.txt",
		"...xml",
	}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			require.NoError(t, ValidateFileName(name))
		})
	}

	invalid := []string{
		"",
		".",
		"..",
		"a/b.xml",
		`a\b.xml`,
		"a:b.xml",
		"a*b.xml",
		"a?.xml",
		`a"b.xml`,
		"a<b>.xml",
		"a|b.xml",
		"tab\tseparated.xml",
		"plan.xml ",
		"plan.",
		"CON",
		"con.xml",
		"Com1.txt",
		"lpt9",
		"aux.tar.gz",
		"NUL",
	}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			require.Error(t, ValidateFileName(name))
		})
	}
}
