// Package fsutil holds small filesystem helpers shared by the commands.
package fsutil

import (
	"fmt"
	"strings"
)

// invalidChars are rejected in file names on every platform so generated
// plans stay portable.
const invalidChars = `<>:"/\|?*`

var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// ValidateFileName reports whether name is usable as a bare file name on all
// supported platforms. It rejects path separators, reserved characters,
// control characters, Windows device names and trailing dots or spaces.
func ValidateFileName(name string) error {
	switch name {
	case "", ".", "..":
		return fmt.Errorf("invalid file name %q", name)
	}
	if strings.ContainsAny(name, invalidChars) {
		return fmt.Errorf("file name %q contains a reserved character", name)
	}
	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("file name %q contains a control character", name)
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return fmt.Errorf("file name %q ends with a dot or space", name)
	}
	stem := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		stem = name[:i]
	}
	if _, ok := reservedNames[strings.ToUpper(stem)]; ok {
		return fmt.Errorf("file name %q is a reserved device name", name)
	}
	return nil
}
