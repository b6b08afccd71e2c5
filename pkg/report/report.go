// Package report renders the outcome of a reconciliation run as a CSV file
// and as colored terminal output.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/seshasai-1827/File-generation-proj/pkg/config"
	"github.com/seshasai-1827/File-generation-proj/pkg/reconcile"
	"github.com/seshasai-1827/File-generation-proj/pkg/scf"
)

// Status classifies one object row.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusCommon     Status = "COMMON"
	StatusCarried    Status = "CARRIED"
	StatusDeprecated Status = "DEPRECATED"
)

// Row is one object line of the report.
type Row struct {
	Class  string
	Object string
	Status Status
}

// Summary aggregates everything the report renders.
type Summary struct {
	BaseTotal     int
	SkeletalTotal int
	FinalTotal    int

	New        []reconcile.Pair
	Common     []reconcile.Pair
	Carried    []reconcile.Pair
	Deprecated []reconcile.Pair
	Changes    []reconcile.ValueChange

	// Rows holds one entry per final object in inventory order, followed by
	// the deprecated objects.
	Rows []Row
}

// BuildSummary assembles a Summary from the reconciliation result and the
// independent diff classification. The diff decides which objects are new
// and deprecated; the reconciler decides which are carried.
func BuildSummary(base, skeletal *scf.Inventory, res *reconcile.Result, newPairs, deprecated []reconcile.Pair) *Summary {
	s := &Summary{
		BaseTotal:     base.TotalObjects(),
		SkeletalTotal: skeletal.TotalObjects(),
		FinalTotal:    res.Final.TotalObjects(),
		New:           newPairs,
		Common:        res.Common,
		Carried:       res.Carried,
		Deprecated:    deprecated,
		Changes:       res.Changes,
	}

	newSet := pairSet(newPairs)
	carriedSet := pairSet(res.Carried)
	for _, class := range res.Final.Classes() {
		for _, leaf := range res.Final.Leaves(class) {
			p := reconcile.Pair{Class: class, Leaf: leaf}
			status := StatusCommon
			if _, ok := newSet[p]; ok {
				status = StatusNew
			} else if _, ok := carriedSet[p]; ok {
				status = StatusCarried
			}
			s.Rows = append(s.Rows, Row{Class: class, Object: leaf, Status: status})
		}
	}
	for _, p := range deprecated {
		s.Rows = append(s.Rows, Row{Class: p.Class, Object: p.Leaf, Status: StatusDeprecated})
	}
	return s
}

// WriteCSV renders the summary as CSV: a metrics section, an object section
// and a changed-parameter section. Classes matching the report's ignore
// patterns are left out of the object and parameter sections but still count
// toward the metrics.
func WriteCSV(w io.Writer, s *Summary, cfg *config.ReportConfig) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Comparison Summary"},
		{"Metric", "Value"},
		{"Base plan objects", strconv.Itoa(s.BaseTotal)},
		{"Skeletal plan objects", strconv.Itoa(s.SkeletalTotal)},
		{"Final plan objects", strconv.Itoa(s.FinalTotal)},
		{"New objects", strconv.Itoa(len(s.New))},
		{"Common objects", strconv.Itoa(len(s.Common))},
		{"Carried objects", strconv.Itoa(len(s.Carried))},
		{"Deprecated objects", strconv.Itoa(len(s.Deprecated))},
		{"Changed parameters", strconv.Itoa(len(s.Changes))},
		{""},
		{"Class", "Object", "Status"},
	}
	for _, row := range s.Rows {
		if cfg.ShouldIgnoreClass(row.Class) {
			continue
		}
		records = append(records, []string{row.Class, row.Object, string(row.Status)})
	}

	records = append(records,
		[]string{""},
		[]string{"Changed Parameters"},
		[]string{"Class", "Object", "Parameter", "Default Value", "Merged Value"},
	)
	for _, ch := range s.Changes {
		if cfg.ShouldIgnoreClass(ch.Class) {
			continue
		}
		records = append(records, []string{ch.Class, ch.Leaf, ch.Param, ch.Default, ch.Merged})
	}

	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write report record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV report to path.
func WriteFile(path string, s *Summary, cfg *config.ReportConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if err := WriteCSV(f, s, cfg); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return f.Close()
}

// PrintSummary writes the colored one-screen run summary.
func PrintSummary(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "Objects: base %d, skeletal %d, final %d\n", s.BaseTotal, s.SkeletalTotal, s.FinalTotal)
	fmt.Fprintf(w, "  %s %d\n", color.GreenString("%-11s", "new"), len(s.New))
	fmt.Fprintf(w, "  %s %d\n", color.CyanString("%-11s", "common"), len(s.Common))
	fmt.Fprintf(w, "  %s %d\n", color.YellowString("%-11s", "carried"), len(s.Carried))
	fmt.Fprintf(w, "  %s %d\n", color.RedString("%-11s", "deprecated"), len(s.Deprecated))
	fmt.Fprintf(w, "  %-11s %d\n", "changed", len(s.Changes))
}

// PrintRows writes one colored line per object row, honoring the report's
// ignore patterns.
func PrintRows(w io.Writer, s *Summary, cfg *config.ReportConfig) {
	for _, row := range s.Rows {
		if cfg.ShouldIgnoreClass(row.Class) {
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", colorStatus(row.Status), row.Class, row.Object)
	}
}

func colorStatus(st Status) string {
	switch st {
	case StatusNew:
		return color.GreenString("%-10s", string(st))
	case StatusCarried:
		return color.YellowString("%-10s", string(st))
	case StatusDeprecated:
		return color.RedString("%-10s", string(st))
	default:
		return color.CyanString("%-10s", string(st))
	}
}

func pairSet(pairs []reconcile.Pair) map[reconcile.Pair]struct{} {
	set := make(map[reconcile.Pair]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}
	return set
}
