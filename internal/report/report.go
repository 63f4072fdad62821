// Package report models a completed scan as an immutable value the UI
// renders from.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mydehq/invcheck/internal/scan"
)

// Kind identifies which detector produced a report.
type Kind int

const (
	KindDuplicates Kind = iota + 1
	KindMissing
)

// Title returns the mode title shown in the UI header.
func (k Kind) Title() string {
	switch k {
	case KindDuplicates:
		return "Find duplicate images"
	case KindMissing:
		return "Find missing images"
	}
	return "Unknown"
}

// StatusLine returns the scan status text for the kind.
func (k Kind) StatusLine() string {
	switch k {
	case KindDuplicates:
		return "Scanning for duplicate images..."
	case KindMissing:
		return "Checking for missing images..."
	}
	return "Scanning..."
}

// Report is the result of one scan. Rows are in detector order and are
// never sorted afterwards.
type Report struct {
	Kind    Kind
	Columns []string
	Rows    [][]string
}

// Empty reports whether the scan found nothing.
func (r Report) Empty() bool {
	return len(r.Rows) == 0
}

// Banner returns the success or warning line for the result set.
func (r Report) Banner() string {
	switch r.Kind {
	case KindDuplicates:
		if r.Empty() {
			return "No duplicate images found."
		}
		return fmt.Sprintf("Duplicate images found: %d", len(r.Rows))
	case KindMissing:
		if r.Empty() {
			return "All item images exist."
		}
		return fmt.Sprintf("Missing images found: %d", len(r.Rows))
	}
	return ""
}

// FromDuplicates builds the duplicate-image report: one row per group
// with the base name, the member count, and the member files joined
// with ", ".
func FromDuplicates(groups []scan.Group) Report {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Name, strconv.Itoa(len(g.Files)), strings.Join(g.Files, ", ")})
	}
	return Report{
		Kind:    KindDuplicates,
		Columns: []string{"Image Name", "Files Count", "Files"},
		Rows:    rows,
	}
}

// FromMissing builds the missing-asset report: one single-column row
// per identifier, in catalog order.
func FromMissing(missing []string) Report {
	rows := make([][]string, 0, len(missing))
	for _, id := range missing {
		rows = append(rows, []string{id})
	}
	return Report{
		Kind:    KindMissing,
		Columns: []string{"Missing Image Item"},
		Rows:    rows,
	}
}
