package trace

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// NameCount is one histogram row: a rule name and how many times it was
// entered during the session.
type NameCount struct {
	Name  string
	Count uint64
}

// Sorted returns the rows ordered by count descending, ties broken by name
// ascending, so summaries are deterministic. The input is not modified.
func Sorted(rows []NameCount) []NameCount {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b NameCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Summary renders the histogram as an aligned two-column table, most
// frequently entered rules first. The snapshot is left untouched.
func Summary(rows []NameCount) string {
	const nameHeader = "rule"
	const countHeader = "count"

	sorted := Sorted(rows)

	nameWidth := runewidth.StringWidth(nameHeader)
	for _, r := range sorted {
		if w := runewidth.StringWidth(r.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s : %s\n", runewidth.FillRight(nameHeader, nameWidth), countHeader)
	for _, r := range sorted {
		fmt.Fprintf(&sb, "%s : %d\n", runewidth.FillRight(r.Name, nameWidth), r.Count)
	}
	return sb.String()
}
