// Package renumber drops unused symbols and assigns the survivors new,
// contiguous values in a deterministic order.
package renumber

import (
	"sort"

	"github.com/lerenn/resource-cleaner/pkg/header"
)

// Entry is a symbol as declared, with its usage verdict.
type Entry struct {
	Name     string
	OldValue int
	Used     bool
}

// Plan is the outcome of the renumbering policy.
type Plan struct {
	// Before lists every symbol in declaration order.
	Before []Entry
	// After lists the kept symbols in byte-wise name order, numbered from 1.
	After   []header.Assignment
	Total   int
	Kept    int
	Removed int
}

// UsageLookup tells whether a symbol is used.
type UsageLookup interface {
	IsUsed(name string) bool
}

// Compute partitions defs by usage and renumbers the kept ones. Names are
// compared as bytes: uppercase sorts before lowercase.
func Compute(defs []header.Definition, usage UsageLookup) Plan {
	plan := Plan{
		Before: make([]Entry, 0, len(defs)),
		Total:  len(defs),
	}

	var kept []string
	for _, d := range defs {
		used := usage.IsUsed(d.Name)
		plan.Before = append(plan.Before, Entry{Name: d.Name, OldValue: d.Value, Used: used})
		if used {
			kept = append(kept, d.Name)
		}
	}

	sort.Strings(kept)

	plan.After = make([]header.Assignment, len(kept))
	for i, name := range kept {
		plan.After[i] = header.Assignment{Name: name, NewValue: i + 1}
	}

	plan.Kept = len(kept)
	plan.Removed = plan.Total - plan.Kept
	return plan
}
