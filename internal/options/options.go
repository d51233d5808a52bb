// Package options orders category choices for create/edit forms.
package options

import (
	"sort"

	apperrors "kassa/internal/errors"
)

// Sort orders a set of option labels for a select control. The input must
// be in creation order; the first element is the anchor, the long-lived
// default selection. The currently selected label, if any and not the
// anchor itself, moves to the very front, followed by the anchor, followed
// by the rest in alphabetical order. An empty selected string means no
// current selection. An empty input is an error: a form with no options
// to offer is a broken form, not an empty list.
func Sort(all []string, selected string) ([]string, error) {
	if len(all) == 0 {
		return nil, apperrors.ErrEmptyOptions
	}

	anchor := all[0]
	rest := make([]string, 0, len(all)-1)
	hasSelected := false
	for _, name := range all[1:] {
		if selected != "" && name == selected && !hasSelected {
			hasSelected = true
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)

	sorted := make([]string, 0, len(all))
	if hasSelected {
		sorted = append(sorted, selected)
	}
	sorted = append(sorted, anchor)
	sorted = append(sorted, rest...)
	return sorted, nil
}
