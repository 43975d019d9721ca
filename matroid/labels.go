// SPDX-License-Identifier: MIT

package matroid

import (
	"sort"
	"strconv"
)

// FreshLabel returns the smallest decimal label ("0", "1", ...) not in used.
func FreshLabel(used []string) string {
	taken := toSet(used)
	for i := 0; ; i++ {
		l := strconv.Itoa(i)
		if _, ok := taken[l]; !ok {
			return l
		}
	}
}

// newElement resolves an extension label: "" yields a fresh one, a taken one fails.
func (m *Matroid) newElement(label string) (string, error) {
	if label == "" {
		return FreshLabel(m.groundset), nil
	}
	if m.Has(label) {
		return "", ErrDuplicateElement
	}

	return label, nil
}

func toSet(xs []string) map[string]struct{} {
	out := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		out[x] = struct{}{}
	}

	return out
}

// sortedUnique returns xs sorted with duplicates removed.
func sortedUnique(xs []string) []string {
	out := append([]string(nil), xs...)
	sort.Strings(out)
	n := 0
	for i, x := range out {
		if i > 0 && x == out[n-1] {
			continue
		}
		out[n] = x
		n++
	}

	return out[:n]
}

func setToSorted(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	sort.Strings(out)

	return out
}
