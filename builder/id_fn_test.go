// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphmat/builder"
)

// TestIDFns verifies each IDFn on valid inputs and its panic contract on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},
		{"LetterLabelFn_a", builder.LetterLabelFn, 0, "a", false},
		{"LetterLabelFn_aa", builder.LetterLabelFn, 26, "aa", false},
		{"LetterLabelFn_neg", builder.LetterLabelFn, -1, "", true},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"HexIDFn_ff", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -1, "", true},
		{"PrefixedIDFn_e7", builder.PrefixedIDFn("e"), 7, "e7", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}
