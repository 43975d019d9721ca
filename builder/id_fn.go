// SPDX-License-Identifier: MIT
// Package: graphmat/builder
//
// id_fn.go: naming schemes shared by vertices (WithIDScheme) and edge labels (WithLabelScheme).
//
// Every IDFn must be pure and injective on the indices it is asked for;
// the panics below mark out-of-range indices as programmer error.

package builder

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of Latin letters used by the letter schemes.
const alphabetSize = 26

// IDFn generates an identifier from its zero-based index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= alphabetSize {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// LetterLabelFn returns spreadsheet-style lowercase labels: 0→"a", 25→"z", 26→"aa".
// Convenient for edge labels in hand-checked examples. Panics if idx < 0.
func LetterLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterLabelFn: idx must be ≥ 0, got %d", idx))
	}

	return excelColumn(idx, 'a')
}

// ExcelColumnIDFn returns the Excel column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}

	return excelColumn(idx, 'A')
}

func excelColumn(idx int, base rune) string {
	var runes []rune
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		runes = append(runes, base+rune(i%alphabetSize))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal form of idx. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithVertexPrefix names vertices prefix+index.
func WithVertexPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}

// WithSymbolIDs names vertices "A".."Z".
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithEdgePrefix labels edges prefix+index, e.g. "e0","e1",...
func WithEdgePrefix(prefix string) BuilderOption {
	return WithLabelScheme(PrefixedIDFn(prefix))
}

// WithLetterLabels labels edges "a","b",...,"z","aa",...
func WithLetterLabels() BuilderOption {
	return WithLabelScheme(LetterLabelFn)
}
