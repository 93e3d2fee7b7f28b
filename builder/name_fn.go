// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates a city name from its zero-based index.
// It must be a pure, deterministic function and must not produce
// whitespace, so names survive the cityfile format.
type NameFn func(idx int) string

// DefaultNamePrefix prefixes DefaultNameFn names.
const DefaultNamePrefix = "C"

// DefaultNameFn returns "C" followed by the decimal index, e.g. 0→"C0", 42→"C42".
// Never panics.
func DefaultNameFn(idx int) string {
	return DefaultNamePrefix + strconv.Itoa(idx)
}

// AlphanumericNameFn returns a base-36 string for idx, e.g. 0→"0", 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericNameFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnNameFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx). Panics if idx < 0.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
