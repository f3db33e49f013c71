// Package: wgraph/builder
//
// id_fn.go - deterministic vertex naming schemes.
//
// Every scheme yields names without whitespace, so generated graphs can be
// replayed through the command protocol.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex name.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10 ("0","1",...).
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if uint(idx) >= uint(len(letters)) {
		panic(fmt.Sprintf("builder: symbol index %d outside A..Z", idx))
	}

	return letters[idx : idx+1]
}

// ExcelColumnIDFn maps idx to spreadsheet column labels:
// 0→"A", 25→"Z", 26→"AA", 27→"AB". Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	mustNonNegative("column", idx)
	// 14 letters cover every non-negative int64.
	var buf [14]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}

	return string(buf[pos:])
}

// SymbolNumberIDFn returns a scheme producing prefix+decimal ("v0","v1",...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustNonNegative(prefix, idx)

		return prefix + strconv.Itoa(idx)
	}
}

func mustNonNegative(scheme string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("builder: negative %q index %d", scheme, idx))
	}
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
