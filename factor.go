package cid

import "fmt"

// Factor is one unit of a previous-factor LZ77 parse: either a single
// literal byte, or a copy of Len bytes from an earlier source position. For
// a copy, Pos+Len never exceeds the cursor the factor was emitted at — the
// source lies entirely inside the already-processed prefix.
type Factor struct {
	Pos int32 // source position of a copy; -1 for a literal
	Len int32 // bytes covered; 1 for a literal
	Lit byte  // the literal byte; unused for a copy
}

// IsLiteral reports whether the factor is a single literal byte.
func (f Factor) IsLiteral() bool { return f.Pos < 0 }

// String renders the factor for diagnostics: "lit(0x61)" or "copy(0,4)".
func (f Factor) String() string {
	if f.IsLiteral() {
		return fmt.Sprintf("lit(0x%02x)", f.Lit)
	}
	return fmt.Sprintf("copy(%d,%d)", f.Pos, f.Len)
}

// literal builds the length-1 factor for the byte b.
func literal(b byte) Factor {
	return Factor{Pos: -1, Len: 1, Lit: b}
}

// copyFactor builds a back-reference factor.
func copyFactor(pos, length int) Factor {
	return Factor{Pos: int32(pos), Len: int32(length)}
}
