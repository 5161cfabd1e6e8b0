package charinfo

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// NoValue is shown for attributes that have no meaningful value.
const NoValue = "--"

// MaxScalar is the largest Unicode code point.
const MaxScalar = 0x10FFFF

// Unit is one decoded item: a Unicode scalar value (lone surrogates included)
// or a single byte that could not be decoded as UTF-8.
//
// Units are comparable and immutable. The zero Unit marks the end of a stream.
type Unit struct {
	value   rune
	size    int
	invalid bool
}

// Scalar returns a Unit for a decoded code point occupying size bytes.
func Scalar(r rune, size int) Unit {
	if size < 1 {
		size = encodedLen(r)
	}
	return Unit{value: r, size: size}
}

// Rune returns a Unit for r with its canonical UTF-8 length.
func Rune(r rune) Unit {
	return Unit{value: r, size: encodedLen(r)}
}

// InvalidByte returns a Unit for a byte that is not part of a valid sequence.
func InvalidByte(b byte) Unit {
	return Unit{value: rune(b), size: 1, invalid: true}
}

// IsZero reports whether u is the end-of-stream sentinel.
func (u Unit) IsZero() bool { return u.size == 0 }

// Value returns the code point, or the raw byte value for invalid units.
func (u Unit) Value() rune { return u.value }

// Size returns the number of input bytes the unit was decoded from.
func (u Unit) Size() int { return u.size }

// Bytes returns the unit's byte sequence. Surrogates are encoded the same
// way they were accepted by the decoder.
func (u Unit) Bytes() []byte {
	if u.IsZero() {
		return nil
	}
	if u.invalid {
		return []byte{byte(u.value)}
	}
	return appendScalar(make([]byte, 0, 4), u.value)
}

// Text returns the unit as a string. Invalid bytes and surrogates have no
// printable form and yield "".
func (u Unit) Text() string {
	if u.IsZero() || u.invalid || u.IsSurrogate() {
		return ""
	}
	return string(u.value)
}

// GoString implements fmt.GoStringer for readable test failures.
func (u Unit) GoString() string {
	switch {
	case u.IsZero():
		return "charinfo.Unit{}"
	case u.invalid:
		return fmt.Sprintf("charinfo.InvalidByte(0x%02X)", u.value)
	default:
		return fmt.Sprintf("charinfo.Scalar(U+%04X, %d)", u.value, u.size)
	}
}

// IsInvalid reports whether u is a raw byte that failed to decode.
func (u Unit) IsInvalid() bool { return u.invalid }

// IsSurrogate reports whether u is a UTF-16 surrogate code point.
func (u Unit) IsSurrogate() bool {
	return !u.invalid && u.value >= 0xD800 && u.value <= 0xDFFF
}

// IsPrivateUse reports whether u is in a private use area.
func (u Unit) IsPrivateUse() bool { return u.Category() == "Co" }

// IsUnassigned reports whether u has no assigned character.
func (u Unit) IsUnassigned() bool { return u.Category() == "Cn" }

// IsControl reports whether u is a control or format character (Cc, Cf).
func (u Unit) IsControl() bool {
	cat := u.Category()
	return cat == "Cc" || cat == "Cf"
}

// IsASCIIC0 reports whether u is 0x00-0x1F or 0x7F.
func (u Unit) IsASCIIC0() bool {
	return !u.invalid && !u.IsZero() && (u.value < 0x20 || u.value == 0x7F)
}

// IsASCIIC1 reports whether u is 0x80-0x9F.
func (u Unit) IsASCIIC1() bool {
	return !u.invalid && u.value >= 0x80 && u.value <= 0x9F
}

// IsASCIIControl reports whether u is a C0 or C1 control code.
func (u Unit) IsASCIIControl() bool { return u.IsASCIIC0() || u.IsASCIIC1() }

// IsASCIILetter reports whether u is A-Z or a-z.
func (u Unit) IsASCIILetter() bool {
	if u.invalid {
		return false
	}
	return (u.value >= 'A' && u.value <= 'Z') || (u.value >= 'a' && u.value <= 'z')
}

// IsSpace reports whether u is a white space character.
func (u Unit) IsSpace() bool {
	return !u.invalid && !u.IsZero() && unicode.IsSpace(u.value)
}

// NeedsPlaceholder reports whether the literal glyph should not be printed.
func (u Unit) NeedsPlaceholder() bool {
	return u.IsControl() || u.IsSurrogate() || u.invalid || u.IsUnassigned() || u.IsSpace()
}

func encodedLen(r rune) int {
	switch {
	case r < 0:
		return 1
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// appendScalar is utf8.AppendRune without the surrogate substitution.
func appendScalar(p []byte, r rune) []byte {
	if r >= 0xD800 && r <= 0xDFFF {
		return append(p, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	}
	return utf8.AppendRune(p, r)
}
