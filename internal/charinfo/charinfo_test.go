package charinfo

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnitNames(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{"ascii letter", Rune('a'), "LATIN SMALL LETTER A"},
		{"nul", Rune(0x00), "ASCII C0 [NUL] NULL"},
		{"delete", Rune(0x7F), "ASCII C0 [DEL] DELETE"},
		{"c1 csi", Rune(0x9B), "ASCII C1 [CSI] CONTROL SEQUENCE INTRODUCER"},
		{"invalid byte", InvalidByte(0x80), "NON UTF-8 BYTE 0x80"},
		{"surrogate", Rune(0xD800), "UTF-16 SURROGATE"},
		{"private use", Rune(0xE000), "PRIVATE USE"},
		{"unassigned", Rune(0x0378), "UNASSIGNED"},
		{"cyrillic", Rune('Щ'), "CYRILLIC CAPITAL LETTER SHCHA"},
		{"cjk", Rune(0x4E00), "CJK UNIFIED IDEOGRAPH-4E00"},
		{"hangul", Rune(0xAC00), "HANGUL SYLLABLE GA"},
		{"hangul last", Rune(0xD7A3), "HANGUL SYLLABLE HIH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Name(); got != tt.want {
				t.Fatalf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnitCategory(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{Rune('a'), "Ll"},
		{Rune('Z'), "Lu"},
		{Rune('!'), "Po"},
		{Rune(' '), "Zs"},
		{Rune('7'), "Nd"},
		{Rune(0x0301), "Mn"},
		{Rune(0x00), "Cc"},
		{Rune(0x200B), "Cf"},
		{Rune(0xDC00), "Cs"},
		{Rune(0xF0000), "Co"},
		{Rune(0xFFFF), "Cn"},
		{InvalidByte(0xFF), NoValue},
	}
	for _, tt := range tests {
		if got := tt.unit.Category(); got != tt.want {
			t.Fatalf("%#v.Category() = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestClassificationIsIdempotent(t *testing.T) {
	for _, u := range []Unit{Rune('a'), Rune(0x1F333), InvalidByte(0xC0), Rune(0xD800)} {
		cat, name := u.Category(), u.Name()
		block, ok := u.Block()
		for i := 0; i < 3; i++ {
			b2, ok2 := u.Block()
			if u.Category() != cat || u.Name() != name || b2 != block || ok2 != ok {
				t.Fatalf("classification of %#v changed between calls", u)
			}
		}
	}
	hits, _ := CacheStats()
	if hits == 0 {
		t.Fatalf("CacheStats hits = 0, want repeated lookups to hit the cache")
	}
}

func TestUnitBytes(t *testing.T) {
	tests := []struct {
		unit Unit
		want []byte
	}{
		{Rune('a'), []byte{0x61}},
		{Rune(0xA1), []byte{0xC2, 0xA1}},
		{Rune(0x201D), []byte{0xE2, 0x80, 0x9D}},
		{Rune(0x1F333), []byte{0xF0, 0x9F, 0x8C, 0xB3}},
		{Rune(0xD800), []byte{0xED, 0xA0, 0x80}},
		{InvalidByte(0xE2), []byte{0xE2}},
	}
	for _, tt := range tests {
		if got := tt.unit.Bytes(); !bytes.Equal(got, tt.want) {
			t.Fatalf("%#v.Bytes() = % x, want % x", tt.unit, got, tt.want)
		}
		if tt.unit.Size() != len(tt.want) {
			t.Fatalf("%#v.Size() = %d, want %d", tt.unit, tt.unit.Size(), len(tt.want))
		}
	}
}

func TestPredicates(t *testing.T) {
	if !Rune(0x1B).IsASCIIC0() || Rune(0x1B).IsASCIIC1() {
		t.Fatalf("ESC should be C0 only")
	}
	if !Rune(0x85).IsASCIIC1() {
		t.Fatalf("NEL should be C1")
	}
	if InvalidByte(0x85).IsASCIIC1() {
		t.Fatalf("invalid byte 0x85 must not be treated as C1")
	}
	if !Rune('q').IsASCIILetter() || Rune('1').IsASCIILetter() {
		t.Fatalf("IsASCIILetter mismatch")
	}
	if !Rune(0x0301).IsCombining() || Rune('e').IsCombining() {
		t.Fatalf("IsCombining mismatch")
	}
	for _, u := range []Unit{Rune(' '), Rune(0x00), Rune(0xD800), InvalidByte(0x80), Rune(0x0378)} {
		if !u.NeedsPlaceholder() {
			t.Fatalf("%#v.NeedsPlaceholder() = false, want true", u)
		}
	}
	if Rune('a').NeedsPlaceholder() {
		t.Fatalf("'a' should print as is")
	}
	if !(Unit{}).IsZero() || Rune(0).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestFindBlock(t *testing.T) {
	tests := []struct {
		r      rune
		abbr   string
		name   string
		wantOK bool
	}{
		{0x41, "BaL", "Basic Latin", true},
		{0x0429, "Cyr", "Cyrillic", true},
		{0x10FFFF, "PUAᵇ", "Supplementary Private Use Area-B", true},
		{0x2FE0, "", "", false},
	}
	for _, tt := range tests {
		b, ok := FindBlock(tt.r)
		if ok != tt.wantOK {
			t.Fatalf("FindBlock(%X) ok = %v, want %v", tt.r, ok, tt.wantOK)
		}
		if b.Abbr != tt.abbr || b.Name != tt.name {
			t.Fatalf("FindBlock(%X) = %q/%q, want %q/%q", tt.r, b.Abbr, b.Name, tt.abbr, tt.name)
		}
	}
	if _, ok := InvalidByte(0x41).Block(); ok {
		t.Fatalf("invalid byte should have no block")
	}
}

func TestBlocksSorted(t *testing.T) {
	all := Blocks()
	for i := 1; i < len(all); i++ {
		if all[i].Start <= all[i-1].End {
			t.Fatalf("block %q overlaps or precedes %q", all[i].Name, all[i-1].Name)
		}
	}
	if MaxBlockAbbrLen() != 4 {
		t.Fatalf("MaxBlockAbbrLen = %d, want 4", MaxBlockAbbrLen())
	}
	if MaxBlockNameLen() < len("Supplementary Private Use Area-B") {
		t.Fatalf("MaxBlockNameLen = %d, too small", MaxBlockNameLen())
	}
}

func TestResolveLookups(t *testing.T) {
	cat, err := ResolveCategory("Ll")
	if err != nil || cat.Name != "Lowercase_Letter" {
		t.Fatalf("ResolveCategory(Ll) = %+v, %v", cat, err)
	}
	if fam, err := ResolveCategory("P"); err != nil || fam.Name != "Punctuation" {
		t.Fatalf("ResolveCategory(P) = %+v, %v", fam, err)
	}
	if _, err := ResolveCategory(NoValue); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("ResolveCategory(--) error = %v, want ErrUnknownCategory", err)
	}
	if _, err := ResolveControlCode('A'); !errors.Is(err, ErrUnknownControlCode) {
		t.Fatalf("ResolveControlCode('A') error = %v, want ErrUnknownControlCode", err)
	}
	if len(Categories()) != 30 {
		t.Fatalf("Categories() returned %d, want 30", len(Categories()))
	}
	if MaxCategoryNameLen() != len("Connector_Punctuation") {
		t.Fatalf("MaxCategoryNameLen = %d", MaxCategoryNameLen())
	}
}
