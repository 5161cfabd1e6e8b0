package charinfo

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

const propsCacheSize = 512

// props holds everything derived from a unit's raw value.
type props struct {
	category string
	name     string
	block    Block
	hasBlock bool
}

var (
	propsCache  = mustCache(propsCacheSize)
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
)

func mustCache(size int) *lru.Cache[Unit, *props] {
	c, err := lru.New[Unit, *props](size)
	if err != nil {
		panic(fmt.Sprintf("charinfo: create cache: %v", err))
	}
	return c
}

// CacheStats reports the classifier cache hit and miss counts.
func CacheStats() (hits, misses uint64) {
	return cacheHits.Load(), cacheMisses.Load()
}

// Category returns the two-letter general category, NoValue for invalid bytes.
func (u Unit) Category() string {
	if u.IsZero() {
		return NoValue
	}
	return u.props().category
}

// Name returns the Unicode name or a synthesized label.
func (u Unit) Name() string {
	if u.IsZero() {
		return NoValue
	}
	return u.props().name
}

// Block returns the block containing u. Invalid bytes have no block.
func (u Unit) Block() (Block, bool) {
	if u.IsZero() {
		return Block{}, false
	}
	p := u.props()
	return p.block, p.hasBlock
}

// IsCombining reports whether u has a non-zero canonical combining class.
func (u Unit) IsCombining() bool {
	if u.IsZero() || u.invalid || u.IsSurrogate() {
		return false
	}
	return norm.NFC.PropertiesString(string(u.value)).CCC() > 0
}

func (u Unit) props() *props {
	if p, ok := propsCache.Get(u); ok {
		cacheHits.Add(1)
		return p
	}
	cacheMisses.Add(1)
	p := classify(u)
	propsCache.Add(u, p)
	return p
}

func classify(u Unit) *props {
	p := &props{category: NoValue}
	if !u.invalid {
		p.category = generalCategory(u.value)
		p.block, p.hasBlock = FindBlock(u.value)
	}
	p.name = resolveName(u, p.category)
	return p
}

func resolveName(u Unit, category string) string {
	switch {
	case u.invalid:
		return fmt.Sprintf("NON UTF-8 BYTE 0x%02X", u.value)
	case u.IsSurrogate():
		return "UTF-16 SURROGATE"
	case category == "Co":
		return "PRIVATE USE"
	case category == "Cn":
		return "UNASSIGNED"
	case u.IsASCIIControl():
		cc, err := ResolveControlCode(u.value)
		if err != nil {
			return NoValue
		}
		page := "C0"
		if u.IsASCIIC1() {
			page = "C1"
		}
		return fmt.Sprintf("ASCII %s [%s] %s", page, cc.Abbr, cc.Name)
	}
	name := runenames.Name(u.value)
	if name == "" || strings.HasPrefix(name, "<") {
		name = algorithmicName(u.value)
	}
	if name == "" {
		return NoValue
	}
	return name
}

var (
	jamoL = []string{"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H"}
	jamoV = []string{"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I"}
	jamoT = []string{"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H"}
)

const (
	hangulBase  = 0xAC00
	hangulCount = 11172
	jamoVCount  = 21
	jamoTCount  = 28
)

// algorithmicName derives names the UCD lists only as ranges.
func algorithmicName(r rune) string {
	switch {
	case r >= hangulBase && r < hangulBase+hangulCount:
		s := int(r - hangulBase)
		l := s / (jamoVCount * jamoTCount)
		v := (s % (jamoVCount * jamoTCount)) / jamoTCount
		t := s % jamoTCount
		return "HANGUL SYLLABLE " + jamoL[l] + jamoV[v] + jamoT[t]
	case unicode.Is(unicode.Unified_Ideograph, r):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", r)
	case (r >= 0xF900 && r <= 0xFAFF) || (r >= 0x2F800 && r <= 0x2FA1F):
		return fmt.Sprintf("CJK COMPATIBILITY IDEOGRAPH-%04X", r)
	case (r >= 0x17000 && r <= 0x187F7) || (r >= 0x18D00 && r <= 0x18D08):
		return fmt.Sprintf("TANGUT IDEOGRAPH-%X", r)
	case r >= 0x18B00 && r <= 0x18CD5:
		return fmt.Sprintf("KHITAN SMALL SCRIPT CHARACTER-%X", r)
	case r >= 0x1B170 && r <= 0x1B2FB:
		return fmt.Sprintf("NUSHU CHARACTER-%X", r)
	}
	return ""
}
