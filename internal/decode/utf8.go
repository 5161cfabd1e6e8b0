package decode

const utfMax = 4

type status int

const (
	statusOK status = iota
	statusInvalid
	statusShort
)

// decodeScalar decodes the first sequence in p. Unlike unicode/utf8 it
// accepts encoded surrogates (ED A0..BF xx), and it tells a malformed
// sequence apart from one that is only cut short by the end of p.
func decodeScalar(p []byte) (rune, int, status) {
	b0 := p[0]
	var (
		n      int
		r      rune
		lo, hi byte = 0x80, 0xBF
	)
	switch {
	case b0 < 0x80:
		return rune(b0), 1, statusOK
	case b0 < 0xC2:
		// continuation byte or overlong two-byte lead
		return 0, 1, statusInvalid
	case b0 < 0xE0:
		n, r = 2, rune(b0&0x1F)
	case b0 < 0xF0:
		n, r = 3, rune(b0&0x0F)
		if b0 == 0xE0 {
			lo = 0xA0
		}
	case b0 < 0xF5:
		n, r = 4, rune(b0&0x07)
		switch b0 {
		case 0xF0:
			lo = 0x90
		case 0xF4:
			hi = 0x8F
		}
	default:
		return 0, 1, statusInvalid
	}
	for i := 1; i < n; i++ {
		if i >= len(p) {
			return 0, 0, statusShort
		}
		c := p[i]
		if c < lo || c > hi {
			return 0, 1, statusInvalid
		}
		lo, hi = 0x80, 0xBF
		r = r<<6 | rune(c&0x3F)
	}
	return r, n, statusOK
}
