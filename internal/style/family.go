package style

// Family is the colour class a general category renders with.
type Family int

const (
	FamilyLetter Family = iota
	FamilyControl
	FamilySurrogate
	FamilyPrivateUse
	FamilyUnassigned
	FamilySeparator
	FamilyNumber
	FamilyPunctuation
	FamilySymbol
	FamilyMark
	FamilyInvalid
)

var familyNames = [...]string{
	FamilyLetter:      "letter",
	FamilyControl:     "control",
	FamilySurrogate:   "surrogate",
	FamilyPrivateUse:  "private use",
	FamilyUnassigned:  "unassigned",
	FamilySeparator:   "separator",
	FamilyNumber:      "number",
	FamilyPunctuation: "punctuation",
	FamilySymbol:      "symbol",
	FamilyMark:        "mark",
	FamilyInvalid:     "invalid",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[f]
}

const wildcard = '*'

// Exact codes win over the wildcard of their primary letter; anything not
// listed is a letter.
var familyEntries = []struct {
	cat    string
	family Family
}{
	{"Cc", FamilyControl},
	{"Cf", FamilyControl},
	{"Cs", FamilySurrogate},
	{"Co", FamilyPrivateUse},
	{"Cn", FamilyUnassigned},
	{"Z*", FamilySeparator},
	{"N*", FamilyNumber},
	{"P*", FamilyPunctuation},
	{"S*", FamilySymbol},
	{"M*", FamilyMark},
	{"-*", FamilyInvalid},
	{"C*", FamilyControl},
}

var familyMap = func() map[byte]map[byte]Family {
	m := make(map[byte]map[byte]Family)
	for _, e := range familyEntries {
		k1, k2 := categoryKey(e.cat)
		sub := m[k1]
		if sub == nil {
			sub = make(map[byte]Family)
			m[k1] = sub
		}
		sub[k2] = e.family
	}
	return m
}()

// A one-letter category (a family itself) only matches the wildcard.
func categoryKey(cat string) (byte, byte) {
	switch len(cat) {
	case 0:
		return 0, 0
	case 1:
		return cat[0], ' '
	default:
		return cat[0], cat[1]
	}
}

// FamilyOf classifies a one or two letter category code.
func FamilyOf(cat string) Family {
	k1, k2 := categoryKey(cat)
	sub, ok := familyMap[k1]
	if !ok {
		return FamilyLetter
	}
	if f, ok := sub[k2]; ok {
		return f
	}
	if f, ok := sub[wildcard]; ok {
		return f
	}
	return FamilyLetter
}
