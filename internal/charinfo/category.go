package charinfo

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnknownCategory is returned for abbreviations that are not general categories.
var ErrUnknownCategory = errors.New("unknown category")

// Category describes a Unicode general category or a category family.
type Category struct {
	Abbr        string
	Name        string
	Description string
}

var categoryList = []Category{
	{"Lu", "Uppercase_Letter", "an uppercase letter"},
	{"Ll", "Lowercase_Letter", "a lowercase letter"},
	{"Lt", "Titlecase_Letter", "a digraph encoded as a single character, with first part uppercase"},
	{"Lm", "Modifier_Letter", "a modifier letter"},
	{"Lo", "Other_Letter", "other letters, including syllables and ideographs"},
	{"L", "Letter", "Lu | Ll | Lt | Lm | Lo"},
	{"Mn", "Nonspacing_Mark", "a nonspacing combining mark (zero advance width)"},
	{"Mc", "Spacing_Mark", "a spacing combining mark (positive advance width)"},
	{"Me", "Enclosing_Mark", "an enclosing combining mark"},
	{"M", "Mark", "Mn | Mc | Me"},
	{"Nd", "Decimal_Number", "a decimal digit"},
	{"Nl", "Letter_Number", "a letterlike numeric character"},
	{"No", "Other_Number", "a numeric character of other type"},
	{"N", "Number", "Nd | Nl | No"},
	{"Pc", "Connector_Punctuation", "a connecting punctuation mark, like a tie"},
	{"Pd", "Dash_Punctuation", "a dash or hyphen punctuation mark"},
	{"Ps", "Open_Punctuation", "an opening punctuation mark (of a pair)"},
	{"Pe", "Close_Punctuation", "a closing punctuation mark (of a pair)"},
	{"Pi", "Initial_Punctuation", "an initial quotation mark"},
	{"Pf", "Final_Punctuation", "a final quotation mark"},
	{"Po", "Other_Punctuation", "a punctuation mark of other type"},
	{"P", "Punctuation", "Pc | Pd | Ps | Pe | Pi | Pf | Po"},
	{"Sm", "Math_Symbol", "a symbol of mathematical use"},
	{"Sc", "Currency_Symbol", "a currency sign"},
	{"Sk", "Modifier_Symbol", "a non-letterlike modifier symbol"},
	{"So", "Other_Symbol", "a symbol of other type"},
	{"S", "Symbol", "Sm | Sc | Sk | So"},
	{"Zs", "Space_Separator", "a space character (of various non-zero widths)"},
	{"Zl", "Line_Separator", "U+2028 LINE SEPARATOR only"},
	{"Zp", "Paragraph_Separator", "U+2029 PARAGRAPH SEPARATOR only"},
	{"Z", "Separator", "Zs | Zl | Zp"},
	{"Cc", "Control", "a C0 or C1 control code"},
	{"Cf", "Format", "a format control character"},
	{"Cs", "Surrogate", "a surrogate code point"},
	{"Co", "Private_Use", "a private-use character"},
	{"Cn", "Unassigned", "a reserved unassigned code point or a noncharacter"},
	{"C", "Other", "Cc | Cf | Cs | Co | Cn"},
}

var categoryIndex = func() map[string]Category {
	m := make(map[string]Category, len(categoryList))
	for _, c := range categoryList {
		m[c.Abbr] = c
	}
	return m
}()

// Checked most common first; anything left over is Cn.
var generalCategories = []string{
	"Ll", "Lu", "Lo", "Po", "Zs", "Nd", "Mn", "So", "Cc", "Sm", "Ps", "Pe",
	"Pd", "Lm", "Lt", "Mc", "Me", "Nl", "No", "Pc", "Pi", "Pf", "Sc", "Sk",
	"Zl", "Zp", "Cf", "Cs", "Co",
}

// ResolveCategory looks up a category (two letters) or family (one letter).
func ResolveCategory(abbr string) (Category, error) {
	if c, ok := categoryIndex[abbr]; ok {
		return c, nil
	}
	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, abbr)
}

// Categories returns the two-letter general categories in table order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryList))
	for _, c := range categoryList {
		if len(c.Abbr) == 2 {
			out = append(out, c)
		}
	}
	return out
}

// MaxCategoryNameLen returns the length of the longest category name.
func MaxCategoryNameLen() int {
	n := 0
	for _, c := range categoryList {
		n = max(n, len(c.Name))
	}
	return n
}

func generalCategory(r rune) string {
	for _, abbr := range generalCategories {
		if unicode.Is(unicode.Categories[abbr], r) {
			return abbr
		}
	}
	return "Cn"
}
