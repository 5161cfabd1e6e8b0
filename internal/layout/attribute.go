package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAttribute is returned when a column name is not recognised.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Attribute is one output column.
type Attribute int

const (
	Offset Attribute = iota
	Index
	Raw
	Number
	Char
	Count
	Cat
	Name
	Block
)

var attributeNames = [...]string{
	Offset: "offset",
	Index:  "index",
	Raw:    "raw",
	Number: "number",
	Char:   "char",
	Count:  "count",
	Cat:    "cat",
	Name:   "name",
	Block:  "block",
}

var attributeHelp = [...]string{
	Offset: "byte offset of the sequence start (hex unless decimal)",
	Index:  "sequential index of the code point",
	Raw:    "raw bytes of the sequence",
	Number: "code point number (U+XXXX)",
	Char:   "the rendered glyph",
	Count:  "repeat count when merging or grouping",
	Cat:    "general category (abbreviation or name)",
	Name:   "Unicode name or a synthesized label",
	Block:  "Unicode block (abbreviation or name)",
}

// Attributes returns every attribute in declaration order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributeNames))
	for i := range attributeNames {
		out[i] = Attribute(i)
	}
	return out
}

func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attributeNames) {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return attributeNames[a]
}

// Description is a one-line explanation used by the format listing.
func (a Attribute) Description() string {
	if a < 0 || int(a) >= len(attributeHelp) {
		return ""
	}
	return attributeHelp[a]
}

// ParseAttribute resolves a column name.
func ParseAttribute(name string) (Attribute, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// ParseAttributes resolves a comma-separated column list, keeping order.
// Empty items are skipped; an empty list yields nil.
func ParseAttributes(list string) ([]Attribute, error) {
	var out []Attribute
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := ParseAttribute(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
