package layout

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidGroupLevel is returned for group levels outside 0..3.
var ErrInvalidGroupLevel = errors.New("invalid group level")

// MaxGroupLevel groups by category family.
const MaxGroupLevel = 3

var (
	formatDefault = []Attribute{Offset, Number, Char, Cat, Count, Name}
	formatAll     = []Attribute{Offset, Index, Raw, Number, Char, Block, Cat, Count, Name}
)

// Options are the run settings the pipeline and renderer consume. Parsing
// them from flags or config is the caller's job.
type Options struct {
	Columns       []Attribute
	AllColumns    bool
	Merge         bool
	GroupLevel    int  // 0 off, 1 unique value, 2 category, 3 category family
	AltCC         bool // caret notation for ASCII control code names
	DecimalOffset bool
	Rigid         bool
	Oneline       bool
	Names         bool
	NoOverride    bool
}

// Validate reports option combinations that cannot run.
func (o Options) Validate() error {
	if o.GroupLevel < 0 || o.GroupLevel > MaxGroupLevel {
		return fmt.Errorf("%w: %d", ErrInvalidGroupLevel, o.GroupLevel)
	}
	for _, a := range o.Columns {
		if a < 0 || int(a) >= len(attributeNames) {
			return fmt.Errorf("%w: %v", ErrUnknownAttribute, a)
		}
	}
	return nil
}

// EffectiveColumns returns the columns to print, in order. With names on,
// the wide category and block columns move to the end of the default sets.
func (o Options) EffectiveColumns() []Attribute {
	if len(o.Columns) > 0 {
		return slices.Clone(o.Columns)
	}
	base := formatDefault
	if o.AllColumns {
		base = formatAll
	}
	if !o.ShowNames() {
		return slices.Clone(base)
	}
	out := make([]Attribute, 0, len(base))
	var last []Attribute
	for _, a := range base {
		if a == Cat || a == Block {
			last = append(last, a)
			continue
		}
		out = append(out, a)
	}
	return append(out, last...)
}

// Merging reports whether repeats are folded into counts.
func (o Options) Merging() bool { return o.Merge || o.Grouping() }

// Grouping reports whether a frequency table is produced instead of rows.
func (o Options) Grouping() bool { return o.GroupLevel >= 1 }

// GroupCats reports grouping by category.
func (o Options) GroupCats() bool { return o.GroupLevel >= 2 }

// GroupSuperCats reports grouping by category family.
func (o Options) GroupSuperCats() bool { return o.GroupLevel >= 3 }

// ShowNames reports whether category and block print full names.
func (o Options) ShowNames() bool { return o.Names || o.GroupCats() }

// IsRigid reports whether columns keep their full measured width.
func (o Options) IsRigid() bool { return o.Rigid || o.GroupCats() }

// CharOnly reports the single glyph column mode, printed without newlines.
func (o Options) CharOnly() bool {
	cols := o.EffectiveColumns()
	return len(cols) == 1 && cols[0] == Char
}

// EffectiveCategory is the category used for grouping and category output.
func (o Options) EffectiveCategory(cat string) string {
	if o.GroupSuperCats() && cat != "" {
		return cat[:1]
	}
	return cat
}
