package layout

import (
	"slices"

	"github.com/five82/runetab/internal/charinfo"
)

// GroupKey is either an exact unit or a category string, never both.
type GroupKey struct {
	Unit     charinfo.Unit
	Category string
}

// Group is one aggregated entry.
type Group struct {
	Key    GroupKey
	Sample charinfo.Unit // first unit seen for the key
	Count  int
}

// Groups counts occurrences per key, remembering first-seen order.
type Groups struct {
	order []GroupKey
	byKey map[GroupKey]*Group
	sum   int
	max   int
}

// NewGroups returns an empty aggregation.
func NewGroups() *Groups {
	return &Groups{byKey: make(map[GroupKey]*Group)}
}

// Add counts u under key.
func (g *Groups) Add(key GroupKey, u charinfo.Unit) {
	grp, ok := g.byKey[key]
	if !ok {
		grp = &Group{Key: key, Sample: u}
		g.byKey[key] = grp
		g.order = append(g.order, key)
	}
	grp.Count++
	g.sum++
	g.max = max(g.max, grp.Count)
}

// Len returns the number of distinct keys.
func (g *Groups) Len() int { return len(g.order) }

// Sum returns the total number of counted units.
func (g *Groups) Sum() int { return g.sum }

// Max returns the largest single count.
func (g *Groups) Max() int { return g.max }

// Sorted returns the groups by descending count; ties keep first-seen order.
func (g *Groups) Sorted() []Group {
	out := make([]Group, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, *g.byKey[k])
	}
	slices.SortStableFunc(out, func(a, b Group) int {
		return b.Count - a.Count
	})
	return out
}
