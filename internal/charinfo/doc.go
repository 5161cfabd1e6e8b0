// Package charinfo attaches Unicode semantics to decoded units: general
// category, name and block, plus the predicates the renderer needs to pick a
// glyph or a placeholder.
//
// Properties are pure functions of a unit's raw value, so they are computed
// once and memoized in a process-wide LRU cache. The cache is safe for
// concurrent use.
//
// The static tables (categories, blocks, ASCII control codes) live alongside
// the classifier and are exposed for layout and legend output.
package charinfo
