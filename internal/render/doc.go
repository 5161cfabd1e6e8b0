// Package render formats table rows for the terminal.
//
// Every attribute has two sides: Format yields the plain text used to measure
// a column, Render yields the styled fragment printed for a row. Fragments
// are memoized per attribute and dropped whenever the column they were sized
// for grows, so a streaming run keeps printing aligned rows.
package render
