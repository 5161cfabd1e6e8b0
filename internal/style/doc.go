// Package style maps table elements and Unicode general categories to
// lipgloss styles.
//
// # Overview
//
// A Styler is bound to one output stream. The colour profile is forced for
// "always" and "never" and detected by termenv otherwise, which honours
// NO_COLOR and CLICOLOR_FORCE.
//
// Categories resolve to a Family through a two-level table: the primary
// letter first, then either the exact second letter or the family wildcard.
// Letters that match nothing use the default style.
//
// # Themes
//
//   - default: 16-colour ANSI with greys from the 256-colour ramp
//   - nightfox: https://github.com/EdenEast/nightfox.nvim
//   - kanagawa: https://github.com/rebelot/kanagawa.nvim
package style
