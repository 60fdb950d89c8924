// Package color provides the terminal color theme for equipctl.
//
// Colors are organized into semantic categories:
//   - Header: table headers and demo titles
//   - Success: equipment that is available
//   - Warning: any other status (in repair, reserved, ...)
//   - Error: failures such as an unknown equipment type
//   - Muted: de-emphasized text
//
// All colors are lipgloss adaptive colors, so they pick a light or dark
// variant depending on the terminal background. Initialize forces one or the
// other.
//
// # Usage Example
//
//	color.Initialize(true)
//	fmt.Println(color.StatusStyle("disponible").Render("disponible"))
//	fmt.Println(color.ErrorStyle.Render("invalid equipment type"))
//
// Terminals without color support (or NO_COLOR) get plain text; lipgloss
// handles the detection.
package color
