package ui

import "github.com/charmbracelet/lipgloss"

// Role is the semantic slot a bar occupies; the palette decides its color.
type Role int

const (
	RoleUserHost Role = iota
	RoleGit
	RoleCwd
	RoleJobs
	RoleClock
	RoleContainer
)

// Palette maps roles to bar colors.
type Palette struct {
	Name   string
	colors map[Role]lipgloss.Color
	// reverse draws blocks as reverse video of the role color instead of
	// black text on a colored background. 16-color terminals get the
	// theme's own foreground this way.
	reverse bool
}

// Color returns the color assigned to r.
func (p Palette) Color(r Role) lipgloss.Color {
	return p.colors[r]
}

// FancyPalette uses xterm-256 colors.
var FancyPalette = Palette{
	Name: "fancy",
	colors: map[Role]lipgloss.Color{
		RoleUserHost:  "170", // orchid
		RoleGit:       "153", // light sky blue 1
		RoleCwd:       "71",  // dark sea green 4
		RoleJobs:      "1",   // red
		RoleClock:     "227", // light goldenrod 1
		RoleContainer: "136", // dark goldenrod
	},
}

// BasicPalette uses the 8 standard ANSI colors.
var BasicPalette = Palette{
	Name: "basic",
	colors: map[Role]lipgloss.Color{
		RoleUserHost:  "5", // magenta
		RoleGit:       "6", // cyan
		RoleCwd:       "2", // green
		RoleJobs:      "1", // red
		RoleClock:     "3", // yellow
		RoleContainer: "3", // yellow
	},
	reverse: true,
}

// colorBlack is the text color on fancy blocks.
const colorBlack lipgloss.Color = "0"
