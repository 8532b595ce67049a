// Package prompt assembles the status line from an environment snapshot.
// Nothing here touches the process environment or runs commands.
package prompt

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/drolfe/shell-prompt/internal/config"
	"github.com/drolfe/shell-prompt/internal/env"
	"github.com/drolfe/shell-prompt/internal/gitstatus"
	"github.com/drolfe/shell-prompt/internal/pathabbrev"
	"github.com/drolfe/shell-prompt/internal/ui"
)

// Marker ends every prompt, including the fallback printed after an error.
const Marker = "$ "

// ContainerTitlePrefix marks the window title inside a container.
const ContainerTitlePrefix = "[A] "

// ClockFormat is the 24-hour clock shown in the last bar.
const ClockFormat = "15:04:05"

// Git is the repository state shown in the git bar.
type Git struct {
	Branch string
	Status gitstatus.Status
}

// Input is everything a render needs.
type Input struct {
	Env    *env.Environment
	Config *config.Config
	// Git is nil outside a repository; no git bar is drawn then.
	Git *Git
}

// StylerFor picks glyphs and colors for the terminal described by e.
func StylerFor(e *env.Environment) ui.Styler {
	return ui.NewStyler(
		ui.UseUnicode(e.Term, e.RoxTerm, e.NoUnicode),
		ui.ColorProfile(e.Term, e.ColorTerm),
	)
}

// Render returns the complete prompt: window title escape, the bar line
// fitted to the terminal width, an optional container line and the marker.
func Render(in Input, st ui.Styler) string {
	e := in.Env
	cfg := in.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	src := pathabbrev.Source{
		Home:      e.Home,
		User:      e.User,
		Bookmarks: cfg.Bookmarks,
		Servers:   cfg.Servers,
	}
	cwdText := pathabbrev.Apply(e.Cwd, pathabbrev.Rules(src, pathabbrev.IconBrackets(st)))
	titleCwd := pathabbrev.Apply(e.Cwd, pathabbrev.Rules(src, pathabbrev.TitleBrackets()))

	var b strings.Builder
	b.WriteString(ansi.SetIconNameWindowTitle(WindowTitle(e, titleCwd)))
	b.WriteString(strings.Join(Fit(BuildLayout(in, st, cwdText), e.Columns, st), ""))
	b.WriteString("\n")
	if e.InContainer {
		b.WriteString(st.Bar(containerText(e, st), ui.RoleContainer))
		b.WriteString("\n")
	}
	b.WriteString(Marker)
	return b.String()
}

// BuildLayout orders the bars: user@host, git, cwd, jobs, clock.
// The cwd bar is the flex segment.
func BuildLayout(in Input, st ui.Styler, cwdText string) Layout {
	e := in.Env
	segs := []Segment{{Text: e.User + "@" + e.Host, Role: ui.RoleUserHost}}

	if in.Git != nil {
		text := st.Glyph(ui.GlyphGit) + " " + in.Git.Branch + in.Git.Status.Label(st.Glyph(ui.GlyphHourglass))
		segs = append(segs, Segment{Text: text, Role: ui.RoleGit})
	}

	flex := len(segs)
	segs = append(segs, Segment{Text: cwdText, Role: ui.RoleCwd})

	if e.Jobs > 0 {
		segs = append(segs, Segment{Text: st.Glyph(ui.GlyphRunning) + " " + strconv.Itoa(e.Jobs), Role: ui.RoleJobs})
	}

	segs = append(segs, Segment{Text: st.Glyph(ui.GlyphWatch) + " " + e.Now.Format(ClockFormat), Role: ui.RoleClock})

	return Layout{Segments: segs, Flex: flex}
}

// WindowTitle is the plain-text title: container marker plus abbreviated cwd.
func WindowTitle(e *env.Environment, titleCwd string) string {
	if e.InContainer {
		return ContainerTitlePrefix + titleCwd
	}
	return titleCwd
}

func containerText(e *env.Environment, st ui.Styler) string {
	_, image := filepath.Split(e.Container)
	return st.Glyph(ui.GlyphContainer) + " Apptainer " + image
}
