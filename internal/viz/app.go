package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rollgrid/internal/logging"
	"github.com/san-kum/rollgrid/internal/slides"
)

const (
	gridLeft = 2
	gridTop  = 4
)

type TickMsg time.Time

// App is the Bubble Tea model presenting a slide deck.
type App struct {
	pres     *slides.Presentation
	keys     map[string]slides.Slide
	theme    Theme
	styles   styles
	canvas   *Canvas
	fps      int
	last     time.Time
	showHelp bool
	width    int
	height   int
}

// NewApp shows the first enabled slide, as the page does on load.
func NewApp(p *slides.Presentation, keys map[string]slides.Slide, theme Theme, fps int) App {
	if fps <= 0 {
		fps = 60
	}
	lines := (p.Layout.Rows + 2) / 2
	if lines < 1 {
		lines = 1
	}
	a := App{
		pres:   p,
		keys:   keys,
		theme:  theme,
		styles: newStyles(theme),
		canvas: NewCanvas(p.Layout.Columns, lines),
		fps:    fps,
	}
	if enabled := p.Slides(); len(enabled) > 0 {
		a.show(enabled[0])
	}
	return a
}

func (a App) Presentation() *slides.Presentation { return a.pres }

func (a App) Init() tea.Cmd { return a.tick() }

func (a App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case TickMsg:
		now := time.Time(msg)
		if !a.last.IsZero() {
			a.pres.Advance(now.Sub(a.last))
		}
		a.last = now
		return a, a.tick()
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch k := msg.String(); k {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
	case "t":
		a.theme = NextTheme(a.theme.Name)
		a.styles = newStyles(a.theme)
	case "esc":
		a.pres.Leave()
	case "n", "right":
		a.show(a.pres.Next())
	case "p", "left":
		a.show(a.pres.Prev())
	default:
		if s, ok := a.keys[k]; ok {
			a.show(s)
		}
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) App {
	if a.showHelp {
		return a
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == a.footerRow() {
			if s, ok := a.triggerAt(msg.X); ok {
				a.show(s)
			}
		}
	case msg.Action == tea.MouseActionMotion:
		i := a.hitTest(msg.X, msg.Y)
		if i < 0 {
			a.pres.Leave()
			return a
		}
		step := a.step()
		a.pres.Move(i, float64(msg.X-gridLeft)*step, float64((msg.Y-gridTop)*2)*step)
	}
	return a
}

func (a App) show(s slides.Slide) {
	if err := a.pres.Show(s); err != nil {
		slog.WarnContext(logging.PackageCtx("viz"), "cannot show slide", slog.String("error", err.Error()))
	}
}

func (a App) step() float64 {
	if s := a.pres.Layout.Geometry.Step(); s > 0 {
		return s
	}
	return 1
}

func (a App) pixel(x, y float64) (int, int) {
	step := a.step()
	return int(math.Round(x / step)), int(math.Round(y / step))
}

// hitTest returns the visible cell drawn under terminal position
// (x, y), or -1. The last drawn cell wins, as it does on screen.
func (a App) hitTest(x, y int) int {
	col, line := x-gridLeft, y-gridTop
	if col < 0 || line < 0 || col >= a.canvas.Width || line >= a.canvas.Height {
		return -1
	}
	top, bottom := -1, -1
	for i, c := range a.pres.Cells.Frame() {
		if c.Opacity <= 0 {
			continue
		}
		cx, cy := a.pixel(c.X, c.Y)
		if cx != col {
			continue
		}
		switch cy {
		case line * 2:
			top = i
		case line*2 + 1:
			bottom = i
		}
	}
	if top >= 0 {
		return top
	}
	return bottom
}

func (a App) draw(f slides.Frame) {
	a.canvas.Clear()
	for _, c := range f.Cells {
		if c.Opacity <= 0 {
			continue
		}
		x, y := a.pixel(c.X, c.Y)
		a.canvas.Set(x, y, Shade(c.Fill, a.theme.Background, c.Opacity))
	}
}

func (a App) View() string {
	if a.showHelp {
		return a.viewHelp()
	}
	f := a.pres.Frame()
	a.draw(f)

	pad := strings.Repeat(" ", gridLeft)
	var b strings.Builder

	pos := fmt.Sprintf("%d/%d %s", a.slideNumber(f.State.Slide), len(a.pres.Slides()), f.State.Slide)
	b.WriteString(pad + a.styles.title.Render(strings.ToUpper(a.pres.Story.Title)) + "  " + a.styles.subtitle.Render(pos) + "\n")
	b.WriteString(pad + Separator(max(a.canvas.Width, 30), a.theme) + "\n")
	b.WriteString(pad + a.legend(f.LegendOpacity) + "\n\n")

	lines := a.canvas.Lines(a.theme.Background)
	if tip := f.State.Tooltip; tip.Visible {
		_, py := a.pixel(tip.X, tip.Y)
		row := py / 2
		if row >= len(lines) {
			row = len(lines) - 1
		}
		if row >= 0 {
			lines[row] += "  " + a.styles.tooltip.Render(tip.Text)
		}
	}
	for _, l := range lines {
		b.WriteString(pad + l + "\n")
	}

	b.WriteString("\n")
	for _, c := range f.State.Captions {
		b.WriteString(pad + FadeText(c, a.theme, f.CaptionAlpha) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(pad + a.footer(f.State.Slide) + "\n")
	b.WriteString(pad + a.styles.hint.Render("n/p step  t theme  ? help  q quit"))
	return b.String()
}

func (a App) slideNumber(s slides.Slide) int {
	for i, e := range a.pres.Slides() {
		if e == s {
			return i + 1
		}
	}
	return 0
}

func (a App) legend(opacity float64) string {
	story := a.pres.Story
	parts := make([]string, 0, len(story.Categories))
	for _, c := range story.Categories {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(Shade(story.Color(c.Name), a.theme.Background, opacity))).Render("■")
		parts = append(parts, swatch+" "+FadeText(c.Name, a.theme, opacity))
	}
	return strings.Join(parts, "  ")
}

// footerRow is the terminal line carrying the slide triggers.
func (a App) footerRow() int {
	return gridTop + a.canvas.Height + 1 + len(a.pres.State.Captions) + 1
}

type triggerLabel struct {
	slide slides.Slide
	text  string
}

func (a App) triggerLabels() []triggerLabel {
	var out []triggerLabel
	for _, s := range a.pres.Slides() {
		key, ok := KeyFor(a.keys, s)
		if !ok {
			key = "·"
		}
		out = append(out, triggerLabel{s, fmt.Sprintf(" %s %s ", key, s)})
	}
	return out
}

func (a App) footer(current slides.Slide) string {
	labels := a.triggerLabels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		if l.slide == current {
			parts[i] = a.styles.active.Render(l.text)
		} else {
			parts[i] = a.styles.key.Render(l.text)
		}
	}
	return strings.Join(parts, " ")
}

// triggerAt maps a footer column to the slide label drawn there.
func (a App) triggerAt(x int) (slides.Slide, bool) {
	pos := gridLeft
	for _, l := range a.triggerLabels() {
		w := lipgloss.Width(l.text)
		if x >= pos && x < pos+w {
			return l.slide, true
		}
		pos += w + 1
	}
	return 0, false
}

func (a App) viewHelp() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, s := range a.pres.Slides() {
		key, ok := KeyFor(a.keys, s)
		if !ok {
			key = "-"
		}
		b.WriteString(fmt.Sprintf("%s  %-3s %s\n", a.styles.key.Render(fmt.Sprintf("%-4s", s.ID())), key, s))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.key.Render("n / →") + "  next slide\n")
	b.WriteString(a.styles.key.Render("p / ←") + "  previous slide\n")
	b.WriteString(a.styles.key.Render("t    ") + "  cycle themes\n")
	b.WriteString(a.styles.key.Render("esc  ") + "  drop hover\n")
	b.WriteString(a.styles.key.Render("?    ") + "  toggle this help\n")
	b.WriteString(a.styles.key.Render("q    ") + "  quit\n")
	return "\n  " + a.styles.panel.Render(a.styles.title.Render("KEYBOARD SHORTCUTS")+"\n"+b.String())
}

// RunInteractive starts the full-screen presentation and blocks until
// the user quits.
func RunInteractive(p *slides.Presentation, keys map[string]slides.Slide, theme Theme, fps int) error {
	_, err := tea.NewProgram(NewApp(p, keys, theme, fps), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
