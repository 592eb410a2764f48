// Package tui provides the interactive Bubble Tea dashboard for wealthtwin.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/wealthtwin/internal/cli"
	"github.com/theirongolddev/wealthtwin/internal/config"
	"github.com/theirongolddev/wealthtwin/internal/finance"
	"github.com/theirongolddev/wealthtwin/internal/model"
	"github.com/theirongolddev/wealthtwin/internal/pipeline"
	"github.com/theirongolddev/wealthtwin/internal/store"
	"github.com/theirongolddev/wealthtwin/internal/tui/components"
	"github.com/theirongolddev/wealthtwin/internal/tui/theme"
)

// Options seeds the dashboard.
type Options struct {
	Config    config.Config
	Variant   config.Variant
	Profile   model.FinancialProfile
	Name      string // scenario name, empty for an unsaved profile
	Currency  string
	Analysis  pipeline.Options
	StorePath string
}

// savedMsg reports the result of a background scenario save.
type savedMsg struct {
	scenario store.Scenario
	err      error
}

// App is the root Bubble Tea model.
type App struct {
	cfg       config.Config
	variant   config.Variant
	currency  string
	storePath string

	profile model.FinancialProfile
	name    string
	opts    pipeline.Options
	result  pipeline.Result
	err     error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	message   string

	adviceScroll int

	// Profile editor (huh form)
	editForm *huh.Form
	editVals *ProfileValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	saving  bool
	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5

	rateStep     = 0.005
	fractionStep = 0.1
)

// NewApp creates a new TUI app model and runs the first analysis.
func NewApp(o Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		cfg:       o.Config,
		variant:   o.Variant,
		currency:  o.Currency,
		storePath: o.StorePath,
		profile:   o.Profile,
		name:      o.Name,
		opts:      o.Analysis,
		needSetup: !config.Exists(),
		spinner:   sp,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup {
		cmds = append(cmds, func() tea.Msg { return startSetupMsg{} })
	}
	return tea.Batch(cmds...)
}

// startSetupMsg opens the first-run form once the program is running.
type startSetupMsg struct{}

func (a *App) recompute() {
	a.result, a.err = pipeline.Analyze(a.profile, a.opts)
	if a.err != nil {
		logrus.WithError(a.err).Debug("analysis failed")
	}
	if a.adviceScroll >= len(a.result.Advice) {
		a.adviceScroll = max(len(a.result.Advice)-1, 0)
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.editForm != nil {
			a.editForm = a.editForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case startSetupMsg:
		a.setupVals = newSetupValues(a.cfg, a.currency)
		a.setupForm = newSetupForm(a.cfg, a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.editForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabAdvice && a.adviceScroll > 0 {
				a.adviceScroll--
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabAdvice && a.adviceScroll < len(a.result.Advice)-1 {
				a.adviceScroll++
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case savedMsg:
		a.saving = false
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("saving scenario")
			a.message = "save failed: " + msg.err.Error()
			return a, nil
		}
		a.name = msg.scenario.Name
		a.message = fmt.Sprintf("saved %q", msg.scenario.Name)
		return a, nil

	case spinner.TickMsg:
		if a.saving {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.editForm != nil {
			return a.updateEditForm(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages (cursor blinks etc.) to an open form.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editForm != nil {
		return a.updateEditForm(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.message = ""

	switch key {
	case "q":
		return a, tea.Quit

	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)

	case "e":
		a.editVals = NewProfileValues(a.name, a.profile)
		a.editForm = NewProfileForm(a.editVals, false)
		if a.width > 0 {
			a.editForm = a.editForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.editForm.Init()

	case "s":
		if a.saving {
			return a, nil
		}
		name := a.name
		if name == "" {
			name = "default"
		}
		a.saving = true
		return a, tea.Batch(a.spinner.Tick, saveCmd(a.storePath, name, a.profile, a.currency))

	case "+", "=":
		a.profile.GrowthRate += rateStep
		a.recompute()
	case "-", "_":
		a.profile.GrowthRate -= rateStep
		a.recompute()
	case "]":
		a.profile.InflationRate += rateStep
		a.recompute()
	case "[":
		a.profile.InflationRate -= rateStep
		a.recompute()

	case "f":
		a.opts.Fraction = min(a.opts.Fraction+fractionStep, 1)
		a.recompute()
	case "F":
		a.opts.Fraction = max(a.opts.Fraction-fractionStep, 0)
		a.recompute()

	case "m":
		if a.opts.Mode == finance.ModeContribution {
			a.opts.Mode = finance.ModeClosedForm
		} else {
			a.opts.Mode = finance.ModeContribution
		}
		a.recompute()
		a.message = "projection: " + string(a.opts.Mode)

	case "j", "down":
		if a.activeTab == tabAdvice && a.adviceScroll < len(a.result.Advice)-1 {
			a.adviceScroll++
		}
	case "k", "up":
		if a.activeTab == tabAdvice && a.adviceScroll > 0 {
			a.adviceScroll--
		}

	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.editForm = f
	}

	switch a.editForm.State {
	case huh.StateCompleted:
		p, err := a.editVals.Profile()
		a.editForm = nil
		if err != nil {
			a.message = err.Error()
			return a, nil
		}
		a.profile = p
		a.recompute()
		a.message = "profile updated"
		return a, nil
	case huh.StateAborted:
		a.editForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.message = "config not saved: " + err.Error()
		}
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.editForm != nil {
		return a.editForm.View()
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  wealthtwin needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.You).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"o p t a", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Scroll advice"},
		}},
		{"What-if", []struct{ key, desc string }{
			{"+ -", "Growth rate ±0.5pp"},
			{"] [", "Inflation rate ±0.5pp"},
			{"f F", "Twin fraction ±10%"},
			{"m", "Toggle projection mode"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"e", "Edit profile"},
			{"s", "Save scenario"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Tab bar plus the assumptions pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sep := pillStyle.Render(" │ ")

	pill := pillStyle.Render(" ") +
		accentStyle.Render(a.variant.Name) + sep +
		pillStyle.Render("growth ") + accentStyle.Render(cli.FormatPercent(a.profile.GrowthRate)) + sep +
		pillStyle.Render("inflation ") + accentStyle.Render(cli.FormatPercent(a.profile.InflationRate)) + sep +
		accentStyle.Render(cli.FormatYears(a.opts.Horizon)) + sep +
		pillStyle.Render(string(a.opts.Mode))
	pillRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill)

	header := components.RenderTabBar(a.activeTab, w) + "\n" + pillRow

	// 2. Status bar
	scenario := a.name
	if scenario == "" {
		scenario = "unsaved"
	}
	message := a.message
	if a.saving {
		message = a.spinner.View() + " saving"
	}
	statusBar := components.RenderStatusBar(w, scenario+" · "+a.currency, message)

	// 3. Content zone
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.err != nil:
		content = components.ContentCard("Error", a.err.Error(), cw)
	case a.activeTab == tabOverview:
		content = a.renderOverviewTab(cw)
	case a.activeTab == tabProjection:
		content = a.renderProjectionTab(cw)
	case a.activeTab == tabTwin:
		content = a.renderTwinTab(cw)
	case a.activeTab == tabAdvice:
		content = a.renderAdviceTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

const (
	tabOverview = iota
	tabProjection
	tabTwin
	tabAdvice
)

// saveCmd persists the profile in the background.
func saveCmd(storePath, name string, p model.FinancialProfile, currency string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(storePath)
		if err != nil {
			return savedMsg{err: err}
		}
		defer func() { _ = s.Close() }()

		sc, err := s.Save(name, p, currency)
		return savedMsg{scenario: sc, err: err}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1
	}
	return -1
}
