package teaui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/debounce"
	"tableflip.dev/xisnul/pkg/dua"
	"tableflip.dev/xisnul/pkg/glyph"
	"tableflip.dev/xisnul/pkg/logging"
	"tableflip.dev/xisnul/pkg/runner/tea/internal/detailview"
	"tableflip.dev/xisnul/pkg/runner/tea/internal/theme"
	"tableflip.dev/xisnul/pkg/store"
)

const appTitle = "Xisnul Muslim"

// smallWidth is the terminal width below which the small font profile is
// used when the profile is automatic.
const smallWidth = 80

type screen int

const (
	screenSplash screen = iota
	screenList
	screenDetail
)

// Options configures the reader.
type Options struct {
	// Profile fixes the font profile; empty picks one from the terminal width.
	Profile  browser.Profile
	Debounce time.Duration
	// Splash is how long the splash screen shows; zero skips it.
	Splash time.Duration
	Logger *zap.Logger
}

// ProfileOption maps a configured profile name to Options.Profile.
func ProfileOption(name string) (browser.Profile, error) {
	if name == "" || strings.EqualFold(name, "auto") {
		return "", nil
	}
	return browser.ParseProfile(name)
}

// messages
type splashDoneMsg struct{}
type filterMsg struct{ ticket debounce.Ticket }
type prefsLoadedMsg struct {
	prefs     browser.Prefs
	flagsOnly bool
}
type prefsSavedMsg struct {
	seq     uint64
	written bool
}
type watchStartedMsg struct{ events <-chan store.Event }
type storeEventMsg struct {
	event  store.Event
	events <-chan store.Event
}
type errMsg struct{ err error }

// Model contains UI state. The browser holds the session; the model only
// tracks what is on screen.
type Model struct {
	svc *app.Service
	ctx context.Context
	log *zap.Logger
	b   *browser.Browser

	saves *saver

	autoProfile bool
	splash      time.Duration

	screen screen
	cursor int
	status string

	spinner    spinner.Model
	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	listKeys   listKeys
	detailKeys detailKeys
	theme      theme.Theme

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(ctx context.Context, svc *app.Service, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.OrNop(opts.Logger)
	th := theme.Default()

	profile := opts.Profile
	if profile == "" {
		profile = browser.ProfileRegular
	}
	b := browser.New(svc.Catalog,
		browser.WithDelay(opts.Debounce),
		browser.WithProfile(profile),
		browser.WithLogger(logger),
	)

	ti := textinput.New()
	ti.Placeholder = "Raadi duco..."
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(th.Detail.Spinner),
	)

	m := Model{
		svc:         svc,
		ctx:         ctx,
		log:         logger,
		b:           b,
		saves:       &saver{},
		autoProfile: opts.Profile == "",
		splash:      opts.Splash,
		screen:      screenList,
		spinner:     sp,
		input:       ti,
		viewport:    viewport.New(80, 20),
		help:        help.New(),
		listKeys:    defaultListKeys(),
		detailKeys:  defaultDetailKeys(),
		theme:       th,
	}
	if opts.Splash > 0 {
		m.screen = screenSplash
	}
	return m
}

// Init starts the splash timer and, with persistence, loads and watches the
// stored preferences.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.screen == screenSplash {
		cmds = append(cmds, m.spinner.Tick, tea.Tick(m.splash, func(time.Time) tea.Msg {
			return splashDoneMsg{}
		}))
	}
	if m.svc.Persistence != nil {
		cmds = append(cmds, m.loadPrefs(false), m.watchPrefs())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.autoProfile {
			m.b.SetProfile(profileFor(msg.Width))
		}
		m.applySizes()
		m.refreshDetail()
	case splashDoneMsg:
		if m.screen == screenSplash {
			m.screen = screenList
		}
	case spinner.TickMsg:
		if m.screen == screenSplash {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case filterMsg:
		if m.b.Settle(msg.ticket) {
			m.clampCursor()
		}
	case prefsLoadedMsg:
		if msg.flagsOnly {
			m.b.RestoreFlags(msg.prefs)
		} else {
			m.b.Restore(msg.prefs)
		}
		m.refreshDetail()
	case watchStartedMsg:
		cmds = append(cmds, waitForEvent(msg.events))
	case storeEventMsg:
		m.log.Debug("stored preferences changed", zap.Int("type", int(msg.event.Type)))
		cmds = append(cmds, m.loadPrefs(true), waitForEvent(msg.events))
	case prefsSavedMsg:
		if !msg.written {
			m.log.Debug("dropped stale preference save", zap.Uint64("seq", msg.seq))
		}
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
		m.log.Warn("reader", zap.Error(msg.err))
	case tea.KeyMsg:
		if key.Matches(msg, m.listKeys.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenSplash:
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
				m.screen = screenList
			}
		case screenList:
			cmds = append(cmds, m.updateList(msg))
		case screenDetail:
			cmds = append(cmds, m.updateDetail(msg))
		}
	default:
		switch m.screen {
		case screenList:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		case screenDetail:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	k := m.listKeys
	switch {
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.b.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Open):
		if e := m.current(); e != nil {
			return m.open(e.ID)
		}
	case key.Matches(msg, k.Clear):
		m.clearSearch()
	case key.Matches(msg, k.Favorite):
		if e := m.current(); e != nil {
			return m.toggle(glyph.Favorite, e.ID)
		}
	case key.Matches(msg, k.Bookmark):
		if e := m.current(); e != nil {
			return m.toggle(glyph.Bookmark, e.ID)
		}
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			return tea.Batch(cmd, m.scheduleFilter(m.b.Search(after)))
		}
		return cmd
	}
	return nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	k := m.detailKeys
	switch {
	case key.Matches(msg, k.Previous):
		if m.b.Previous() {
			m.showSelected()
			return m.save()
		}
	case key.Matches(msg, k.Next):
		if m.b.Next() {
			m.showSelected()
			return m.save()
		}
	case key.Matches(msg, k.Back):
		m.back()
	case key.Matches(msg, k.Favorite):
		if e, ok := m.b.Selected(); ok {
			return m.toggle(glyph.Favorite, e.ID)
		}
	case key.Matches(msg, k.Bookmark):
		if e, ok := m.b.Selected(); ok {
			return m.toggle(glyph.Bookmark, e.ID)
		}
	case key.Matches(msg, k.Larger):
		m.b.IncreaseFont()
		m.refreshDetail()
		return m.save()
	case key.Matches(msg, k.Smaller):
		m.b.DecreaseFont()
		m.refreshDetail()
		return m.save()
	case key.Matches(msg, k.Reset):
		m.b.ResetFont()
		m.refreshDetail()
		return m.save()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) scheduleFilter(t debounce.Ticket) tea.Cmd {
	return tea.Tick(m.b.Delay(), func(time.Time) tea.Msg {
		return filterMsg{ticket: t}
	})
}

func (m *Model) current() *dua.Entry {
	visible := m.b.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

func (m *Model) clampCursor() {
	n := len(m.b.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clearSearch() {
	if m.input.Value() == "" && m.b.Query() == "" {
		return
	}
	m.input.Reset()
	m.b.ApplyNow("")
	m.cursor = 0
}

func (m *Model) open(id int) tea.Cmd {
	if !m.b.Select(id) {
		return nil
	}
	m.log.Debug("entry opened", zap.Int("id", id))
	m.screen = screenDetail
	m.input.Blur()
	m.showSelected()
	return m.save()
}

func (m *Model) back() {
	selected, ok := m.b.Selected()
	m.b.ClearSelection()
	m.screen = screenList
	m.input.Focus()
	if !ok {
		return
	}
	for i, e := range m.b.Visible() {
		if e.ID == selected.ID {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) toggle(mark glyph.Mark, id int) tea.Cmd {
	var on bool
	if mark == glyph.Favorite {
		on = m.b.ToggleFavorite(id)
	} else {
		on = m.b.ToggleBookmark(id)
	}
	m.status = fmt.Sprintf("%s %d: %s", mark.Glyph(on), id, mark)
	m.refreshDetail()
	return m.save()
}

func (m *Model) showSelected() {
	m.refreshDetail()
	m.viewport.GotoTop()
}

func (m *Model) detailState() (detailview.State, bool) {
	e, ok := m.b.Selected()
	if !ok {
		return detailview.State{}, false
	}
	return detailview.State{
		Entry:       e,
		Fonts:       m.b.Fonts(),
		Limits:      m.b.Limits(),
		Favorite:    m.b.IsFavorite(e.ID),
		Bookmarked:  m.b.IsBookmarked(e.ID),
		HasPrevious: m.b.HasPrevious(),
		HasNext:     m.b.HasNext(),
	}, true
}

func (m *Model) refreshDetail() {
	st, ok := m.detailState()
	if !ok {
		return
	}
	m.viewport.SetContent(detailview.Render(st, m.viewport.Width, m.theme))
}

func (m *Model) save() tea.Cmd {
	p := m.svc.Persistence
	if p == nil {
		return nil
	}
	ctx, saves := m.ctx, m.saves
	seq, snap := saves.stamp(), m.b.Snapshot()
	return func() tea.Msg {
		written, err := saves.save(ctx, p, seq, snap)
		if err != nil {
			return errMsg{err}
		}
		return prefsSavedMsg{seq: seq, written: written}
	}
}

func (m Model) loadPrefs(flagsOnly bool) tea.Cmd {
	svc, ctx, saves := m.svc, m.ctx, m.saves
	if flagsOnly {
		return func() tea.Msg {
			prefs, changed, err := saves.reload(ctx, svc.Prefs)
			if err != nil {
				return errMsg{err}
			}
			if !changed {
				return nil
			}
			return prefsLoadedMsg{prefs: prefs, flagsOnly: true}
		}
	}
	return func() tea.Msg {
		prefs, err := svc.Prefs(ctx)
		if err != nil {
			return errMsg{err}
		}
		return prefsLoadedMsg{prefs: prefs}
	}
}

func (m Model) watchPrefs() tea.Cmd {
	p, ctx := m.svc.Persistence, m.ctx
	return func() tea.Msg {
		events, err := p.Watch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return watchStartedMsg{events: events}
	}
}

func waitForEvent(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev, events: events}
	}
}

func profileFor(width int) browser.Profile {
	if width < smallWidth {
		return browser.ProfileSmall
	}
	return browser.ProfileRegular
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.help.Width = m.termWidth
	m.input.Width = m.termWidth - 8
	m.viewport.Width = m.termWidth
	// nav, font bar, help and status lines
	height := m.termHeight - 4
	if height < 3 {
		height = 3
	}
	m.viewport.Height = height
}

// View renders the current screen.
func (m Model) View() string {
	switch m.screen {
	case screenSplash:
		return m.splashView()
	case screenDetail:
		return m.detailView()
	default:
		return m.listView()
	}
}

func (m Model) splashView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Detail.Splash.Render(appTitle),
		"",
		m.spinner.View()+" Diyaar u noqo...",
	)
	if m.termWidth == 0 || m.termHeight == 0 {
		return body
	}
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) listView() string {
	th := m.theme.Header
	var b strings.Builder

	b.WriteString(th.Title.Render(appTitle))
	b.WriteString(" ")
	b.WriteString(th.Subtitle.Render(fmt.Sprintf("%d Duco oo la xulay", m.b.Catalog().Len())))
	b.WriteString("\n")
	b.WriteString(th.Stats.Render(fmt.Sprintf("%s Dhawaan: %d   %s Jecel: %d",
		glyph.Recent, len(m.b.Recent()), glyph.Favorite.Glyph(true), m.b.FavoriteCount())))
	b.WriteString("\n")
	b.WriteString(th.Search.Render(glyph.Search + " " + m.input.View()))
	b.WriteString("\n")

	visible := m.b.Visible()
	b.WriteString(th.Count.Render(fmt.Sprintf("%d Duco oo la helay", len(visible))))
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(th.Empty.Render(fmt.Sprintf("Wax duco ah lagama helin '%s'", m.b.Query())))
		b.WriteString("\n")
		b.WriteString(m.theme.Footer.Help.Render("esc: nadiifi raadinta"))
		b.WriteString("\n")
	} else {
		start, end := m.window(len(visible))
		for i := start; i < end; i++ {
			b.WriteString(m.card(visible[i], i == m.cursor))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.footer(m.listKeys))
	return b.String()
}

// headerLines is the height of the list view above the cards.
const headerLines = 8

// window returns the range of cards that fit on screen around the cursor.
func (m Model) window(n int) (int, int) {
	rows := n
	if m.termHeight > 0 {
		rows = (m.termHeight - headerLines - 3) / 2
		if rows < 1 {
			rows = 1
		}
	}
	if rows >= n {
		return 0, n
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

func (m Model) card(e *dua.Entry, selected bool) string {
	th := m.theme.Card
	pointer := "  "
	title := th.Title.Render(e.Title)
	if selected {
		pointer = th.Selected.Render(glyph.Next + " ")
		title = th.Selected.Render(e.Title)
	}
	marks := th.Mark.Render(glyph.Favorite.Glyph(m.b.IsFavorite(e.ID)).String() + " " +
		glyph.Bookmark.Glyph(m.b.IsBookmarked(e.ID)).String())
	line := pointer + theme.Badge(e.CategoryColor).Render(strconv.Itoa(e.ID)) + " " + title + " " + marks + "\n"
	if e.Category != "" {
		line += "     " + th.Category.Render("#"+e.Category) + "\n"
	} else {
		line += "\n"
	}
	return line
}

func (m Model) detailView() string {
	st, ok := m.detailState()
	if !ok {
		return m.listView()
	}
	width := m.termWidth
	if width == 0 {
		width = m.viewport.Width
	}
	return strings.Join([]string{
		m.viewport.View(),
		detailview.Nav(st, width, m.theme),
		detailview.FontBar(st, m.theme),
		m.footer(m.detailKeys),
	}, "\n")
}

func (m Model) footer(keys help.KeyMap) string {
	out := m.theme.Footer.Help.Render(m.help.View(keys))
	if m.status != "" {
		out = m.theme.Footer.Status.Render(m.status) + "\n" + out
	}
	return out
}
