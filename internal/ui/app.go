package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leonardomso/figembed/internal/preview"
	"github.com/leonardomso/figembed/internal/resolve"
	"github.com/leonardomso/figembed/internal/scanner"
)

type appState int

const (
	stateScanning appState = iota
	stateResults
)

type filterType int

const (
	filterAll filterType = iota
	filterResolved
	filterInvalid
)

const filterCount = 3

func (f filterType) String() string {
	switch f {
	case filterAll:
		return "All"
	case filterResolved:
		return "Resolved"
	case filterInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

func (f filterType) Next() filterType {
	return (f + 1) % filterCount
}

// Options configures the browser.
type Options struct {
	Scan scanner.ScanOptions
	// Surface receives previews when "p" is pressed. Nil disables previews.
	Surface      *preview.Surface
	PreviewTitle string
}

// Model is the marker browser.
type Model struct {
	state    appState
	quitting bool
	err      error
	notice   string

	files   []string
	results []resolve.Result
	summary resolve.Summary
	filter  filterType

	// selected is the URL chosen with enter, empty otherwise.
	selected string

	spinner spinner.Model
	list    list.Model
	help    help.Model
	keys    KeyMap

	showHelp bool
	opts     Options
}

// New creates the browser model.
func New(opts Options) Model {
	if opts.Scan.Root == "" {
		opts.Scan.Root = "."
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = SelectedStyle
	delegate.Styles.SelectedDesc = StatusStyle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Figma Embed Markers"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = TitleStyle

	return Model{
		state:   stateScanning,
		spinner: s,
		list:    l,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		opts:    opts,
	}
}

// Selected returns the URL chosen with enter, or "" if the user quit.
func (m Model) Selected() string {
	return m.selected
}

// Err returns the scan error, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the scan.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, ScanCmd(m.opts.Scan))
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		// Reserve space for header, summary, and detail panel
		m.list.SetSize(msg.Width, max(msg.Height-14, 5))
		return m, nil

	case spinner.TickMsg:
		if m.state != stateScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MarkersFoundMsg:
		m.state = stateResults
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.files = msg.Files
		m.results = msg.Results
		m.summary = resolve.Summarize(msg.Results)
		m.updateListItems()
		return m, nil
	}

	if m.state == stateResults {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a list filter every key belongs to the list.
	if m.state == stateResults && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.state != stateResults {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.updateListItems()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if r, ok := m.current(); ok && r.IsResolved() {
			m.selected = r.URL
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.showPreview()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// showPreview puts the selected marker on the preview surface.
func (m *Model) showPreview() {
	r, ok := m.current()
	switch {
	case m.opts.Surface == nil:
		m.notice = "Preview disabled (run with --preview-file)"
	case !ok || !r.IsResolved():
		m.notice = "Nothing to preview"
	default:
		if err := m.opts.Surface.Show(preview.Document(r.URL, m.opts.PreviewTitle)); err != nil {
			m.notice = "Preview failed: " + err.Error()
			return
		}
		m.notice = "Preview written to " + m.opts.Surface.Path()
	}
}

func (m Model) current() (resolve.Result, bool) {
	item, ok := m.list.SelectedItem().(ResultItem)
	if !ok {
		return resolve.Result{}, false
	}
	return item.Result, true
}

func (m *Model) updateListItems() {
	filtered := m.filteredResults()
	items := make([]list.Item, len(filtered))
	for i, r := range filtered {
		items[i] = ResultItem{Result: r}
	}
	m.list.SetItems(items)
}

func (m Model) filteredResults() []resolve.Result {
	switch m.filter {
	case filterResolved:
		return resolve.FilterResolved(m.results)
	case filterInvalid:
		return resolve.FilterInvalid(m.results)
	default:
		return m.results
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("figembed - Figma embed markers"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press q to quit"))
		return b.String()
	}

	switch m.state {
	case stateScanning:
		b.WriteString(m.spinner.View() + " Scanning for markers...")
	case stateResults:
		b.WriteString(m.renderResults())
	}

	if m.notice != "" {
		b.WriteString("\n" + MutedStyle.Render(m.notice))
	}

	if m.showHelp {
		b.WriteString("\n\n" + m.help.View(m.keys))
	} else {
		b.WriteString("\n\n" + HelpStyle.Render("↑/↓ navigate • f filter • p preview • enter select • q quit"))
	}
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scanned %d file(s), found %d marker(s)\n\n", len(m.files), m.summary.Total)

	if m.summary.Total == 0 {
		b.WriteString(MutedStyle.Render("No embed markers found."))
		return b.String()
	}

	fmt.Fprintf(&b, "%s | %s\n\n",
		SuccessStyle.Render(fmt.Sprintf("✓ %d resolved", m.summary.Resolved)),
		ErrorStyle.Render(fmt.Sprintf("✗ %d invalid", m.summary.Invalid)))

	fmt.Fprintf(&b, "Filter: %s (%d/%d)\n\n",
		SelectedStyle.Render(m.filter.String()), len(m.filteredResults()), m.summary.Total)

	b.WriteString(m.list.View())

	if r, ok := m.current(); ok {
		b.WriteString("\n" + ResultItem{Result: r}.DetailView())
	}
	return b.String()
}
