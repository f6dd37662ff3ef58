package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/uncrr/locus/internal/address"
	"github.com/uncrr/locus/internal/filesystem"
	"github.com/uncrr/locus/internal/history"
	"github.com/uncrr/locus/internal/schema"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// HistoryMsg is a [tea.Msg] containing the currently recorded [history.Entry]
// slice, for periodic refreshing of the history panel.
type HistoryMsg struct {
	t       time.Time
	entries []history.Entry
}

// inspection holds one resolved address together with any filesystem metadata
// that could be gathered for it.
type inspection struct {
	addr address.URL
	meta *schema.Metadata
}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *Handler
	fsHandler *filesystem.Handler
	store     *history.Store

	fullWidthWithBorders  int
	splitWidthWithBorders int
	historyRows           int

	addressInput textinput.Model
	logsViewport viewport.Model
	logs         []string

	entries    []history.Entry
	current    *inspection
	inspectErr error

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, fsHandler *filesystem.Handler, store *history.Store, cancel context.CancelFunc) TeaModel {
	addressInput := textinput.New()
	addressInput.Placeholder = "/path | search://path#query | archive://path | sftp://name/path"
	addressInput.Prompt = "> "
	addressInput.Focus()

	logsViewport := viewport.New(80, 10)

	return TeaModel{
		uiHandler:    uiHandler,
		fsHandler:    fsHandler,
		store:        store,
		addressInput: addressInput,
		logsViewport: logsViewport,
		logs:         make([]string, 0, 100),
		historyRows:  10,
		cancel:       cancel,
		ready:        false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		updateHistoryEntries(m.store),
	)
}

// updateHistoryEntries produces a [tea.Cmd] for later scheduling in a
// [tea.Program]. When executed, a [HistoryMsg] with the current [history.Store]
// entries is returned, keeping the rendered visit ages fresh.
func updateHistoryEntries(store *history.Store) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return HistoryMsg{
			t:       t,
			entries: store.Entries(),
		}
	})
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,funlen
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "esc":
			return m, tea.Quit
		case "enter":
			m = m.inspectInput()

			return m, nil
		case "ctrl+p":
			m = m.stepToParent()

			return m, nil
		case "ctrl+b":
			m = m.stepToBase()

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2
		m.splitWidthWithBorders = (m.width / 2) - 2

		m.addressInput.Width = m.fullWidthWithBorders - 4

		// The input panel is fixed; middle panels take about 40% of the rest.
		inputHeight := 4
		middleHeight := (m.height - inputHeight) * 2 / 5
		lowerHeight := m.height - inputHeight - middleHeight

		m.historyRows = middleHeight - 3

		// Viewport height: lower section minus borders, title and help.
		viewportHeight := lowerHeight - 4

		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = viewportHeight

		// Update viewport content with current logs.
		if len(m.logs) > 0 {
			logs := lipgloss.NewStyle().
				Width(m.logsViewport.Width).
				Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

			m.logsViewport.SetContent(logs)
			m.logsViewport.GotoBottom()
		}

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case HistoryMsg:
		m.entries = msg.entries

		// Queue the next refresh.
		cmds = append(cmds, updateHistoryEntries(m.store))

	case LogMsg:
		logMsg := string(msg)

		if len(m.logs) >= 100 {
			m.logs = m.logs[1:]
		}

		m.logs = append(m.logs, logMsg)

		logs := lipgloss.NewStyle().
			Width(m.logsViewport.Width).
			Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

		m.logsViewport.SetContent(logs)
		m.logsViewport.GotoBottom()
	}

	// Handle input field updates.
	m.addressInput, cmd = m.addressInput.Update(msg)
	cmds = append(cmds, cmd)

	// Handle viewport updates.
	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// inspectInput resolves the typed address into an inspection, recording
// successful resolutions in the visit history.
func (m TeaModel) inspectInput() TeaModel {
	raw := strings.TrimSpace(m.addressInput.Value())
	if raw == "" {
		return m
	}

	u, err := address.Parse(raw)
	if err != nil {
		m.current = nil
		m.inspectErr = err

		return m
	}

	return m.showAddress(u)
}

// showAddress sets the given address as the current inspection and records the
// visit. Filesystem metadata is gathered for locally addressable locations.
func (m TeaModel) showAddress(u address.URL) TeaModel {
	m.inspectErr = nil

	insp := &inspection{addr: u}
	if path, ok := u.AsPath(); ok {
		if meta, err := m.fsHandler.Metadata(path); err == nil {
			insp.meta = meta
		}
	}

	m.current = insp
	m.store.Record(u)
	m.entries = m.store.Entries()
	m.addressInput.SetValue(u.String())

	return m
}

// stepToParent replaces the current inspection with its parent address.
func (m TeaModel) stepToParent() TeaModel {
	if m.current == nil {
		return m
	}

	parent, ok := m.current.addr.ParentURL()
	if !ok {
		return m
	}

	return m.showAddress(parent)
}

// stepToBase replaces the current inspection with its base address.
func (m TeaModel) stepToBase() TeaModel {
	if m.current == nil {
		return m
	}

	return m.showAddress(m.current.addr.Base())
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	var s strings.Builder

	inputSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Address"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.addressInput.View()),
			),
		)

	middleSection := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(m.splitWidthWithBorders).Render(m.formatBreakdownView()),
		borderStyle.Width(m.splitWidthWithBorders).Render(m.formatHistoryView()),
	)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("enter: inspect • ctrl+p: parent • ctrl+b: base • esc: quit gui • ctrl+c: quit program")

	s.WriteString(lipgloss.JoinVertical(
		lipgloss.Left,
		inputSection,
		middleSection,
		logsSection,
		helpSection,
	))

	return s.String()
}

// formatBreakdownView is a helper function for rendering the breakdown panel.
func (m TeaModel) formatBreakdownView() string {
	var details string

	switch {
	case m.inspectErr != nil:
		details = fmt.Sprintf("Not a usable address:\n%v\n", m.inspectErr)

	case m.current == nil:
		details = "Type an address and press enter.\n"

	default:
		details = m.formatInspection(m.current)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.splitWidthWithBorders).Render("Breakdown"),
		"", // Empty line for spacing.
		infoStyle.Width(m.splitWidthWithBorders).Render(details),
	)

	return content
}

// formatInspection is a helper function for rendering a single inspection.
func (m TeaModel) formatInspection(insp *inspection) string {
	u := insp.addr

	parentText := "(at the root)"
	if parent, ok := u.ParentURL(); ok {
		parentText = displayText(parent.String())
	}

	details := fmt.Sprintf(
		"Display:   %s\n"+
			"Scheme:    %s\n"+
			"Location:  %s\n"+
			"Base:      %s\n"+
			"Urn:       %s\n"+
			"Name:      %s\n"+
			"Fragment:  %s\n"+
			"Hash:      %016x\n"+
			"Parent:    %s\n",
		displayText(u.String()),
		schemeLabel(u.Scheme()),
		displayText(u.Loc().String()),
		displayText(u.Loc().Base()),
		displayText(u.Loc().Urn().String()),
		displayText(u.Loc().Name()),
		displayText(u.Fragment()),
		u.HashU64(),
		parentText,
	)

	if meta := insp.meta; meta != nil {
		kind := "file"
		switch {
		case meta.IsDir:
			kind = "directory"
		case meta.IsSymlink:
			kind = "symlink"
		}

		details += fmt.Sprintf(
			"\n"+
				"Kind:      %s\n"+
				"Size:      %s\n"+
				"Mode:      %04o\n"+
				"Owner:     %d:%d\n"+
				"Modified:  %s\n",
			kind,
			humanize.Bytes(meta.Size),
			meta.Perms,
			meta.UID,
			meta.GID,
			humanize.Time(time.Unix(meta.ModifiedAt.Sec, meta.ModifiedAt.Nsec)),
		)

		if meta.IsSymlink {
			details += fmt.Sprintf("Links to:  %s\n", meta.SymlinkTo)
		}
	}

	return details
}

// formatHistoryView is a helper function for rendering the visit history panel.
func (m TeaModel) formatHistoryView() string {
	var details strings.Builder

	if len(m.entries) == 0 {
		details.WriteString("No addresses visited yet.\n")
	}

	for i, e := range m.entries {
		if i >= m.historyRows {
			break
		}

		fmt.Fprintf(&details, "%s  (%s)\n", displayText(e.Address.String()), humanize.Time(e.VisitedAt))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.splitWidthWithBorders).Render("Visited"),
		"", // Empty line for spacing.
		infoStyle.Width(m.splitWidthWithBorders).Render(details.String()),
	)

	return content
}

// schemeLabel is a helper function for rendering a [address.Scheme].
func schemeLabel(s address.Scheme) string {
	if s.Kind() == address.SchemeSftp {
		return fmt.Sprintf("%s (connection %q)", s.Kind(), s.Name())
	}

	return s.Kind().String()
}

// displayText is a helper function substituting empty values for rendering.
func displayText(s string) string {
	if s == "" {
		return "(empty)"
	}

	return s
}
