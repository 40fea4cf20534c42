package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hnasir/askbook"
	"github.com/hnasir/askbook/markdown"
)

var _ tea.Model = Model{}

// entry is one transcript row: the message plus presentation metadata that
// doesn't belong on the domain Message.
type entry struct {
	msg     askbook.Message
	sources []askbook.Source
	isError bool
}

// Model is the Bubble Tea model for the widget. It holds the four pieces of
// widget state: visibility, the append-only transcript, the in-flight flag,
// and the draft input.
type Model struct {
	// Input is the draft composer. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript area. Exported for test access.
	Viewport viewport.Model

	answerer askbook.Answerer
	theme    askbook.Theme
	styles   Styles

	entries []entry
	open    bool
	pending bool

	width  int
	height int
	ready  bool
}

// New creates the widget in its closed state with an empty transcript.
func New(answerer askbook.Answerer, theme askbook.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about the book..."
	ti.Prompt = "> "
	ti.CharLimit = 0

	return Model{
		Input:    ti,
		answerer: answerer,
		theme:    theme,
		styles:   NewStyles(theme),
	}
}

// Open returns whether the panel is visible.
func (m Model) Open() bool { return m.open }

// Pending returns whether an exchange is in flight.
func (m Model) Pending() bool { return m.pending }

// Transcript returns a copy of the transcript messages in arrival order.
func (m Model) Transcript() []askbook.Message {
	msgs := make([]askbook.Message, len(m.entries))
	for i, e := range m.entries {
		msgs[i] = e.msg
	}
	return msgs
}

// Init implements tea.Model. The widget starts closed, so nothing blinks
// until the input is focused by opening the panel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ResultMsg:
		return m.handleResult(msg)
	}

	if !m.open {
		return m, nil
	}

	// Pass remaining messages to sub-components. The viewport always
	// receives them so mouse scrolling keeps working.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if !m.open {
		return m.launcherView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 1
	statusHeight := 1
	inputHeight := 1
	vpHeight := msg.Height - headerHeight - statusHeight - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = msg.Width

	// Re-wrap transcript content at the new width.
	return m.scrollLatest()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlT:
		return m.toggle()

	case tea.KeyEsc:
		if m.open {
			return m.toggle()
		}
		return m, nil

	case tea.KeyEnter:
		if !m.open {
			return m, nil
		}
		return m.send(m.Input.Value())
	}

	if !m.open {
		return m, nil
	}

	// Forward non-character keys to the viewport for scrolling; character
	// keys go only to the input so typing never scrolls the transcript.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// toggle flips the widget between closed and open. Opening requests input
// focus so the user can type immediately; closing only hides the panel and
// leaves the transcript and any in-flight exchange untouched.
func (m Model) toggle() (tea.Model, tea.Cmd) {
	m.open = !m.open
	if !m.open {
		m.Input.Blur()
		return m, nil
	}
	return m, m.Input.Focus()
}

// send runs one accepted exchange cycle: append the user turn, clear the
// draft, raise the pending flag, and issue exactly one request. Blank
// drafts and sends issued while an exchange is pending are no-ops, not
// errors.
func (m Model) send(draft string) (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(draft)
	if query == "" || m.pending {
		return m, nil
	}

	m = m.append(entry{msg: askbook.Message{Origin: askbook.OriginUser, Text: query}})
	m.Input.SetValue("")
	m = m.setPending(true)

	return m, ask(m.answerer, query)
}

// handleResult appends the assistant turn for an exchange outcome and
// releases the pending flag as the terminal step.
func (m Model) handleResult(msg ResultMsg) (tea.Model, tea.Cmd) {
	e := entry{msg: msg.Result.Message()}
	switch r := msg.Result.(type) {
	case askbook.Answer:
		e.sources = r.Sources
	case askbook.Unreachable, askbook.Failure:
		e.isError = true
	}
	m = m.append(e)
	m = m.setPending(false)
	return m, nil
}

// append adds one entry to the end of the transcript. Order is arrival
// order; entries are never reordered, deduplicated, or removed.
func (m Model) append(e entry) Model {
	m.entries = append(m.entries, e)
	return m.scrollLatest()
}

// setPending flips the in-flight flag.
func (m Model) setPending(v bool) Model {
	m.pending = v
	return m.scrollLatest()
}

// scrollLatest re-renders the transcript and snaps the viewport to the most
// recent entry. Invoked after every transcript or pending mutation;
// idempotent and safe to call redundantly.
func (m Model) scrollLatest() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderTranscript())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderTranscript() string {
	if len(m.entries) == 0 {
		return m.styles.Muted.Render("Ask anything about Physical AI & Humanoid Robotics.")
	}
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderEntry(e))
	}
	return b.String()
}

func (m Model) renderEntry(e entry) string {
	width := m.Viewport.Width
	switch {
	case e.msg.Origin == askbook.OriginUser:
		content := m.styles.UserMsg.Render("You: ") + e.msg.Text
		return lipgloss.NewStyle().Width(width).Render(content)

	case e.isError:
		return lipgloss.NewStyle().Width(width).Render(m.styles.Error.Render(e.msg.Text))

	default:
		out := markdown.Render(e.msg.Text, width, m.theme)
		if len(e.sources) > 0 {
			out += "\n" + m.renderSources(e.sources, width)
		}
		return out
	}
}

func (m Model) renderSources(sources []askbook.Source, width int) string {
	refs := make([]string, len(sources))
	for i, s := range sources {
		ref := s.Chapter
		if s.Section != "" {
			ref += " / " + s.Section
		}
		refs[i] = ref
	}
	line := m.styles.Muted.Render("Sources: " + strings.Join(refs, "; "))
	return lipgloss.NewStyle().Width(width).Render(line)
}

func (m Model) launcherView() string {
	hint := m.styles.Accent.Render("Ask the book") + m.styles.Muted.Render("  Ctrl+T")
	return lipgloss.Place(m.width, m.height, lipgloss.Right, lipgloss.Bottom, hint)
}

func (m Model) headerView() string {
	return m.styles.Accent.Render("Ask the book")
}

func (m Model) statusLine() string {
	if m.pending {
		return m.styles.Muted.Render("Searching the book...")
	}
	return m.styles.Muted.Render("Enter to send, Ctrl+T to hide, Ctrl+C to quit")
}
