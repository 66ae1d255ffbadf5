package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizapp/internal/quiz"
	"quizapp/internal/verbose"
)

// Options configures the live UI model.
type Options struct {
	NoColor   bool
	Title     string
	SessionID string
	Logger    *verbose.Logger
}

// Model renders a quiz session with Bubble Tea. It reads session state
// and changes it only through the session's tap and next entry points.
type Model struct {
	session *quiz.Session
	keys    keyMap
	help    help.Model
	table   table.Model
	cursor  int
	notice  string
	aborted bool
	opts    Options
}

// NewModel constructs a live UI model for a session.
func NewModel(session *quiz.Session, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	h := help.New()
	if opts.NoColor {
		h.Styles = help.Styles{}
	}
	m := Model{
		session: session,
		keys:    defaultKeyMap(),
		help:    h,
		table:   t,
		opts:    opts,
	}
	if session.Completed() {
		m.fillSummary()
	}
	return m
}

// Init has no startup work; the model waits for key presses.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// View renders the current question or the summary.
func (m Model) View() string {
	if m.session.Completed() {
		return renderSummary(m)
	}
	return renderQuestion(m)
}

// Aborted reports whether the user quit before finishing.
func (m Model) Aborted() bool {
	return m.aborted
}

// Cursor returns the highlighted choice index.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the last message shown to the user, such as an invalid pick.
func (m Model) Notice() string {
	return m.notice
}

// State returns the session snapshot.
func (m Model) State() quiz.FlowState {
	return m.session.State()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if !m.session.Completed() {
			m.aborted = true
			m.opts.Logger.Printf("quit at question %d", m.session.State().Index+1)
		}
		return m, tea.Quit
	}
	if m.session.Completed() {
		if key.Matches(msg, m.keys.Next) {
			return m, tea.Quit
		}
		return m, nil
	}

	question, _ := m.session.Current()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(question.Choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m = m.pick(m.cursor)
	case key.Matches(msg, m.keys.Pick):
		number, err := strconv.Atoi(msg.String())
		if err == nil {
			m = m.pick(number - 1)
		}
	case key.Matches(msg, m.keys.Next):
		m = m.advance()
	}
	return m, nil
}

func (m Model) pick(index int) Model {
	if err := m.session.OnChoiceTapped(index); err != nil {
		m.notice = err.Error()
		m.opts.Logger.Printf("rejected choice %d: %v", index+1, err)
		return m
	}
	m.notice = ""
	m.cursor = index
	m.opts.Logger.Printf("picked choice %d, selection %s", index+1, m.session.Selection())
	return m
}

func (m Model) advance() Model {
	before := m.session.State()
	state, err := m.session.OnNextPressed()
	if err != nil {
		m.notice = err.Error()
		return m
	}
	m.opts.Logger.Printf("advanced past question %d with %s", before.Index+1, before.Selection)
	m.cursor = 0
	m.notice = ""
	if state.Completed() {
		m.opts.Logger.Printf("completed with score %s", state.Result)
		m.fillSummary()
	}
	return m
}

func (m *Model) fillSummary() {
	state := m.session.State()
	reviews, err := quiz.Review(m.session.Questions(), state.Answers)
	if err != nil {
		m.notice = err.Error()
		return
	}
	rows := rowsForReviews(reviews)
	m.table.SetRows(rows)
	m.table.SetHeight(max(len(rows)+1, 2))
}

// stylize applies optional styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
