package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/turn"
)

// phase tracks what the play screen is waiting for.
type phase int

const (
	phaseAnswer  phase = iota // answering the current item
	phaseWaiting              // grading in flight
	phaseProbe                // answering a follow-up probe
	phaseDone                 // catalog exhausted
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	stimStyle   = lipgloss.NewStyle().PaddingLeft(2)
	probeStyle  = lipgloss.NewStyle().PaddingLeft(2).Italic(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	traceStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
)

// turnResultMsg carries a finished turn call back into the model.
type turnResultMsg struct {
	res *turn.Result
	err error
}

// Model is the interactive assessment screen.
type Model struct {
	svc *turn.Service

	sessionID string
	item      bank.Item
	input     textinput.Model

	phase     phase
	pending   *turn.Result // probe-phase result awaiting the follow-up
	answer    string       // primary answer held across the probe
	lastTrace []string
	showTrace bool
	theta     float64
	se        float64
	turnCount int
	err       error

	width  int
	height int
}

// NewModel starts a session on the catalog's opening item.
func NewModel(svc *turn.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.Focus()

	return Model{
		svc:   svc,
		item:  bank.FirstItem(),
		input: ti,
		phase: phaseAnswer,
	}
}

// Run starts the program.
func Run(svc *turn.Service) error {
	_, err := tea.NewProgram(NewModel(svc)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.showTrace = !m.showTrace
			return m, nil
		case "enter":
			return m.submit()
		}

	case turnResultMsg:
		return m.applyResult(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit fires the current input at the turn service.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.phase == phaseWaiting || m.phase == phaseDone {
		return m, nil
	}

	var req turn.Request
	switch m.phase {
	case phaseAnswer:
		m.answer = text
		req = turn.Request{
			SessionID: m.sessionID,
			ItemID:    m.item.ID,
			Answer:    text,
		}
	case phaseProbe:
		primary := m.pending.Measurement
		req = turn.Request{
			SessionID:      m.sessionID,
			ItemID:         m.item.ID,
			Answer:         m.answer,
			Primary:        &primary,
			Probe:          m.pending.Probe,
			FollowupAnswer: text,
		}
	}

	m.phase = phaseWaiting
	m.err = nil
	svc := m.svc
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		res, err := svc.Turn(ctx, req)
		return turnResultMsg{res: res, err: err}
	}
}

// applyResult advances the screen from a turn response.
func (m Model) applyResult(msg turnResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		// Recover to the phase the learner was in.
		if m.pending != nil {
			m.phase = phaseProbe
		} else {
			m.phase = phaseAnswer
		}
		return m, nil
	}

	res := msg.res
	m.sessionID = res.SessionID
	m.lastTrace = res.Trace
	m.input.SetValue("")

	switch res.Phase {
	case turn.PhaseProbe:
		m.pending = res
		m.phase = phaseProbe
	case turn.PhaseComplete:
		m.pending = nil
		m.answer = ""
		m.theta = res.ThetaMean
		m.se = res.ThetaSE
		m.turnCount = res.TurnIndex
		if res.NextItem == nil {
			m.phase = phaseDone
		} else {
			m.item = *res.NextItem
			m.phase = phaseAnswer
		}
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder

	b.WriteString(titleStyle.Render("caliper") + "  " + m.statusLine() + "\n\n")
	b.WriteString(stimStyle.Render(m.item.Text) + "\n\n")

	switch m.phase {
	case phaseProbe:
		b.WriteString(probeStyle.Render(m.pending.Probe.Text) + "\n\n")
		b.WriteString("  " + m.input.View() + "\n")
	case phaseAnswer:
		b.WriteString("  " + m.input.View() + "\n")
	case phaseWaiting:
		b.WriteString(statusStyle.Render("  grading...") + "\n")
	case phaseDone:
		b.WriteString(statusStyle.Render("  no items left; session finished") + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("  "+m.err.Error()) + "\n")
	}

	if m.showTrace && len(m.lastTrace) > 0 {
		b.WriteString("\n" + statusStyle.Render("  trace:") + "\n")
		for _, line := range m.lastTrace {
			b.WriteString(traceStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + statusStyle.Render("  enter submit · ctrl+t trace · ctrl+c quit"))

	v.SetContent(b.String())
	return v
}

// statusLine renders theta and progress once a turn has committed.
func (m Model) statusLine() string {
	if m.turnCount == 0 {
		return statusStyle.Render("new session")
	}
	return statusStyle.Render(fmt.Sprintf("turn %d · θ %.2f (se %.2f)", m.turnCount, m.theta, m.se))
}
