// Package tui provides the interactive chat screen for driving an intake
// session from a terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/funnel"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/intake"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

var (
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	notifyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// line is one rendered transcript entry.
type line struct {
	author string
	text   string
}

// Model is the bubbletea model for the chat screen.
type Model struct {
	svc       *intake.Service
	sessionID string
	input     textinput.Model
	lines     []line
	history   []string
	stage     model.FunnelStage
	leadScore int
	notified  bool
	width     int
	quitting  bool
}

// NewModel creates the chat model bound to a session.
func NewModel(svc *intake.Service, sessionID string) Model {
	input := textinput.New()
	input.Placeholder = "Tell us about your project..."
	input.Focus()
	input.CharLimit = 500

	prospect := svc.CreateSession(sessionID)
	return Model{
		svc:       svc,
		sessionID: sessionID,
		input:     input,
		stage:     prospect.CurrentStage,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			utterance := strings.TrimSpace(m.input.Value())
			if utterance == "" {
				return m, nil
			}
			m = m.processTurn(utterance)
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// processTurn feeds the utterance through the intake service. The core is
// synchronous and in-process, so no async command is needed.
func (m Model) processTurn(utterance string) Model {
	result, err := m.svc.ProcessTurn(context.Background(), m.sessionID, utterance, m.history)
	m.lines = append(m.lines, line{author: "you", text: utterance})
	if err != nil {
		// The service already falls back internally; this is belt and braces.
		m.lines = append(m.lines, line{author: "agent", text: funnel.FallbackMessage})
		return m
	}
	m.history = append(m.history, utterance)
	m.lines = append(m.lines, line{author: "agent", text: result.Message})
	m.stage = result.Stage
	m.notified = m.notified || result.Package != nil
	if prospect, err := m.svc.GetProspect(m.sessionID); err == nil {
		m.leadScore = prospect.Qualification.LeadScore
	}
	return m
}

// View renders the transcript, status bar, and input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, l := range m.lines {
		switch l.author {
		case "you":
			b.WriteString(userStyle.Render("you> ") + l.text + "\n")
		default:
			b.WriteString(agentStyle.Render("agent> ") + l.text + "\n")
		}
	}

	status := fmt.Sprintf("stage: %s · lead score: %d", m.stage, m.leadScore)
	if m.notified {
		status += " · " + notifyStyle.Render("handoff issued")
	}
	b.WriteString("\n" + statusStyle.Render(status) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(statusStyle.Render("esc to quit"))
	return b.String()
}

// Run starts the chat screen and blocks until the user quits.
func Run(svc *intake.Service, sessionID string) error {
	program := tea.NewProgram(NewModel(svc, sessionID))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat UI failed: %w", err)
	}
	return nil
}
