package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/careerfolio/resume-agent/internal/adapters/driving/tui/styles"
	"github.com/careerfolio/resume-agent/internal/core/domain"
)

// exchange is one question and its answer in the transcript.
type exchange struct {
	question string
	outcome  *domain.QueryOutcome
}

// answerMsg carries a completed answer back into the update loop.
type answerMsg struct {
	question string
	outcome  *domain.QueryOutcome
}

// App is the chat application model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	input    textinput.Model
	viewport viewport.Model

	transcript []exchange

	// thinking is true while an answer is being produced; further
	// submissions are ignored until it arrives.
	thinking bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Ask about the resume and press Enter"
	input.CharLimit = 0
	input.Focus()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   styles.DefaultStyles(),
		input:    input,
		viewport: viewport.New(0, 0),
	}, nil
}

// WithContext sets the context used for agent calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init returns the initial command (text input cursor blink).
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key, window and answer events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case answerMsg:
		a.thinking = false
		a.transcript = append(a.transcript, exchange{
			question: msg.question,
			outcome:  msg.outcome,
		})
		a.viewport.SetContent(a.renderTranscript())
		a.viewport.GotoBottom()
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a, a.submit()
		case tea.KeyUp:
			a.viewport.ScrollUp(1)
			return a, nil
		case tea.KeyDown:
			a.viewport.ScrollDown(1)
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit sends the current input to the agent. Returns nil when the
// input is empty or an answer is already pending.
func (a *App) submit() tea.Cmd {
	question := strings.TrimSpace(a.input.Value())
	if question == "" || a.thinking {
		return nil
	}

	a.thinking = true
	a.input.Reset()

	ctx := a.ctx
	agent := a.ports.Agent
	return func() tea.Msg {
		return answerMsg{
			question: question,
			outcome:  agent.ProcessQuery(ctx, question),
		}
	}
}

// View renders the chat layout.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.styles.Title.Render("Resume Agent Chat")
	transcript := a.styles.Transcript.Render(a.viewport.View())
	input := a.styles.InputField.Render(a.input.View())

	status := a.styles.Help.Render("enter ask · up/down scroll · esc quit")
	if a.thinking {
		status = a.styles.Muted.Render("Thinking...")
	}

	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (a *App) resize(width, height int) {
	a.ready = true
	a.width = width
	a.height = height

	_, transcriptFrame := a.styles.Transcript.GetFrameSize()
	_, inputFrame := a.styles.InputField.GetFrameSize()

	// Header and status each take one line.
	reserved := 2 + transcriptFrame + inputFrame + 1
	viewportHeight := height - reserved
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	a.viewport.Width = max(20, width-transcriptFrame)
	a.viewport.Height = viewportHeight
	a.input.Width = max(20, width-inputFrame-len(a.input.Prompt))
	a.viewport.SetContent(a.renderTranscript())
}

// renderTranscript formats all exchanges for the viewport.
func (a *App) renderTranscript() string {
	if len(a.transcript) == 0 {
		return a.styles.Muted.Render("Ask a question about the resume to get started.")
	}

	var b strings.Builder
	for i, e := range a.transcript {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(a.styles.Question.Render("You: " + e.question))
		b.WriteString("\n")
		b.WriteString(a.styles.Answer.Render(e.outcome.Response))
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf(
			"[%s · confidence %.2f · %d sources]",
			e.outcome.Category, e.outcome.Confidence, e.outcome.SourceChunks,
		)))
	}
	return b.String()
}
