// Package tui provides a Bubble Tea terminal user interface for screenshot extraction.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/extract"
	ioutils "github.com/handiism/virtual-moments/internal/io"
	"go.uber.org/zap"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#66C0F4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// maxLogs is the number of progress lines kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateExtracting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   extract.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logger    *zap.Logger
	logs      []LogEntry
	err       error

	// Extraction context
	ctx    context.Context
	cancel context.CancelFunc

	pipeline *extract.Pipeline
	events   chan extract.ProgressEvent
	result   *extract.Result

	done  int32
	total int32

	// Options
	useBrowser bool
	verbose    bool

	width  int
	height int
}

// NewModel creates a new TUI model. profileURL prefills the input.
func NewModel(settings *config.Settings, profileURL string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "https://steamcommunity.com/id/someone"
	ti.SetValue(profileURL)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#66C0F4"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateInput,
		textInput:  ti,
		spinner:    sp,
		progress:   prog,
		settings:   settings,
		logger:     logger,
		logs:       make([]LogEntry, 0),
		ctx:        ctx,
		cancel:     cancel,
		useBrowser: settings.UseBrowser,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries a pipeline progress event.
	ProgressMsg struct {
		Event extract.ProgressEvent
	}

	// ExtractDoneMsg is sent when the pipeline returns and content.json
	// has been written.
	ExtractDoneMsg struct {
		Result *extract.Result
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateExtracting {
				// The pipeline returns its partial result once it sees the cancellation.
				m.cancel()
				m.appendLog(LogEntry{Message: "Cancelling...", Level: extract.LevelWarning})
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.startExtraction()
				return m, tea.Batch(m.runExtraction(strings.TrimSpace(m.textInput.Value())), m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.useBrowser = !m.useBrowser
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new extraction
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.result = nil
				m.done = 0
				m.total = 0
				m.pipeline = nil
				m.events = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level != extract.LevelVerbose || m.verbose {
			m.appendLog(LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		}
		if m.state == StateExtracting {
			cmds = append(cmds, m.waitForEvent())
		}

	case ExtractDoneMsg:
		m.result = msg.Result
		if m.pipeline != nil {
			m.done, m.total = m.pipeline.Progress()
		}
		switch {
		case msg.Err != nil && m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from the pipeline
		if m.pipeline != nil && m.state == StateExtracting {
			m.done, m.total = m.pipeline.Progress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.done) / float64(m.total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) appendLog(entry LogEntry) {
	m.logs = append(m.logs, entry)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// startExtraction creates the pipeline for the current options.
func (m *Model) startExtraction() {
	settings := *m.settings
	settings.UseBrowser = m.useBrowser

	events := make(chan extract.ProgressEvent, 64)
	m.events = events
	m.pipeline = extract.New(&settings, m.logger, func(event extract.ProgressEvent) {
		select {
		case events <- event:
		default:
			// Drop events the UI cannot keep up with; counters are polled.
		}
	})
	m.state = StateExtracting
}

// waitForEvent returns a command delivering the next progress event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// runExtraction runs the pipeline in background and saves content.json.
func (m Model) runExtraction(profileURL string) tea.Cmd {
	ctx, pipeline, events := m.ctx, m.pipeline, m.events
	contentPath := m.settings.ContentPath
	logger := m.logger

	return func() tea.Msg {
		defer close(events)

		res, err := pipeline.Run(ctx, profileURL)
		if res == nil {
			return ExtractDoneMsg{Err: err}
		}

		// Partial results are saved too.
		if saveErr := ioutils.SaveContent(context.Background(), contentPath, res.Records); saveErr != nil {
			logger.Error("save content", zap.Error(saveErr))
			if err == nil {
				err = saveErr
			}
		}
		return ExtractDoneMsg{Result: res, Err: err}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📸 Virtual Moments"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Collect your Steam screenshots"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExtracting:
		b.WriteString(m.viewExtracting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter Steam profile URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	browserCheck := "[ ]"
	if m.useBrowser {
		browserCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Scroll gallery in browser (ctrl+o)\n", browserCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+t)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Content file: %s", m.settings.ContentPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExtracting() string {
	var b strings.Builder

	if m.total == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading gallery..."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.progress.ViewAs(float64(m.done) / float64(m.total)))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Screenshots: %d/%d", m.done, m.total)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	failed := 0
	if m.result != nil {
		failed = len(m.result.Failures)
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Extraction Complete!\n\n"+
			"%s\n"+
			"Saved to: %s",
		m.result.Summary(),
		m.settings.ContentPath,
	))
	b.WriteString(box)
	b.WriteString("\n")

	if failed > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%d screenshot(s) failed:", failed)))
		b.WriteString("\n")
		for i, f := range m.result.Failures {
			if i == maxLogs {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", failed-maxLogs)))
				b.WriteString("\n")
				break
			}
			b.WriteString(errorStyle.Render(fmt.Sprintf("  ✗ %s: %s", f.Link, f.Reason())))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}
	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Partial result saved to %s: %s", m.settings.ContentPath, m.result.Summary())))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case extract.LevelError:
			style = errorStyle
			prefix = "✗"
		case extract.LevelWarning:
			style = warningStyle
			prefix = "!"
		case extract.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case extract.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+o: browser • ctrl+t: verbose • esc: quit"
	case StateExtracting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new extraction • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, profileURL string, logger *zap.Logger) error {
	p := tea.NewProgram(NewModel(settings, profileURL, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
