package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oakenplay/portamento/internal/importer"
	"github.com/oakenplay/portamento/internal/models"
	"github.com/oakenplay/portamento/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	RunningView ViewState = iota
	ResultView
)

type progressMsg importer.Progress

type importDoneMsg struct {
	result *models.ImportResult
	err    error
}

// Model represents the TUI application state for one import run.
type Model struct {
	ctx        context.Context
	view       ViewState
	importer   *importer.Importer
	source     models.Source
	urlOrID    string
	customName string

	width        int
	bar          progress.Model
	progressChan chan importer.Progress
	latest       importer.Progress
	cancelling   bool

	result *models.ImportResult
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model for importing one playlist.
func NewModel(ctx context.Context, im *importer.Importer, src models.Source, urlOrID, customName string) *Model {
	return &Model{
		ctx:        ctx,
		view:       RunningView,
		importer:   im,
		source:     src,
		urlOrID:    urlOrID,
		customName: customName,
		bar:        progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init starts the import and begins consuming progress events.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startImport(), m.waitForProgress())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case RunningView:
			return m.handleRunningKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case progressMsg:
		m.latest = importer.Progress(msg)
		return m, m.waitForProgress()

	case importDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case RunningView:
		return m.renderRunning()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleRunningKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelling = true
		m.importer.CancelImport()
		return m, nil
	case "q", "ctrl+c":
		m.importer.CancelImport()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// startImport runs the import in a goroutine and bridges progress
// events onto the model's channel.
func (m *Model) startImport() tea.Cmd {
	m.progressChan = make(chan importer.Progress, 50)

	unsubscribe := m.importer.OnProgress(func(p importer.Progress) {
		select {
		case m.progressChan <- p:
		default:
		}
	})

	go func() {
		result, err := m.importer.ImportPlaylist(m.ctx, m.source, m.urlOrID, m.customName)
		unsubscribe()
		m.result = result
		m.err = err
		close(m.progressChan)
	}()

	return nil
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.progressChan
		if !ok {
			return importDoneMsg{result: m.result, err: m.err}
		}
		return progressMsg(update)
	}
}

func (m *Model) renderRunning() string {
	title := styles.title.Render(fmt.Sprintf("Importing %s playlist", m.source))

	var phase string
	switch m.latest.Status {
	case importer.StatusMatching:
		phase = fmt.Sprintf("Matching tracks (%d/%d)", m.latest.Current, m.latest.Total)
	case importer.StatusCreating:
		phase = "Saving playlist..."
	default:
		phase = "Fetching playlist..."
	}
	if m.cancelling {
		phase = styles.warn.Render("Cancelling...")
	}

	var bar string
	if m.latest.Total > 0 {
		bar = m.bar.ViewAs(float64(m.latest.Current) / float64(m.latest.Total))
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n%s\n%s\n%s\n\n%s", title, phase, bar, m.latest.Message, helpView)
}

func (m *Model) renderResult() string {
	if errors.Is(m.err, shared.ErrImportCancelled) {
		return styles.warn.Render("Import cancelled") + "\n\nPress q to quit\n"
	}
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Import failed: %v", m.err)) + "\n\nPress q to quit\n"
	}
	if m.result == nil {
		return styles.err.Render("No result available") + "\n\nPress q to quit\n"
	}

	title := styles.ok.Render("✓ Import Complete!")
	info := fmt.Sprintf(
		"\nPlaylist: %s\nMatched: %d/%d tracks\nTook: %s",
		m.result.PlaylistName,
		m.result.Matched,
		m.result.Total,
		m.result.Duration.Round(time.Millisecond),
	)

	var failed string
	if m.result.Failed > 0 {
		failed = fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("Failed to match %d tracks:", m.result.Failed)))
		for _, msg := range m.result.Errors {
			failed += fmt.Sprintf("\n  • %s", msg)
		}
	}

	return fmt.Sprintf("%s%s%s\n\nPress q to quit\n", title, info, failed)
}
