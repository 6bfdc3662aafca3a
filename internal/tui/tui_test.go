package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/extract"
	"github.com/handiism/virtual-moments/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileURL = "https://steamcommunity.com/id/someone"

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModel_PrefillsProfile(t *testing.T) {
	m := NewModel(config.DefaultSettings(), profileURL, nil)

	assert.Equal(t, StateInput, m.state)
	assert.Equal(t, profileURL, m.textInput.Value())
	assert.True(t, m.useBrowser)
	assert.Contains(t, m.View(), "Enter Steam profile URL")
}

func TestModel_ToggleOptions(t *testing.T) {
	m := NewModel(config.DefaultSettings(), profileURL, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.False(t, m.useBrowser)
	assert.True(t, m.verbose)
	assert.Equal(t, profileURL, m.textInput.Value())
}

func TestModel_ProgressFiltersVerbose(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "", nil)

	m = update(t, m, ProgressMsg{Event: extract.ProgressEvent{Message: "parsed one", Level: extract.LevelVerbose}})
	assert.Empty(t, m.logs)

	for i := 0; i < maxLogs+3; i++ {
		m = update(t, m, ProgressMsg{Event: extract.ProgressEvent{Message: "found", Level: extract.LevelInfo}})
	}
	assert.Len(t, m.logs, maxLogs)
}

func TestModel_ExtractDone(t *testing.T) {
	m := NewModel(config.DefaultSettings(), profileURL, nil)
	m.state = StateExtracting

	res := &extract.Result{
		Records: []*model.Screenshot{{Game: "Outer Wilds", Link: "https://img/1", Date: "21 January 2024"}},
		Failures: []model.Failure{
			{Link: "https://steamcommunity.com/sharedfiles/filedetails/?id=2", Err: errors.New("HTTP 404")},
		},
		Links: 2,
	}
	m = update(t, m, ExtractDoneMsg{Result: res})

	assert.Equal(t, StateComplete, m.state)
	view := m.View()
	assert.Contains(t, view, "1 screenshots from 1 games, 1 failed")
	assert.Contains(t, view, "HTTP 404")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, StateInput, m.state)
	assert.Nil(t, m.result)
	assert.Equal(t, profileURL, m.textInput.Value())
}

func TestModel_ExtractError(t *testing.T) {
	m := NewModel(config.DefaultSettings(), profileURL, nil)
	m.state = StateExtracting

	m = update(t, m, ExtractDoneMsg{Err: errors.New("fetch gallery index: boom")})
	assert.Equal(t, StateError, m.state)
	assert.Contains(t, m.View(), "boom")

	m = NewModel(config.DefaultSettings(), profileURL, nil)
	m.state = StateExtracting
	m.cancel()
	m = update(t, m, ExtractDoneMsg{Result: &extract.Result{}, Err: context.Canceled})
	assert.Equal(t, StateError, m.state)
	assert.EqualError(t, m.err, "cancelled by user")
	assert.Contains(t, m.View(), "Partial result saved")
}
