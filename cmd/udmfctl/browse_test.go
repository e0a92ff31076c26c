package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/udmf/native"
)

func withLibrary(t *testing.T) {
	t.Helper()
	l, err := native.New(context.Background())
	require.NoError(t, err)
	lib = l
	t.Cleanup(func() {
		_ = l.Close(context.Background())
		lib = nil
	})
}

func typeKeys(m *browseModel, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func TestBrowseModel_Filter(t *testing.T) {
	withLibrary(t)
	m := newBrowseModel(lib.Catalog().IDs())
	assert.Len(t, m.matches, lib.Catalog().Len())

	typeKeys(m, "plain")
	assert.Equal(t, []string{"general.plain-text"}, m.matches)

	typeKeys(m, "zzz")
	assert.Empty(t, m.matches)
	assert.Nil(t, m.describeSelected())
	assert.Contains(t, m.View(), "no matching types")
}

func TestBrowseModel_Navigate(t *testing.T) {
	withLibrary(t)
	m := newBrowseModel([]string{"general.text", "general.plain-text", "general.html"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.selected)

	m.Update(cmd())
	require.NotNil(t, m.detail)
	assert.Equal(t, "general.plain-text", m.detail.TypeID)
	assert.Contains(t, m.View(), "text/plain")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected)
}

func TestBrowseModel_DetailError(t *testing.T) {
	withLibrary(t)
	m := newBrowseModel([]string{"com.example.unknown"})

	m.Update(m.describeSelected()())
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}

func TestBrowseModel_Quit(t *testing.T) {
	m := newBrowseModel(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
