package video

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles() []File {
	return []File{
		{Path: "/m/a.mkv", Size: 100},
		{Path: "/m/b.mkv", Size: 2048},
	}
}

func TestNewPicker(t *testing.T) {
	m := NewPicker("/m", testFiles())

	assert.Nil(t, m.Selected())
	assert.NotEmpty(t, m.View())
}

func TestPicker_EnterSelects(t *testing.T) {
	m := NewPicker("/m", testFiles())

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picker, ok := model.(*PickerModel)
	require.True(t, ok)
	require.NotNil(t, picker.Selected())
	assert.Equal(t, "/m/a.mkv", picker.Selected().Path)
	assert.NotNil(t, cmd, "enter must quit the program")
}

func TestPicker_QuitWithoutSelecting(t *testing.T) {
	m := NewPicker("/m", testFiles())

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	picker := model.(*PickerModel)
	assert.Nil(t, picker.Selected())
	assert.NotNil(t, cmd)
	assert.Empty(t, picker.View(), "view clears after quitting")
}

func TestPicker_ReshuffleKeepsFiles(t *testing.T) {
	files := testFiles()
	m := NewPicker("/m", files)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	picker := model.(*PickerModel)
	assert.Len(t, picker.files, len(files))
	assert.Nil(t, picker.Selected())
}

func TestPicker_EnterOnEmptyList(t *testing.T) {
	m := NewPicker("/m", nil)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picker := model.(*PickerModel)
	assert.Nil(t, picker.Selected())
	assert.NotNil(t, cmd)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "100 B", humanSize(100))
	assert.Equal(t, "2.0 KiB", humanSize(2048))
	assert.Equal(t, "1.5 GiB", humanSize(1610612736))
}
