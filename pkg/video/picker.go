package video

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerModel is an interactive table of video files. Enter picks the
// highlighted file, r reshuffles the order, q quits without picking.
type PickerModel struct {
	dir      string
	files    []File
	table    table.Model
	selected *File
	quitting bool
}

// NewPicker creates a picker over the given files, displayed relative to dir.
func NewPicker(dir string, files []File) *PickerModel {
	m := &PickerModel{dir: dir, files: files}
	m.table = m.createTable()
	return m
}

// Selected returns the picked file, or nil if the picker was dismissed.
func (m *PickerModel) Selected() *File {
	return m.selected
}

func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "FILE", Width: 56},
		{Title: "SIZE", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(minInt(len(m.files), 15)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *PickerModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.files))
	for i, rel := range RelPaths(m.dir, m.files) {
		rows = append(rows, table.Row{rel, humanSize(m.files[i].Size)})
	}
	return rows
}

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.files) > 0 {
				f := m.files[m.table.Cursor()]
				m.selected = &f
			}
			m.quitting = true
			return m, tea.Quit
		case "r":
			Shuffle(m.files)
			m.table.SetRows(m.rows())
			m.table.SetCursor(0)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	if m.quitting {
		return ""
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).
		Render("[enter] play  [r] reshuffle  [q] quit")

	return m.table.View() + "\n" + help + "\n"
}

// RunPicker shows the picker and returns the chosen file, or nil if the
// user quit without choosing.
func RunPicker(dir string, files []File) (*File, error) {
	model := NewPicker(dir, files)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	picker, ok := final.(*PickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}

	return picker.Selected(), nil
}

// humanSize formats a byte count for the size column.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
