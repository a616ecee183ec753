package prompt

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lerenn/resource-cleaner/pkg/fs"
)

// itemKind tells what choosing a folder list item does.
type itemKind int

const (
	itemSelect itemKind = iota
	itemParent
	itemChild
)

// folderItem is one line of the folder browser.
type folderItem struct {
	kind  itemKind
	label string
	path  string
}

// folderModel represents the Bubble Tea model for folder selection.
type folderModel struct {
	fs       fs.FS
	dir      string
	items    []folderItem
	cursor   int
	err      error
	selected string
	quitting bool
}

// initialFolderModel creates a folder model positioned on start.
func initialFolderModel(fsys fs.FS, start string) folderModel {
	m := folderModel{fs: fsys}

	dir, err := filepath.Abs(start)
	if err != nil {
		dir = filepath.Clean(start)
	}
	m.open(dir)

	return m
}

// open makes dir the browsed directory and lists its subdirectories.
func (m *folderModel) open(dir string) {
	m.dir = dir
	m.cursor = 0
	m.err = nil
	m.items = []folderItem{{kind: itemSelect, label: "./ (use this folder)", path: dir}}

	if parent := filepath.Dir(dir); parent != dir {
		m.items = append(m.items, folderItem{kind: itemParent, label: "../", path: parent})
	}

	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		m.err = err
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m.items = append(m.items, folderItem{
			kind:  itemChild,
			label: entry.Name() + "/",
			path:  filepath.Join(dir, entry.Name()),
		})
	}
}

// Init initializes the model.
func (m folderModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m folderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m folderModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ":
		m.selected = m.dir
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "left", "h", "backspace":
		if parent := filepath.Dir(m.dir); parent != m.dir {
			m.open(parent)
		}
	case "enter", "right", "l":
		item := m.items[m.cursor]
		if item.kind == itemSelect {
			m.selected = item.path
			return m, tea.Quit
		}
		m.open(item.path)
	}

	return m, nil
}

// View renders the UI.
func (m folderModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	// Header
	s.WriteString("? Choose the project root:  [Use arrows to move, Enter to open]\n")
	s.WriteString(fmt.Sprintf("  %s\n\n", m.dir))

	if m.err != nil {
		s.WriteString(fmt.Sprintf("  (cannot list folder: %v)\n\n", m.err))
	}

	for i, item := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, item.label))
	}

	// Footer
	s.WriteString("\nSpace to use the current folder, Backspace to go up, q to quit")

	return s.String()
}

// promptSelectFolderBubbleTea runs the Bubble Tea program for folder selection.
func promptSelectFolderBubbleTea(fsys fs.FS, start string) (string, error) {
	p := tea.NewProgram(initialFolderModel(fsys, start))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(folderModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}

	// Check if user quit without selecting
	if model.selected == "" {
		return "", ErrNoSelection
	}

	return model.selected, nil
}
