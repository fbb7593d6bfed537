package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rajatjindal/cloud-plugin/pkg/types"
)

const (
	appListHeight   = 8
	appColWidthID   = 36
	appColWidthName = 28
)

// AppSelectorModel is the bubbletea model for interactive app selection
// with incremental search.
type AppSelectorModel struct {
	apps      []types.App
	filtered  []types.App
	cursor    int
	offset    int // for scrolling
	search    string
	selected  *types.App
	quitting  bool
	cancelled bool
}

// NewAppSelector creates a new app selector model.
func NewAppSelector(apps []types.App) AppSelectorModel {
	return AppSelectorModel{
		apps:     apps,
		filtered: apps,
	}
}

// Init implements tea.Model
func (m AppSelectorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m AppSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.filtered) > 0 {
			m.selected = &m.filtered[m.cursor]
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}

	case tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			if m.cursor >= m.offset+appListHeight {
				m.offset = m.cursor - appListHeight + 1
			}
		}

	case tea.KeyBackspace:
		if len(m.search) > 0 {
			m.search = m.search[:len(m.search)-1]
			m.filterApps()
		}

	case tea.KeyRunes:
		m.search += string(keyMsg.Runes)
		m.filterApps()
	}

	return m, nil
}

// filterApps filters the apps based on the search query.
func (m *AppSelectorModel) filterApps() {
	if m.search == "" {
		m.filtered = m.apps
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, app := range m.apps {
			if strings.Contains(strings.ToLower(app.Name), query) ||
				strings.Contains(strings.ToLower(app.ID.String()), query) {
				m.filtered = append(m.filtered, app)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.offset = 0
	}
}

// View implements tea.Model
func (m AppSelectorModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("Select an app"))
	sb.WriteString("\n")
	sb.WriteString(HintStyle.Render("Type to search, ↑/↓ to move, enter to select, esc to cancel"))
	sb.WriteString("\n\n")

	sb.WriteString(MutedStyle.Render("Search: "))
	sb.WriteString(m.search)
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(MutedStyle.Render("  no apps match"))
		sb.WriteString("\n")
		return sb.String()
	}

	end := m.offset + appListHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		app := m.filtered[i]
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		row := fmt.Sprintf("%s%s  %s",
			marker,
			PadRight(app.Name, appColWidthName),
			IDStyle.Render(PadRight(app.ID.String(), appColWidthID)))

		if i == m.cursor {
			row = NameStyle.Render(row)
		}
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(MutedStyle.Render(fmt.Sprintf("  %d/%d apps", len(m.filtered), len(m.apps))))
	sb.WriteString("\n")

	return sb.String()
}

// SelectApp runs the interactive selector and returns the chosen app.
// A nil error with nil app never happens; cancellation returns an error.
func SelectApp(apps []types.App) (*types.App, error) {
	program := tea.NewProgram(NewAppSelector(apps))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	model, ok := final.(AppSelectorModel)
	if !ok || model.cancelled || model.selected == nil {
		return nil, fmt.Errorf("selection cancelled")
	}

	return model.selected, nil
}
