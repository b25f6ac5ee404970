package src

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	header := m.viewHeader()
	body := m.viewBody()
	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *model) viewHeader() string {
	// Setting and unsetting the background keeps the spaces in the logo
	// transparent so only the characters are colored.
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5FAFFF")).Bold(true).
		Background(lipgloss.Color("#000000")).UnsetBackground()
	subtitle := m.style.Header.Render(fmt.Sprintf("model: %s · server: %s", m.cfg.Model, m.cfg.BaseURL))
	styledLogo := logoStyle.Render(logo)

	return lipgloss.JoinVertical(lipgloss.Left, styledLogo, subtitle)
}

func (m *model) viewBody() string {
	switch m.mode {
	case modeHome:
		return m.style.List.Render(m.home.View())
	case modeDemos:
		return m.style.List.Render(m.demos.View())
	case modeProjects:
		return m.style.List.Render(m.projects.View())
	case modePrompt:
		return m.viewPrompt()
	case modeRunning:
		return m.viewRunning()
	case modeResult:
		return m.style.RunContainer.Render(m.viewport.View())
	default:
		return ""
	}
}

func (m *model) viewFooter() string {
	help := "ctrl+c: quit"
	switch m.mode {
	case modeHome:
		help = "enter: select | q: quit"
	case modeDemos, modeProjects:
		help += " | enter: select | esc: back"
	case modePrompt:
		help += " | enter: generate | esc: back"
	case modeResult:
		help += " | esc: home | ↑/↓: scroll"
	}
	return m.style.Footer.Render(help)
}

func (m *model) viewPrompt() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.style.ListHeader.Render("Describe Your Project"),
		m.style.Subtle.Render("One or two sentences is enough. Devyan plans, codes, tests and documents it."),
		m.style.Textarea.Render(m.textarea.View()),
	)
}

func (m *model) viewRunning() string {
	status := m.style.Thinking.Render(fmt.Sprintf("Devyan %s generating", m.spinner.View()))
	return m.style.RunContainer.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		status,
	))
}
