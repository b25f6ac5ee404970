package src

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ChronoRixun/devyan/src/ui"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.viewHeader())
		footerHeight := lipgloss.Height(m.viewFooter())
		m.width, m.height = msg.Width, msg.Height
		listHeight := m.height - headerHeight - footerHeight - 2
		m.home.SetSize(m.width-2, listHeight)
		m.demos.SetSize(m.width-2, listHeight)
		m.projects.SetSize(m.width-2, listHeight)
		m.textarea.SetWidth(m.width - 4)
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - headerHeight - footerHeight - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {

		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.mode == modeHome {
				return m, tea.Quit
			}

		case "esc":
			switch m.mode {
			case modeDemos, modeProjects, modeResult:
				m.mode = modeHome
			case modePrompt:
				m.mode = modeHome
				m.textarea.Reset()
			}
			return m, nil

		case "enter":
			switch m.mode {

			case modeHome:
				if i, ok := m.home.SelectedItem().(menuItem); ok {
					switch i.name {
					case "describe":
						m.mode = modePrompt
						m.textarea.Focus()
						return m, textarea.Blink
					case "demos":
						m.mode = modeDemos
					case "projects":
						m.projects.SetItems(loadProjects(m.cfg.OutputDir))
						m.mode = modeProjects
					}
				}
				return m, nil

			case modeDemos:
				if d, ok := m.demos.SelectedItem().(demo); ok {
					return m.startRun(d.prompt)
				}
				return m, nil

			case modePrompt:
				raw := strings.TrimSpace(m.textarea.Value())
				if raw == "" {
					return m, nil
				}
				m.textarea.Reset()
				return m.startRun(raw)
			}
		}

	case runLineMsg:
		m.mu.Lock()
		m.output += msg.line + "\n"
		m.mu.Unlock()
		m.viewport.SetContent(m.output)
		m.viewport.GotoBottom()
		return m, tea.Batch(m.waitForRunLine(), m.spinner.Tick)

	case runDoneMsg:
		m.isRunning = false
		m.mode = modeResult
		if m.run != nil && m.run.Success {
			if doc, err := os.ReadFile(filepath.Join(m.run.Dir, ArchitectureFile)); err == nil {
				m.output += "\n" + m.style.Accent.Render("── Architecture preview ──") + "\n"
				m.output += ui.RenderMarkdown(string(doc), m.viewport.Width)
			}
			m.output += "\n" + m.style.Success.Render("✅ Done. Press esc to return home.") + "\n"
		} else {
			m.output += "\n" + m.style.Error.Render("⚠️ Finished with problems. Press esc to return home.") + "\n"
		}
		m.viewport.SetContent(m.output)
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeHome:
		m.home, cmd = m.home.Update(msg)
	case modeDemos:
		m.demos, cmd = m.demos.Update(msg)
	case modeProjects:
		m.projects, cmd = m.projects.Update(msg)
	case modePrompt:
		m.textarea, cmd = m.textarea.Update(msg)
	case modeRunning, modeResult:
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if m.isRunning {
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmd = tea.Batch(cmd, spinnerCmd)
	}
	return m, cmd
}

// startRun launches one generation pipeline in the background and switches
// the UI into the live progress view.
func (m *model) startRun(request string) (*model, tea.Cmd) {
	m.runCh = make(chan string, 256)
	ch := m.runCh

	emit := func(line string) {
		// Drop lines rather than block the pipeline when the UI lags.
		select {
		case ch <- line:
		default:
		}
	}

	logger := zerolog.New(io.Discard)
	m.run = NewRun(m.cfg, m.client, request, emit, logger)
	m.output = ""
	m.isRunning = true
	m.mode = modeRunning
	m.viewport.SetContent("")

	run := m.run
	ctx := m.ctx
	go func() {
		defer close(ch)
		if err := run.Execute(ctx); err != nil {
			emit("❌ " + err.Error())
		}
	}()

	return m, tea.Batch(m.waitForRunLine(), m.spinner.Tick)
}

// waitForRunLine blocks on the run channel and converts each progress line
// into a message. Channel close signals the end of the run.
func (m *model) waitForRunLine() tea.Cmd {
	ch := m.runCh
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return runDoneMsg{}
		}
		return runLineMsg{line: line}
	}
}
