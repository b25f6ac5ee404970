package src

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ChronoRixun/devyan/src/ui"
)

type mode int

const (
	modeHome mode = iota
	modeDemos
	modePrompt
	modeRunning
	modeResult
	modeProjects
)

const logo = `
██████╗ ███████╗██╗   ██╗██╗   ██╗ █████╗ ███╗   ██╗
██╔══██╗██╔════╝██║   ██║╚██╗ ██╔╝██╔══██╗████╗  ██║
██║  ██║█████╗  ██║   ██║ ╚████╔╝ ███████║██╔██╗ ██║
██║  ██║██╔══╝  ╚██╗ ██╔╝  ╚██╔╝  ██╔══██║██║╚██╗██║
██████╔╝███████╗ ╚████╔╝    ██║   ██║  ██║██║ ╚████║
╚═════╝ ╚══════╝  ╚═══╝     ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝
          P R O J E C T  ·  G E N E R A T O R
`

type menuItem struct{ name, desc string }

func (i menuItem) Title() string       { return i.name }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.name }

// runLineMsg carries one progress line from a running pipeline.
type runLineMsg struct {
	line string
}

// runDoneMsg is sent once the pipeline goroutine has finished.
type runDoneMsg struct{}

type model struct {
	ctx    context.Context
	cfg    Config
	client ChatClient
	mode   mode

	home     list.Model
	demos    list.Model
	projects list.Model
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	run       *Run
	runCh     chan string
	isRunning bool
	output    string

	width  int
	height int
	style  ui.Styles

	Program *tea.Program
	mu      sync.Mutex
}

func NewModel(ctx context.Context, cfg Config, client ChatClient) *model {
	home := list.New(homeItems(), list.NewDefaultDelegate(), 0, 0)
	home.Title = "Devyan"
	home.SetShowHelp(false)
	home.SetShowStatusBar(false)
	home.SetFilteringEnabled(false)

	demoItems := make([]list.Item, 0, len(Demos()))
	for _, d := range Demos() {
		demoItems = append(demoItems, d)
	}
	demos := list.New(demoItems, list.NewDefaultDelegate(), 0, 0)
	demos.Title = "Demo Projects"
	demos.SetShowHelp(false)
	demos.SetShowStatusBar(false)
	demos.SetFilteringEnabled(false)

	projects := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	projects.Title = "Generated Projects"
	projects.SetShowHelp(false)
	projects.SetShowStatusBar(false)
	projects.SetFilteringEnabled(false)

	ta := textarea.New()
	ta.Placeholder = "Describe the project you want built..."
	ta.SetHeight(4)

	vp := viewport.New(0, 0)
	vp.SetContent("Welcome to Devyan! Pick an option to get started.")

	st := ui.NewStyles()

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = st.Thinking

	return &model{
		ctx:      ctx,
		cfg:      cfg,
		client:   client,
		mode:     modeHome,
		home:     home,
		demos:    demos,
		projects: projects,
		textarea: ta,
		viewport: vp,
		spinner:  s,
		style:    st,
	}
}

func homeItems() []list.Item {
	return []list.Item{
		menuItem{"describe", "Describe a project in your own words"},
		menuItem{"demos", "Pick one of the built-in demo projects"},
		menuItem{"projects", "Browse previously generated projects"},
	}
}

func (m *model) Init() tea.Cmd { return nil }
