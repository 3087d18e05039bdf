package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/views/detail"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context handed to fetches and the program.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	dashboardView *dashboard.View
	detailView    *detail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dashboardView: dashboard.NewView(s, km, ports.Dashboard),
		detailView:    detail.NewView(s, ports.Dashboard),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It sets the window title and starts the initial load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("creatives"),
		a.dashboardView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.PageLoaded:
		// Fetches complete regardless of which view is showing.
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.CreativeSelected:
		c, ok := a.ports.Dashboard.Creative(msg.ID)
		if !ok {
			return a, nil
		}
		a.detailView.SetCreative(c)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	keyStr := msg.String()

	if keyStr == "ctrl+c" {
		return tea.Quit
	}

	switch a.currentView {
	case messages.ViewDashboard:
		if a.dashboardView.Focus() == dashboard.FocusList {
			switch {
			case keymap.Matches(keyStr, a.keymap.Quit):
				return tea.Quit
			case keymap.Matches(keyStr, a.keymap.Help):
				a.currentView = messages.ViewHelp
				return nil
			}
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return cmd

	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
		return cmd

	case messages.ViewHelp:
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) ||
			keymap.Matches(keyStr, a.keymap.Quit) {
			a.currentView = messages.ViewDashboard
		}
		return nil
	}

	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewDashboard:
		return a.dashboardView.View()
	default:
		return a.dashboardView.View()
	}
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to dashboard"))

	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Dashboard returns the dashboard view.
func (a *App) Dashboard() *dashboard.View {
	return a.dashboardView
}

// Detail returns the detail view.
func (a *App) Detail() *detail.View {
	return a.detailView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
