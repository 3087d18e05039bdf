package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/services"
)

func testCreatives() []domain.Creative {
	return []domain.Creative{
		{ID: "cr-1", MetadataRaw: `{"objective":"awareness"}`, LabelsRaw: `["summer","video"]`,
			MetricsRaw: `{"impressions":1000,"clicks":50,"spend":12.5,"conversions":3,"ctr":0.05}`},
		{ID: "cr-2", MetadataRaw: `{"objective":"sales"}`, LabelsRaw: `["winter"]`, MetricsRaw: `not json`},
		{ID: "cr-3", MetadataRaw: `{}`, LabelsRaw: `["video"]`, MetricsRaw: `{}`},
	}
}

func newTestApp(t *testing.T, pageSize int) (*App, *services.Dashboard) {
	t.Helper()
	svc := services.NewDashboard(memory.NewCreativeSource(testCreatives()), nil, pageSize)
	app, err := NewApp(NewPorts(svc))
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app, svc
}

// drain runs cmd and feeds every resulting message back into the app,
// the way the Bubbletea runtime would.
func drain(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			drain(app, c)
		}
	default:
		_, next := app.Update(msg)
		drain(app, next)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newDashboardOnly() *services.Dashboard {
	return services.NewDashboard(memory.NewCreativeSource(nil), nil, 0)
}
