package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/services"
)

func TestNewApp_Success(t *testing.T) {
	app, _ := newTestApp(t, 2)

	assert.Equal(t, messages.ViewDashboard, app.CurrentView())
	assert.NotNil(t, app.Dashboard())
	assert.NotNil(t, app.Detail())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingDashboardService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := newTestApp(t, 2)

	assert.Equal(t, app, app.WithContext(context.Background()))
}

func TestApp_View_BeforeReady(t *testing.T) {
	app, err := NewApp(NewPorts(newDashboardOnly()))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
	assert.False(t, app.Ready())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := newTestApp(t, 2)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Init_LoadsFirstPage(t *testing.T) {
	app, svc := newTestApp(t, 2)

	drain(app, app.Init())

	state := svc.State()
	assert.Equal(t, 2, state.Total)
	assert.True(t, state.CanLoadMore)
	assert.Equal(t, 2, app.Dashboard().State().Total)
	assert.Contains(t, app.View(), "cr-1")
	assert.Contains(t, app.View(), "awareness")
}

func TestApp_Init_SecondCallDoesNotFetchAgain(t *testing.T) {
	app, svc := newTestApp(t, 2)

	drain(app, app.Init())
	drain(app, app.Init())

	assert.Equal(t, 2, svc.State().Total)
}

func TestApp_LoadMore_UntilExhausted(t *testing.T) {
	app, svc := newTestApp(t, 2)
	drain(app, app.Init())

	_, cmd := app.Update(key("m"))
	require.NotNil(t, cmd)
	assert.True(t, svc.State().IsLoading, "guard is claimed before the fetch runs")
	assert.Contains(t, app.View(), "Loading")

	// A second press while in flight is a no-op.
	_, dup := app.Update(key("m"))
	assert.Nil(t, dup)

	drain(app, cmd)
	assert.Equal(t, 3, svc.State().Total)
	assert.False(t, svc.State().CanLoadMore)
	assert.Contains(t, app.View(), "All creatives loaded")

	_, cmd = app.Update(key("m"))
	assert.Nil(t, cmd)
}

func TestApp_Reload_RestartsSession(t *testing.T) {
	app, svc := newTestApp(t, 2)
	drain(app, app.Init())

	_, cmd := app.Update(key("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, 0, svc.State().Total)

	drain(app, cmd)
	assert.Equal(t, 2, svc.State().Total)
}

func TestApp_ReloadDuringFetch_WaitsForCompletion(t *testing.T) {
	src := memory.NewCreativeSource(testCreatives())
	svc := services.NewDashboard(src, nil, 2)
	app, err := NewApp(NewPorts(svc))
	require.NoError(t, err)
	app.SetDimensions(100, 30)

	first := app.Dashboard().Init()
	require.NotNil(t, first)

	// The initial load has claimed the guard but not yet run.
	_, reload := app.Update(key("r"))
	assert.Nil(t, reload, "no second fetch while the first is in flight")
	assert.True(t, svc.State().IsLoading)

	msg := first()
	assert.Equal(t, 1, src.Requests())
	_, next := app.Update(msg)
	require.NotNil(t, next, "completion of the old fetch starts the deferred load")
	assert.Equal(t, 0, svc.State().Total)

	drain(app, next)
	assert.Equal(t, 2, src.Requests())
	assert.Equal(t, 2, svc.State().Total)
	assert.Contains(t, app.View(), "cr-1")
}

func TestApp_StalePageLoadedErrorIgnored(t *testing.T) {
	app, _ := newTestApp(t, 2)
	drain(app, app.Init())
	drain(app, app.Dashboard().Reload())

	app.Update(messages.PageLoaded{Generation: 0, Err: errors.New("late failure")})

	assert.NoError(t, app.Dashboard().Err())
}

func TestApp_PageLoadedError_ShownAndRetryable(t *testing.T) {
	app, svc := newTestApp(t, 2)
	drain(app, app.Init())

	app.Update(messages.PageLoaded{Generation: 0, Err: errors.New("connection refused")})

	assert.Error(t, app.Err())
	assert.Contains(t, app.View(), "connection refused")
	assert.True(t, svc.State().CanLoadMore)
}

func TestApp_FilterBar_TogglesFacet(t *testing.T) {
	app, svc := newTestApp(t, 10)
	drain(app, app.Init())
	require.Equal(t, []string{"summer", "video", "winter"}, svc.State().AvailableFacets)

	app.Update(key("tab"))
	assert.Equal(t, dashboard.FocusFilters, app.Dashboard().Focus())

	// Select "video".
	app.Update(key("right"))
	app.Update(key(" "))

	state := svc.State()
	assert.Equal(t, []string{"video"}, state.Selection)
	assert.Len(t, state.VisibleCreatives, 2)
	assert.Contains(t, app.View(), "[x] video")

	// Toggling again clears it.
	app.Update(key(" "))
	assert.Empty(t, svc.State().Selection)

	// "c" clears any selection; "q" does not quit while the filter bar has focus.
	app.Update(key(" "))
	app.Update(key("c"))
	assert.Empty(t, svc.State().Selection)
	_, cmd := app.Update(key("q"))
	assert.Nil(t, cmd)

	app.Update(key("esc"))
	assert.Equal(t, dashboard.FocusList, app.Dashboard().Focus())
}

func TestApp_DetailView(t *testing.T) {
	app, _ := newTestApp(t, 10)
	drain(app, app.Init())

	drain(app, func() tea.Msg { return messages.CreativeSelected{ID: "cr-1"} })

	assert.Equal(t, messages.ViewDetail, app.CurrentView())
	view := app.View()
	assert.Contains(t, view, "Creative cr-1")
	assert.Contains(t, view, "awareness")
	assert.Contains(t, view, "Impressions")
	assert.Contains(t, view, "950")

	_, cmd := app.Update(key("esc"))
	drain(app, cmd)
	assert.Equal(t, messages.ViewDashboard, app.CurrentView())
}

func TestApp_DetailView_MalformedMetricsIsolated(t *testing.T) {
	app, _ := newTestApp(t, 10)
	drain(app, app.Init())

	// Move to cr-2 and open it.
	app.Update(key("j"))
	_, cmd := app.Update(key("enter"))
	drain(app, cmd)

	require.Equal(t, messages.ViewDetail, app.CurrentView())
	assert.ErrorIs(t, app.Detail().MetricsErr(), domain.ErrMalformedMetrics)
	view := app.View()
	assert.Contains(t, view, "Metrics unavailable")
	assert.Contains(t, view, "sales")

	// The dashboard still renders every creative.
	app.Update(messages.ViewChanged{View: messages.ViewDashboard})
	assert.Contains(t, app.View(), "cr-3")
}

func TestApp_CreativeSelected_Unknown(t *testing.T) {
	app, _ := newTestApp(t, 10)

	app.Update(messages.CreativeSelected{ID: "missing"})

	assert.Equal(t, messages.ViewDashboard, app.CurrentView())
}

func TestApp_HelpView(t *testing.T) {
	app, _ := newTestApp(t, 2)

	app.Update(key("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "load more")

	app.Update(key("esc"))
	assert.Equal(t, messages.ViewDashboard, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t, 2)

	_, cmd := app.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(messages.Quit{})
	require.NotNil(t, cmd)
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _ := newTestApp(t, 2)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.EqualError(t, app.Dashboard().Err(), "boom")
}
