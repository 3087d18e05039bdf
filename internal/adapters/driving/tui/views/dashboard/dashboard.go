// Package dashboard provides the creative list view with its facet filter bar.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

// Focus identifies which part of the dashboard receives key presses.
type Focus int

const (
	FocusList Focus = iota
	FocusFilters
)

// row is a visible creative with its decoded list columns.
type row struct {
	id        string
	objective string
	labels    []string
}

// View is the dashboard view.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.DashboardService
	status  *status.Bar
	ctx     context.Context

	state driving.DashboardState
	rows  []row

	selected     int
	scrollOffset int
	facetCursor  int
	focus        Focus

	// session is bumped on reload so completions of older fetches are ignored.
	session int

	err    error
	width  int
	height int
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.DashboardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	v := &View{
		styles:  s,
		keymap:  km,
		service: service,
		status:  status.NewBar(s, km),
		ctx:     context.Background(),
	}
	v.refresh()
	return v
}

// WithContext sets the context handed to fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the initial load. Only the first activation of a dashboard
// session issues a fetch; later calls return nil.
func (v *View) Init() tea.Cmd {
	return v.activate()
}

func (v *View) activate() tea.Cmd {
	if v.service == nil {
		return nil
	}
	fetch := v.service.Activate()
	v.refresh()
	return v.run(fetch)
}

// run performs a claimed fetch off the update loop.
func (v *View) run(fetch driving.PendingFetch) tea.Cmd {
	if fetch == nil {
		return nil
	}
	ctx := v.ctx
	session := v.session
	return func() tea.Msg {
		return messages.PageLoaded{Generation: session, Err: fetch.Run(ctx)}
	}
}

// Update handles messages for the dashboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PageLoaded:
		if msg.Generation != v.session {
			// A reload issued while this fetch was in flight deferred its
			// initial load until now.
			return v, v.activate()
		}
		v.err = msg.Err
		v.refresh()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		if v.focus == FocusFilters {
			return v.handleFilterKey(msg)
		}
		return v.handleListKey(msg)
	}

	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.rows)-1 {
			v.selected++
			v.adjustScroll()
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		if v.selected < len(v.rows) {
			id := v.rows[v.selected].id
			return v, func() tea.Msg { return messages.CreativeSelected{ID: id} }
		}
	case keymap.Matches(keyStr, v.keymap.Focus):
		v.setFocus(FocusFilters)
	default:
		return v, v.handleCommonKey(keyStr)
	}
	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Left):
		if v.facetCursor > 0 {
			v.facetCursor--
		}
	case keymap.Matches(keyStr, v.keymap.Right):
		if v.facetCursor < len(v.state.AvailableFacets)-1 {
			v.facetCursor++
		}
	case keymap.Matches(keyStr, v.keymap.Toggle):
		v.toggleFacet()
	case keymap.Matches(keyStr, v.keymap.Focus), keymap.Matches(keyStr, v.keymap.Back):
		v.setFocus(FocusList)
	default:
		return v, v.handleCommonKey(keyStr)
	}
	return v, nil
}

// handleCommonKey handles keys that work regardless of focus.
func (v *View) handleCommonKey(keyStr string) tea.Cmd {
	switch {
	case keymap.Matches(keyStr, v.keymap.LoadMore):
		return v.LoadMore()
	case keymap.Matches(keyStr, v.keymap.Reload):
		return v.Reload()
	case keymap.Matches(keyStr, v.keymap.ClearFilter):
		v.SetSelection(nil)
	}
	return nil
}

// LoadMore claims the next page. It returns nil when a fetch is already in
// flight or every creative has been loaded.
func (v *View) LoadMore() tea.Cmd {
	if v.service == nil {
		return nil
	}
	fetch := v.service.RequestMore()
	if fetch == nil {
		return nil
	}
	v.err = nil
	v.refresh()
	return v.run(fetch)
}

// Reload discards all loaded creatives and fetches the first page again.
// The facet selection is kept. If a fetch is still in flight, the first page
// is requested once that fetch's PageLoaded arrives.
func (v *View) Reload() tea.Cmd {
	if v.service == nil {
		return nil
	}
	v.session++
	v.service.Reset()
	v.selected = 0
	v.scrollOffset = 0
	v.err = nil
	return v.activate()
}

// SetSelection replaces the facet selection.
func (v *View) SetSelection(selection []string) {
	if v.service == nil {
		return
	}
	v.service.SetSelection(selection)
	v.selected = 0
	v.scrollOffset = 0
	v.refresh()
}

func (v *View) toggleFacet() {
	if v.facetCursor >= len(v.state.AvailableFacets) {
		return
	}
	facet := v.state.AvailableFacets[v.facetCursor]

	next := make([]string, 0, len(v.state.Selection)+1)
	found := false
	for _, s := range v.state.Selection {
		if s == facet {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		next = append(next, facet)
	}
	v.SetSelection(next)
}

func (v *View) setFocus(f Focus) {
	v.focus = f
	v.refreshStatus()
}

// refresh recomputes the render state from the service.
func (v *View) refresh() {
	if v.service != nil {
		v.state = v.service.State()
	}

	v.rows = make([]row, 0, len(v.state.VisibleCreatives))
	for _, c := range v.state.VisibleCreatives {
		v.rows = append(v.rows, v.decodeRow(c))
	}

	if v.selected >= len(v.rows) {
		v.selected = max(len(v.rows)-1, 0)
	}
	if v.facetCursor >= len(v.state.AvailableFacets) {
		v.facetCursor = max(len(v.state.AvailableFacets)-1, 0)
	}
	v.adjustScroll()
	v.refreshStatus()
}

func (v *View) decodeRow(c domain.Creative) row {
	return row{
		id:        c.ID,
		objective: v.service.Metadata(c).Objective,
		labels:    v.service.Labels(c),
	}
}

func (v *View) refreshStatus() {
	v.status.SetCounts(len(v.state.VisibleCreatives), v.state.Total)
	v.status.SetMessage("")

	switch {
	case v.state.IsLoading:
		v.status.SetState(status.StateLoading)
	case v.err != nil:
		v.status.SetState(status.StateError)
		v.status.SetMessage(v.err.Error())
	case !v.state.CanLoadMore:
		v.status.SetState(status.StateExhausted)
	default:
		v.status.SetState(status.StateReady)
	}

	if v.focus == FocusFilters {
		v.status.SetBindings(v.keymap.FilterHelp())
	} else {
		v.status.SetBindings(v.keymap.DashboardHelp())
	}
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of rows that can be displayed.
func (v *View) visibleItemCount() int {
	// Title, filter bar, footer, status bar and spacing.
	reserved := 9
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Creatives"))
	b.WriteString("\n\n")
	b.WriteString(v.renderFilterBar())
	b.WriteString("\n\n")

	switch {
	case len(v.rows) > 0:
		b.WriteString(v.renderRows())
	case v.state.IsLoading:
		b.WriteString(v.styles.Muted.Render("Loading creatives..."))
	case v.state.Total > 0:
		b.WriteString(v.styles.Muted.Render("No creatives match the selected labels."))
	default:
		b.WriteString(v.styles.Muted.Render("No creatives loaded."))
	}
	b.WriteString("\n\n")

	b.WriteString(v.renderFooter())
	b.WriteString("\n")
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) renderFilterBar() string {
	prefix := v.styles.Subtitle.Render("Labels:")
	if len(v.state.AvailableFacets) == 0 {
		return prefix + " " + v.styles.Muted.Render("none yet")
	}

	selected := make(map[string]bool, len(v.state.Selection))
	for _, s := range v.state.Selection {
		selected[s] = true
	}

	chips := make([]string, 0, len(v.state.AvailableFacets))
	for i, facet := range v.state.AvailableFacets {
		text := "[ ] " + facet
		style := v.styles.Facet
		if selected[facet] {
			text = "[x] " + facet
			style = v.styles.FacetActive
		}
		if v.focus == FocusFilters && i == v.facetCursor {
			style = style.Inherit(v.styles.FacetCursor)
		}
		chips = append(chips, style.Render(text))
	}
	return prefix + " " + strings.Join(chips, "")
}

func (v *View) renderRows() string {
	var b strings.Builder

	idWidth := 0
	objWidth := 0
	for _, r := range v.rows {
		idWidth = max(idWidth, len(r.id))
		objWidth = max(objWidth, len(r.objective))
	}

	visibleItems := v.visibleItemCount()
	end := min(v.scrollOffset+visibleItems, len(v.rows))
	for i := v.scrollOffset; i < end; i++ {
		r := v.rows[i]
		labels := strings.Join(r.labels, ", ")
		if i == v.selected && v.focus == FocusList {
			b.WriteString(v.styles.Selected.Render(
				fmt.Sprintf("> %-*s  %-*s  %s", idWidth, r.id, objWidth, r.objective, labels)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("  %-*s  %-*s  ", idWidth, r.id, objWidth, r.objective)))
			b.WriteString(v.styles.Label.Render(labels))
		}
		b.WriteString("\n")
	}

	if len(v.rows) > visibleItems {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", v.scrollOffset+1, end, len(v.rows))))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (v *View) renderFooter() string {
	switch {
	case v.state.IsLoading:
		return v.styles.Muted.Render("Loading...")
	case v.state.CanLoadMore:
		return v.styles.Help.Render("[m] load more")
	default:
		return v.styles.Success.Render("All creatives loaded")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
	v.adjustScroll()
}

// State returns the last computed render state.
func (v *View) State() driving.DashboardState {
	return v.state
}

// SelectedIndex returns the highlighted row.
func (v *View) SelectedIndex() int {
	return v.selected
}

// FacetCursor returns the filter bar cursor position.
func (v *View) FacetCursor() int {
	return v.facetCursor
}

// Focus returns which part of the dashboard has focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Err returns the last fetch error.
func (v *View) Err() error {
	return v.err
}
