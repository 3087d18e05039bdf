// Package detail provides the single-creative detail view for the TUI.
package detail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/creatives-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driving"
)

// View shows the metadata, labels and metrics of one creative.
// A creative whose metrics cannot be decoded renders a fault panel in place
// of the metrics; the rest of the view is unaffected.
type View struct {
	styles  *styles.Styles
	service driving.DashboardService

	creative   *domain.Creative
	metadata   domain.Metadata
	labels     []string
	metrics    domain.Metrics
	metricsErr error

	width  int
	height int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, service driving.DashboardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		service: service,
	}
}

// SetCreative decodes and shows the given creative.
func (v *View) SetCreative(c domain.Creative) {
	v.creative = &c
	v.metadata = domain.Metadata{}
	v.labels = nil
	v.metrics = domain.Metrics{}
	v.metricsErr = nil

	if v.service == nil {
		return
	}
	v.metadata = v.service.Metadata(c)
	v.labels = v.service.Labels(c)
	v.metrics, v.metricsErr = v.service.Metrics(c)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDashboard}
			}
		}
	}
	return v, nil
}

// View renders the detail view.
func (v *View) View() string {
	if v.creative == nil {
		return v.styles.Muted.Render("No creative selected.") + "\n\n" + v.renderHelp()
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Creative " + v.creative.ID))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Panel.Render(v.renderOverview()))
	b.WriteString("\n")
	b.WriteString(v.renderMetrics())
	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	objective := v.metadata.Objective
	if objective == "" {
		objective = v.styles.Muted.Render("(none)")
	}
	labels := v.styles.Muted.Render("(none)")
	if len(v.labels) > 0 {
		labels = v.styles.Label.Render(strings.Join(v.labels, ", "))
	}
	image := v.creative.ImageURL
	if image == "" {
		image = v.styles.Muted.Render("(none)")
	}

	return strings.Join([]string{
		field("Image", image),
		field("Objective", objective),
		field("Labels", labels),
	}, "\n")
}

func (v *View) renderMetrics() string {
	if v.metricsErr != nil {
		return v.styles.Fault.Render(
			"Metrics unavailable for this creative\n" + v.metricsErr.Error())
	}

	m := v.metrics
	lines := []string{
		v.styles.Subtitle.Render("Performance"),
		field("Impressions", fmt.Sprintf("%.0f", m.Impressions)),
		field("Clicks", fmt.Sprintf("%.0f", m.Clicks)),
		field("Non-clicks", fmt.Sprintf("%.0f", m.NonClicks())),
		field("Spend", fmt.Sprintf("%.2f", m.Spend)),
		field("Conversions", fmt.Sprintf("%.0f", m.Conversions)),
		field("CTR", fmt.Sprintf("%.4g", m.CTR)),
	}
	return v.styles.Panel.Render(strings.Join(lines, "\n"))
}

func field(name, value string) string {
	return fmt.Sprintf("%-12s %s", name+":", value)
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Creative returns the creative being shown.
func (v *View) Creative() *domain.Creative {
	return v.creative
}

// MetricsErr returns the metrics decode error, if any.
func (v *View) MetricsErr() error {
	return v.metricsErr
}
