package memory

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// DemoCreatives returns a small deterministic collection for offline use.
// One creative in every seven carries broken labels and one in every eleven
// broken metrics, so the degraded paths are visible in the dashboard.
func DemoCreatives(n int) []domain.Creative {
	objectives := []string{"CONVERSIONS", "REACH", "TRAFFIC", "ENGAGEMENT", "APP_INSTALLS"}
	labelSets := [][]string{
		{"summer", "video"},
		{"sale"},
		{"video", "carousel"},
		{"retargeting", "sale"},
		{"brand", "summer"},
		{},
	}

	out := make([]domain.Creative, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("cr-%04d", i+1)

		labels, _ := json.Marshal(labelSets[i%len(labelSets)])
		labelsRaw := string(labels)
		if i%7 == 6 {
			labelsRaw = `["summer",`
		}

		impressions := 1000 + i*137
		clicks := 20 + (i*13)%90
		metricsRaw := fmt.Sprintf(
			`{"impressions":%d,"clicks":%d,"spend":%.2f,"conversions":%d,"ctr":%.4f}`,
			impressions, clicks, float64(clicks)*0.42, clicks/5, float64(clicks)/float64(impressions),
		)
		if i%11 == 10 {
			metricsRaw = `{"impressions":`
		}

		out = append(out, domain.Creative{
			ID:          id,
			ImageURL:    fmt.Sprintf("https://cdn.example.com/creatives/%s.png", id),
			MetadataRaw: fmt.Sprintf(`{"objective":%q,"platform":"facebook"}`, objectives[i%len(objectives)]),
			MetricsRaw:  metricsRaw,
			LabelsRaw:   labelsRaw,
		})
	}
	return out
}
