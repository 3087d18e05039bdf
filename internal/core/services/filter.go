package services

import "github.com/custodia-labs/creatives-cli/internal/core/domain"

// FilterCreatives returns the creatives carrying at least one selected label.
// An empty selection is no filter: creatives is returned as is.
// Order is preserved and creatives is never modified.
func FilterCreatives(creatives []domain.Creative, selection []string, dec *Decoder) []domain.Creative {
	if len(selection) == 0 {
		return creatives
	}

	wanted := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		wanted[s] = struct{}{}
	}

	visible := []domain.Creative{}
	for i := range creatives {
		if matchesAny(dec.Labels(creatives[i]), wanted) {
			visible = append(visible, creatives[i])
		}
	}
	return visible
}

func matchesAny(labels []string, wanted map[string]struct{}) bool {
	for _, label := range labels {
		if _, ok := wanted[label]; ok {
			return true
		}
	}
	return false
}

// normaliseSelection drops duplicates while keeping first-seen order.
func normaliseSelection(selection []string) []string {
	out := make([]string, 0, len(selection))
	seen := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
