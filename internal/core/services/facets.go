package services

import "github.com/custodia-labs/creatives-cli/internal/core/domain"

// BuildFacetIndex returns the distinct labels of creatives in first-seen order.
// Creatives are visited in slice order and each creative's labels in source order,
// so identical input always yields identical output. The index is rebuilt from
// scratch on every call. The result is never nil.
func BuildFacetIndex(creatives []domain.Creative, dec *Decoder) []string {
	facets := []string{}
	seen := make(map[string]struct{})

	for i := range creatives {
		for _, label := range dec.Labels(creatives[i]) {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			facets = append(facets, label)
		}
	}

	return facets
}
