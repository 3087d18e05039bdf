// Package services implements the driving port interfaces.
// Services contain the core business logic of the creatives dashboard:
// decoding embedded record fields, building the facet index, filtering,
// and driving cursor pagination. They orchestrate calls to driven ports.
//
// Services are pure Go with no CGO or external dependencies.
package services
