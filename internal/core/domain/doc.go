// Package domain defines the core business entities for the creatives dashboard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Creative: A record from the remote creative collection, with raw JSON fields
//   - Metadata, Metrics: Decoded views of a creative's embedded fields
//   - PageRequest, Page: One round trip of cursor pagination
//   - FetchState: The idle / fetching / exhausted lifecycle of retrieval
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
