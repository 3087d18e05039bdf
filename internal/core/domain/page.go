package domain

// PageRequest describes one fetch against the remote creative collection.
type PageRequest struct {
	// Limit is the page size. Always positive.
	Limit int

	// Cursor is the continuation token from the previous page.
	// Empty means the first page.
	Cursor string
}

// Page is one response from the remote creative collection.
type Page struct {
	// Creatives are the records of this page in server order.
	Creatives []Creative

	// HasMore reports whether further pages exist.
	HasMore bool

	// NextCursor continues pagination. Only meaningful when HasMore is true.
	NextCursor string
}

// FetchState is the lifecycle state of paginated retrieval.
type FetchState int

const (
	// FetchIdle accepts a new fetch request.
	FetchIdle FetchState = iota
	// FetchFetching has exactly one fetch in flight.
	FetchFetching
	// FetchExhausted is terminal; the server reported no more pages.
	FetchExhausted
)

// String returns the string representation of the fetch state.
func (s FetchState) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchFetching:
		return "fetching"
	case FetchExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
