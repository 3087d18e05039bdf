package driven

import (
	"context"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
)

// CreativeSource fetches pages of creatives from the remote service.
// Implementations return either a complete page or an error, never a partial page.
type CreativeSource interface {
	// FetchPage retrieves one page. An empty req.Cursor requests the first page.
	FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error)
}
