package service

import (
	"context"

	"github.com/twforecast/backend/internal/domain"
)

// LocationSource supplies raw upstream locations. CWAClient is the production implementation.
type LocationSource interface {
	FetchLocations(ctx context.Context) ([]domain.UpstreamLocation, error)
}
