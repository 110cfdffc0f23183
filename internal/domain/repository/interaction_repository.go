package repository

import (
	"context"

	"protegeo/internal/domain/entity"
)

// InteractionRepository maintains the per-report interactions document.
// All writes are merge-based upserts so concurrent users never overwrite
// each other and the document is created on first touch.
type InteractionRepository interface {
	GetOrCreate(ctx context.Context, reportID string) (*entity.ReportInteractions, error)
	AddFavorite(ctx context.Context, reportID, userID string) error
	RemoveFavorite(ctx context.Context, reportID, userID string) error
	AppendResolvedVote(ctx context.Context, reportID string, vote entity.ResolvedVote) error
}
