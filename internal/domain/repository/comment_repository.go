package repository

import (
	"context"

	"protegeo/internal/domain/entity"
)

type CommentRepository interface {
	// Create persists the comment and increments the report's comment
	// counter in the same transaction.
	Create(ctx context.Context, comment *entity.Comment) error
	ListByReportID(ctx context.Context, reportID string) ([]*entity.Comment, error)
}
