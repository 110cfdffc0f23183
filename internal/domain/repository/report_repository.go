package repository

import (
	"context"

	"protegeo/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Report, int64, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
