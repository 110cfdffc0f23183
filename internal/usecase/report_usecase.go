package usecase

import (
	"context"

	"protegeo/internal/domain/entity"
	"protegeo/internal/domain/repository"
	"protegeo/pkg/errors"
	"protegeo/pkg/logger"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

type CreateReportInput struct {
	Title       string
	Description string
	Category    string
	Photos      []string
	Latitude    *float64
	Longitude   *float64
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, userID string, input CreateReportInput) (*entity.Report, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(input.Photos) > 5 {
		return nil, errors.BadRequest("A report can have at most 5 photos", nil)
	}

	report := &entity.Report{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Status:      entity.ReportStatusPending,
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Photos:      input.Photos,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	logger.Info("User %s created report %s (%s)", user.ID, report.ID, report.Category)

	return report, nil
}

func (uc *ReportUseCase) GetReport(ctx context.Context, id string) (*entity.Report, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

func (uc *ReportUseCase) ListReports(ctx context.Context, status string, page, limit int) ([]*entity.Report, int64, error) {
	switch status {
	case "", entity.ReportStatusPending, entity.ReportStatusInProgress, entity.ReportStatusResolved:
	default:
		return nil, 0, errors.BadRequest("Unknown report status", nil)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.reportRepo.List(ctx, status, limit, offset)
}

func (uc *ReportUseCase) ListMyReports(ctx context.Context, userID string, page, limit int) ([]*entity.Report, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.reportRepo.ListByUserID(ctx, userID, limit, offset)
}

// ApproveResolution finalizes a report. Only the owner may approve; votes
// from other users are advisory and never transition the status themselves.
// Approving an already resolved report is a no-op.
func (uc *ReportUseCase) ApproveResolution(ctx context.Context, reportID, requesterID string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !report.IsOwner(requesterID) {
		return nil, errors.Forbidden("Only the report owner can approve the resolution", nil)
	}

	if report.IsResolved() {
		return report, nil
	}

	if err := uc.reportRepo.UpdateStatus(ctx, reportID, entity.ReportStatusResolved); err != nil {
		return nil, err
	}

	report.Status = entity.ReportStatusResolved

	logger.Info("Owner %s approved resolution of report %s", requesterID, reportID)

	return report, nil
}
