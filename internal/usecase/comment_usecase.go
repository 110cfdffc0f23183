package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"protegeo/internal/domain/entity"
	"protegeo/internal/domain/repository"
	"protegeo/pkg/errors"
	"protegeo/pkg/logger"
)

const (
	commentMinLength = 3
	commentMaxLength = 500
)

type CommentUseCase struct {
	commentRepo repository.CommentRepository
	reportRepo  repository.ReportRepository
	userRepo    repository.UserRepository
}

func NewCommentUseCase(
	commentRepo repository.CommentRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
		userRepo:    userRepo,
	}
}

// AddComment validates the text before any write, then persists comment and
// counter increment together.
func (uc *CommentUseCase) AddComment(ctx context.Context, reportID, authorID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	// Limits are in characters, not bytes; accented text must not count double.
	length := utf8.RuneCountInString(text)
	if length < commentMinLength {
		return nil, errors.BadRequest("Comment must have at least 3 characters", nil)
	}
	if length > commentMaxLength {
		return nil, errors.BadRequest("Comment must have at most 500 characters", nil)
	}

	if _, err := uc.reportRepo.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ReportID:  reportID,
		UserID:    author.ID,
		UserName:  author.Name,
		UserEmail: author.Email,
		Text:      text,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	logger.Debug("User %s commented on report %s", author.ID, reportID)

	return comment, nil
}

// ListComments returns the report's comments newest first.
func (uc *CommentUseCase) ListComments(ctx context.Context, reportID string) ([]*entity.Comment, error) {
	if _, err := uc.reportRepo.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	return uc.commentRepo.ListByReportID(ctx, reportID)
}
