package usecase

import (
	"context"
	"strings"
	"testing"

	"protegeo/internal/domain/entity"
	"protegeo/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func newCommentFixture() (*CommentUseCase, *fakeInteractionRepo, *fakeReportRepo) {
	interactionRepo := newFakeInteractionRepo()
	commentRepo := newFakeCommentRepo(interactionRepo)
	reportRepo := newFakeReportRepo()
	userRepo := newFakeUserRepo(
		seedUser("u1", "Alice"),
		seedUser("u2", "Bob"),
	)
	return NewCommentUseCase(commentRepo, reportRepo, userRepo), interactionRepo, reportRepo
}

func TestAddCommentIncrementsCounter(t *testing.T) {
	uc, interactionRepo, reportRepo := newCommentFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)

	comment, err := uc.AddComment(context.Background(), "r1", "u2", "The pothole is getting worse")
	assert.NoError(t, err)
	assert.Equal(t, "Bob", comment.UserName)
	assert.Equal(t, int64(1), interactionRepo.interactions["r1"].CommentsCount)

	_, err = uc.AddComment(context.Background(), "r1", "u1", "Crews are on their way")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), interactionRepo.interactions["r1"].CommentsCount)
}

func TestAddCommentTrimsAndValidatesText(t *testing.T) {
	uc, interactionRepo, reportRepo := newCommentFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)

	comment, err := uc.AddComment(context.Background(), "r1", "u2", "  ok then  ")
	assert.NoError(t, err)
	assert.Equal(t, "ok then", comment.Text)

	_, err = uc.AddComment(context.Background(), "r1", "u2", "  a  ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.AddComment(context.Background(), "r1", "u2", strings.Repeat("x", 501))
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Limits count characters, not bytes: 500 two-byte runes are accepted,
	// 501 are not.
	_, err = uc.AddComment(context.Background(), "r1", "u2", strings.Repeat("ã", 500))
	assert.NoError(t, err)
	_, err = uc.AddComment(context.Background(), "r1", "u2", strings.Repeat("ã", 501))
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Rejected comments never touch the counter.
	assert.Equal(t, int64(2), interactionRepo.interactions["r1"].CommentsCount)
}

func TestAddCommentUnknownReport(t *testing.T) {
	uc, interactionRepo, _ := newCommentFixture()

	_, err := uc.AddComment(context.Background(), "missing", "u2", "Anyone looking at this?")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Empty(t, interactionRepo.interactions)
}

func TestListCommentsNewestFirst(t *testing.T) {
	uc, _, reportRepo := newCommentFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)
	seedReport(reportRepo, "r2", "u1", entity.ReportStatusPending)

	_, err := uc.AddComment(context.Background(), "r1", "u1", "first comment")
	assert.NoError(t, err)
	_, err = uc.AddComment(context.Background(), "r2", "u2", "unrelated report")
	assert.NoError(t, err)
	_, err = uc.AddComment(context.Background(), "r1", "u2", "second comment")
	assert.NoError(t, err)

	comments, err := uc.ListComments(context.Background(), "r1")
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "second comment", comments[0].Text)
	assert.Equal(t, "first comment", comments[1].Text)
}

func TestListCommentsUnknownReport(t *testing.T) {
	uc, _, _ := newCommentFixture()

	_, err := uc.ListComments(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
