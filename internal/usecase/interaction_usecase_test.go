package usecase

import (
	"context"
	"testing"

	"protegeo/internal/domain/entity"
	"protegeo/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func newInteractionFixture() (*InteractionUseCase, *ReportUseCase, *fakeReportRepo, *fakeInteractionRepo) {
	reportRepo := newFakeReportRepo()
	interactionRepo := newFakeInteractionRepo()
	userRepo := newFakeUserRepo(
		seedUser("u1", "Alice"),
		seedUser("u2", "Bob"),
		seedUser("u3", "Carol"),
	)

	interactionUC := NewInteractionUseCase(interactionRepo, reportRepo, userRepo)
	reportUC := NewReportUseCase(reportRepo, userRepo)
	return interactionUC, reportUC, reportRepo, interactionRepo
}

func TestToggleFavoriteIsAnInvolution(t *testing.T) {
	uc, _, reportRepo, interactionRepo := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)
	ctx := context.Background()

	result, err := uc.ToggleFavorite(ctx, "r1", "u2")
	assert.NoError(t, err)
	assert.True(t, result.Favorited)
	assert.Equal(t, 1, result.FavoritesCount)

	result, err = uc.ToggleFavorite(ctx, "r1", "u2")
	assert.NoError(t, err)
	assert.False(t, result.Favorited)
	assert.Equal(t, 0, result.FavoritesCount)

	assert.Empty(t, interactionRepo.interactions["r1"].Favorites)
}

func TestToggleFavoriteCreatesInteractionsDocument(t *testing.T) {
	uc, _, reportRepo, interactionRepo := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)

	_, ok := interactionRepo.interactions["r1"]
	assert.False(t, ok)

	result, err := uc.ToggleFavorite(context.Background(), "r1", "u2")
	assert.NoError(t, err)
	assert.True(t, result.Favorited)

	assert.Equal(t, []string{"u2"}, interactionRepo.interactions["r1"].Favorites)
}

func TestToggleFavoriteUnknownReport(t *testing.T) {
	uc, _, _, _ := newInteractionFixture()

	_, err := uc.ToggleFavorite(context.Background(), "missing", "u2")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestToggleFavoriteStoreUnavailable(t *testing.T) {
	uc, _, reportRepo, interactionRepo := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)
	interactionRepo.err = errors.Unavailable("store down", nil)

	_, err := uc.ToggleFavorite(context.Background(), "r1", "u2")
	assert.True(t, errors.Is(err, "STORE_UNAVAILABLE"))
}

func TestRecordVoteAppendsOnce(t *testing.T) {
	uc, _, reportRepo, interactionRepo := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)
	ctx := context.Background()

	interactions, err := uc.RecordVote(ctx, "r1", "u2")
	assert.NoError(t, err)
	assert.Len(t, interactions.ResolvedVotes, 1)
	assert.Equal(t, "u2", interactions.ResolvedVotes[0].UserID)
	assert.Equal(t, "Bob", interactions.ResolvedVotes[0].UserName)

	// Second vote from the same user: no write, soft notice.
	_, err = uc.RecordVote(ctx, "r1", "u2")
	assert.True(t, errors.Is(err, "ALREADY_VOTED"))
	assert.Len(t, interactionRepo.interactions["r1"].ResolvedVotes, 1)
}

func TestRecordVoteByOwnerIsForbidden(t *testing.T) {
	uc, _, reportRepo, interactionRepo := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)

	_, err := uc.RecordVote(context.Background(), "r1", "u1")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Nil(t, interactionRepo.interactions["r1"])
}

func TestRecordVoteOnResolvedReport(t *testing.T) {
	uc, _, reportRepo, _ := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusResolved)

	_, err := uc.RecordVote(context.Background(), "r1", "u2")
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestGetInteractionsLazyCreation(t *testing.T) {
	uc, _, reportRepo, _ := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)

	interactions, err := uc.GetInteractions(context.Background(), "r1")
	assert.NoError(t, err)
	assert.Empty(t, interactions.Favorites)
	assert.Empty(t, interactions.ResolvedVotes)
	assert.Zero(t, interactions.CommentsCount)
}

func TestGetInteractionsUnknownReport(t *testing.T) {
	uc, _, _, _ := newInteractionFixture()

	_, err := uc.GetInteractions(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

// Full resolution flow: a voter indicates, the owner approves, late voters
// are rejected.
func TestResolutionFlow(t *testing.T) {
	interactionUC, reportUC, reportRepo, _ := newInteractionFixture()
	seedReport(reportRepo, "r1", "u1", entity.ReportStatusPending)
	ctx := context.Background()

	interactions, err := interactionUC.RecordVote(ctx, "r1", "u2")
	assert.NoError(t, err)
	assert.Len(t, interactions.ResolvedVotes, 1)

	report, err := reportUC.ApproveResolution(ctx, "r1", "u1")
	assert.NoError(t, err)
	assert.Equal(t, entity.ReportStatusResolved, report.Status)

	_, err = interactionUC.RecordVote(ctx, "r1", "u3")
	assert.True(t, errors.Is(err, "CONFLICT"))
}
