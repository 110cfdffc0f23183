package usecase

import (
	"context"
	"net/http"
	"time"

	"protegeo/internal/domain/entity"
	"protegeo/internal/domain/repository"
	"protegeo/pkg/errors"
	"protegeo/pkg/logger"
)

// ErrAlreadyVoted is a soft outcome, not a hard failure: the vote already
// exists and nothing was written. Handlers surface it as a notice.
func ErrAlreadyVoted() *errors.AppError {
	return errors.New("ALREADY_VOTED", "You already indicated this report as resolved", http.StatusConflict, nil)
}

type InteractionUseCase struct {
	interactionRepo repository.InteractionRepository
	reportRepo      repository.ReportRepository
	userRepo        repository.UserRepository
}

func NewInteractionUseCase(
	interactionRepo repository.InteractionRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
) *InteractionUseCase {
	return &InteractionUseCase{
		interactionRepo: interactionRepo,
		reportRepo:      reportRepo,
		userRepo:        userRepo,
	}
}

type ToggleFavoriteResult struct {
	Favorited      bool `json:"favorited"`
	FavoritesCount int  `json:"favorites_count"`
}

// GetInteractions returns the aggregate for a report, creating it with empty
// defaults on first access so callers never deal with an absent document.
func (uc *InteractionUseCase) GetInteractions(ctx context.Context, reportID string) (*entity.ReportInteractions, error) {
	if _, err := uc.reportRepo.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	return uc.interactionRepo.GetOrCreate(ctx, reportID)
}

// ToggleFavorite flips the caller's membership in the favorites set. Repeated
// calls simply flip again; two calls restore the original membership.
func (uc *InteractionUseCase) ToggleFavorite(ctx context.Context, reportID, userID string) (*ToggleFavoriteResult, error) {
	if _, err := uc.reportRepo.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	interactions, err := uc.interactionRepo.GetOrCreate(ctx, reportID)
	if err != nil {
		return nil, err
	}

	favorited := interactions.IsFavoritedBy(userID)
	count := len(interactions.Favorites)

	if favorited {
		if err := uc.interactionRepo.RemoveFavorite(ctx, reportID, userID); err != nil {
			return nil, err
		}
		count--
	} else {
		if err := uc.interactionRepo.AddFavorite(ctx, reportID, userID); err != nil {
			return nil, err
		}
		count++
	}

	logger.Debug("User %s toggled favorite on report %s (favorited=%v)", userID, reportID, !favorited)

	return &ToggleFavoriteResult{
		Favorited:      !favorited,
		FavoritesCount: count,
	}, nil
}

// RecordVote appends a resolution vote for a non-owner. The owner approves
// instead of voting, resolved reports no longer accept votes, and a second
// vote from the same user is reported as ALREADY_VOTED without a write.
// The voter's display name comes from the user record, never the request.
func (uc *InteractionUseCase) RecordVote(ctx context.Context, reportID, voterID string) (*entity.ReportInteractions, error) {
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if report.IsOwner(voterID) {
		return nil, errors.Forbidden("Report owners approve the resolution instead of voting", nil)
	}

	if report.IsResolved() {
		return nil, errors.Conflict("Report is already resolved")
	}

	voter, err := uc.userRepo.GetByID(ctx, voterID)
	if err != nil {
		return nil, err
	}

	interactions, err := uc.interactionRepo.GetOrCreate(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if interactions.HasVoteFrom(voterID) {
		return nil, ErrAlreadyVoted()
	}

	vote := entity.ResolvedVote{
		UserID:   voter.ID,
		UserName: voter.Name,
		VotedAt:  time.Now(),
	}

	if err := uc.interactionRepo.AppendResolvedVote(ctx, reportID, vote); err != nil {
		return nil, err
	}

	interactions.ResolvedVotes = append(interactions.ResolvedVotes, vote)

	logger.Info("User %s voted report %s as resolved (%d votes)", voterID, reportID, len(interactions.ResolvedVotes))

	return interactions, nil
}
