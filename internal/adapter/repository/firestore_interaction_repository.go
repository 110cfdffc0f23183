package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"protegeo/internal/domain/entity"
	"protegeo/internal/domain/repository"
	"protegeo/pkg/errors"
)

type firestoreInteractionRepository struct {
	client *firestore.Client
}

func NewFirestoreInteractionRepository(client *firestore.Client) repository.InteractionRepository {
	return &firestoreInteractionRepository{client: client}
}

func (r *firestoreInteractionRepository) GetOrCreate(ctx context.Context, reportID string) (*entity.ReportInteractions, error) {
	docRef := r.client.Collection("report_interactions").Doc(reportID)

	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			interactions := entity.NewReportInteractions()
			if _, err := docRef.Set(ctx, interactions); err != nil {
				if isUnavailable(err) {
					return nil, errors.Unavailable("Failed to create interactions", err)
				}
				return nil, errors.Internal("Failed to create interactions", err)
			}
			return interactions, nil
		}
		if isUnavailable(err) {
			return nil, errors.Unavailable("Failed to get interactions", err)
		}
		return nil, errors.Internal("Failed to get interactions", err)
	}

	var interactions entity.ReportInteractions
	if err := doc.DataTo(&interactions); err != nil {
		return nil, errors.Internal("Failed to parse interactions data", err)
	}

	// Older documents may miss fields; keep the zero defaults explicit.
	if interactions.Favorites == nil {
		interactions.Favorites = []string{}
	}
	if interactions.ResolvedVotes == nil {
		interactions.ResolvedVotes = []entity.ResolvedVote{}
	}

	return &interactions, nil
}

func (r *firestoreInteractionRepository) AddFavorite(ctx context.Context, reportID, userID string) error {
	return r.mergeFavorites(ctx, reportID, firestore.ArrayUnion(userID))
}

func (r *firestoreInteractionRepository) RemoveFavorite(ctx context.Context, reportID, userID string) error {
	return r.mergeFavorites(ctx, reportID, firestore.ArrayRemove(userID))
}

// mergeFavorites applies a commutative set operation with upsert semantics,
// so the document is created on first favorite and concurrent toggles from
// different users never overwrite each other.
func (r *firestoreInteractionRepository) mergeFavorites(ctx context.Context, reportID string, op interface{}) error {
	_, err := r.client.Collection("report_interactions").Doc(reportID).Set(ctx, map[string]interface{}{
		"favorites": op,
	}, firestore.MergeAll)
	if err != nil {
		if isUnavailable(err) {
			return errors.Unavailable("Failed to update favorites", err)
		}
		return errors.Internal("Failed to update favorites", err)
	}
	return nil
}

func (r *firestoreInteractionRepository) AppendResolvedVote(ctx context.Context, reportID string, vote entity.ResolvedVote) error {
	_, err := r.client.Collection("report_interactions").Doc(reportID).Set(ctx, map[string]interface{}{
		"resolvedVotes": firestore.ArrayUnion(vote),
	}, firestore.MergeAll)
	if err != nil {
		if isUnavailable(err) {
			return errors.Unavailable("Failed to record vote", err)
		}
		return errors.Internal("Failed to record vote", err)
	}
	return nil
}
