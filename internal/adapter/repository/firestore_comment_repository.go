package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"protegeo/internal/domain/entity"
	"protegeo/internal/domain/repository"
	"protegeo/pkg/errors"
	"protegeo/pkg/logger"

	"github.com/google/uuid"
)

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{client: client}
}

// Create writes the comment and bumps commentsCount on the interactions
// document in one transaction, so the counter can never drift from the
// ledger.
func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	commentRef := r.client.Collection("comments").Doc(comment.ID)
	interactionsRef := r.client.Collection("report_interactions").Doc(comment.ReportID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(commentRef, comment); err != nil {
			return err
		}
		return tx.Set(interactionsRef, map[string]interface{}{
			"commentsCount": firestore.Increment(1),
		}, firestore.MergeAll)
	})
	if err != nil {
		if isUnavailable(err) {
			return errors.Unavailable("Failed to create comment", err)
		}
		return errors.Internal("Failed to create comment", err)
	}

	return nil
}

func (r *firestoreCommentRepository) ListByReportID(ctx context.Context, reportID string) ([]*entity.Comment, error) {
	query := r.client.Collection("comments").
		Where("reportId", "==", reportID).
		OrderBy("createdAt", firestore.Desc)

	comments, err := r.collect(ctx, query)
	if err != nil {
		if isMissingIndex(err) {
			// reportId + createdAt needs a composite index. Fetch unordered
			// and sort here instead of failing the read.
			logger.Warn("Missing index for ordered comments, sorting client-side: %v", err)
			return r.listUnordered(ctx, reportID)
		}
		if isUnavailable(err) {
			return nil, errors.Unavailable("Failed to list comments", err)
		}
		return nil, errors.Internal("Failed to list comments", err)
	}

	return comments, nil
}

func (r *firestoreCommentRepository) listUnordered(ctx context.Context, reportID string) ([]*entity.Comment, error) {
	query := r.client.Collection("comments").Query.Where("reportId", "==", reportID)

	comments, err := r.collect(ctx, query)
	if err != nil {
		if isUnavailable(err) {
			return nil, errors.Unavailable("Failed to list comments", err)
		}
		return nil, errors.Internal("Failed to list comments", err)
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	return comments, nil
}

func (r *firestoreCommentRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Comment, error) {
	iter := query.Documents(ctx)
	var comments []*entity.Comment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			logger.Error("Error parsing comment %s: %v", doc.Ref.ID, err)
			continue
		}
		comments = append(comments, &comment)
	}

	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}
