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

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{client: client}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = entity.ReportStatusPending
	}
	if report.Photos == nil {
		report.Photos = []string{}
	}

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		if isUnavailable(err) {
			return errors.Unavailable("Failed to create report", err)
		}
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection("reports").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Report", err)
		}
		if isUnavailable(err) {
			return nil, errors.Unavailable("Failed to get report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.Report, int64, error) {
	baseQuery := r.client.Collection("reports").Query
	if status != "" {
		baseQuery = baseQuery.Where("status", "==", status)
	}

	total, err := r.count(ctx, baseQuery)
	if err != nil {
		if isUnavailable(err) {
			return nil, 0, errors.Unavailable("Failed to count reports", err)
		}
		return nil, 0, errors.Internal("Failed to count reports", err)
	}

	query := baseQuery.OrderBy("createdAt", firestore.Desc).Offset(offset).Limit(limit)

	reports, err := r.collect(ctx, query)
	if err != nil {
		if status != "" && isMissingIndex(err) {
			// Status + createdAt needs a composite index. Degraded mode:
			// fetch everything ordered and filter here.
			logger.Warn("Missing index for status filter, filtering client-side: %v", err)
			return r.listFiltered(ctx, status, limit, offset)
		}
		if isUnavailable(err) {
			return nil, 0, errors.Unavailable("Failed to list reports", err)
		}
		return nil, 0, errors.Internal("Failed to list reports", err)
	}

	return reports, total, nil
}

func (r *firestoreReportRepository) listFiltered(ctx context.Context, status string, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("reports").Query.OrderBy("createdAt", firestore.Desc)

	all, err := r.collect(ctx, query)
	if err != nil {
		if isUnavailable(err) {
			return nil, 0, errors.Unavailable("Failed to list reports", err)
		}
		return nil, 0, errors.Internal("Failed to list reports", err)
	}

	var reports []*entity.Report
	for _, report := range all {
		if report.Status == status {
			reports = append(reports, report)
		}
	}

	total := int64(len(reports))
	return paginate(reports, limit, offset), total, nil
}

func (r *firestoreReportRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error) {
	baseQuery := r.client.Collection("reports").Query.Where("userId", "==", userID)

	total, err := r.count(ctx, baseQuery)
	if err != nil {
		if isUnavailable(err) {
			return nil, 0, errors.Unavailable("Failed to count user reports", err)
		}
		return nil, 0, errors.Internal("Failed to count user reports", err)
	}

	query := baseQuery.OrderBy("createdAt", firestore.Desc).Offset(offset).Limit(limit)

	reports, err := r.collect(ctx, query)
	if err != nil {
		if isMissingIndex(err) {
			logger.Warn("Missing index for user reports, sorting client-side: %v", err)
			return r.listByUserUnordered(ctx, userID, limit, offset)
		}
		if isUnavailable(err) {
			return nil, 0, errors.Unavailable("Failed to list user reports", err)
		}
		return nil, 0, errors.Internal("Failed to list user reports", err)
	}

	return reports, total, nil
}

func (r *firestoreReportRepository) listByUserUnordered(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("reports").Query.Where("userId", "==", userID)

	reports, err := r.collect(ctx, query)
	if err != nil {
		if isUnavailable(err) {
			return nil, 0, errors.Unavailable("Failed to list user reports", err)
		}
		return nil, 0, errors.Internal("Failed to list user reports", err)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	total := int64(len(reports))
	return paginate(reports, limit, offset), total, nil
}

func (r *firestoreReportRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.client.Collection("reports").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Report", err)
		}
		if isUnavailable(err) {
			return errors.Unavailable("Failed to update report status", err)
		}
		return errors.Internal("Failed to update report status", err)
	}

	return nil
}

// count runs the query as a key-only projection so totals do not pay for
// full documents.
func (r *firestoreReportRepository) count(ctx context.Context, query firestore.Query) (int64, error) {
	iter := query.Select().Documents(ctx)
	var total int64

	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		total++
	}

	return total, nil
}

func (r *firestoreReportRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Report, error) {
	iter := query.Documents(ctx)
	var reports []*entity.Report

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			logger.Error("Error parsing report %s: %v", doc.Ref.ID, err)
			continue
		}
		reports = append(reports, &report)
	}

	if reports == nil {
		reports = []*entity.Report{}
	}
	return reports, nil
}

func paginate(reports []*entity.Report, limit, offset int) []*entity.Report {
	if offset >= len(reports) {
		return []*entity.Report{}
	}
	reports = reports[offset:]
	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}
	return reports
}
