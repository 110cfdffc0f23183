package usecase

import (
	"context"
	"sort"
	"time"

	"protegeo/internal/domain/entity"
	"protegeo/pkg/errors"

	"github.com/google/uuid"
)

// In-memory repositories used across the usecase tests.

type fakeReportRepo struct {
	reports map[string]*entity.Report
	err     error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entity.Report)}
}

func (f *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if f.err != nil {
		return f.err
	}
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = entity.ReportStatusPending
	}
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	report, ok := f.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	return report, nil
}

func (f *fakeReportRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Report, int64, error) {
	var reports []*entity.Report
	for _, report := range f.reports {
		if status == "" || report.Status == status {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, int64(len(reports)), nil
}

func (f *fakeReportRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error) {
	var reports []*entity.Report
	for _, report := range f.reports {
		if report.UserID == userID {
			reports = append(reports, report)
		}
	}
	return reports, int64(len(reports)), nil
}

func (f *fakeReportRepo) UpdateStatus(ctx context.Context, id, status string) error {
	report, ok := f.reports[id]
	if !ok {
		return errors.NotFound("Report", nil)
	}
	report.Status = status
	report.UpdatedAt = time.Now()
	return nil
}

type fakeInteractionRepo struct {
	interactions map[string]*entity.ReportInteractions
	err          error
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{interactions: make(map[string]*entity.ReportInteractions)}
}

func (f *fakeInteractionRepo) GetOrCreate(ctx context.Context, reportID string) (*entity.ReportInteractions, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.interactions[reportID]; ok {
		clone := *existing
		return &clone, nil
	}
	f.interactions[reportID] = entity.NewReportInteractions()
	clone := *f.interactions[reportID]
	return &clone, nil
}

func (f *fakeInteractionRepo) AddFavorite(ctx context.Context, reportID, userID string) error {
	if f.err != nil {
		return f.err
	}
	doc := f.ensure(reportID)
	// Set semantics: adding an existing member is a no-op.
	for _, uid := range doc.Favorites {
		if uid == userID {
			return nil
		}
	}
	doc.Favorites = append(doc.Favorites, userID)
	return nil
}

func (f *fakeInteractionRepo) RemoveFavorite(ctx context.Context, reportID, userID string) error {
	if f.err != nil {
		return f.err
	}
	doc := f.ensure(reportID)
	var kept []string
	for _, uid := range doc.Favorites {
		if uid != userID {
			kept = append(kept, uid)
		}
	}
	doc.Favorites = kept
	return nil
}

func (f *fakeInteractionRepo) AppendResolvedVote(ctx context.Context, reportID string, vote entity.ResolvedVote) error {
	if f.err != nil {
		return f.err
	}
	doc := f.ensure(reportID)
	doc.ResolvedVotes = append(doc.ResolvedVotes, vote)
	return nil
}

func (f *fakeInteractionRepo) ensure(reportID string) *entity.ReportInteractions {
	if _, ok := f.interactions[reportID]; !ok {
		f.interactions[reportID] = entity.NewReportInteractions()
	}
	return f.interactions[reportID]
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeCommentRepo struct {
	comments     []*entity.Comment
	interactions *fakeInteractionRepo
	clock        time.Time
}

func newFakeCommentRepo(interactions *fakeInteractionRepo) *fakeCommentRepo {
	return &fakeCommentRepo{
		interactions: interactions,
		clock:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	// Distinct, increasing timestamps so ordering is observable.
	f.clock = f.clock.Add(time.Second)
	comment.CreatedAt = f.clock
	f.comments = append(f.comments, comment)
	f.interactions.ensure(comment.ReportID).CommentsCount++
	return nil
}

func (f *fakeCommentRepo) ListByReportID(ctx context.Context, reportID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	for _, comment := range f.comments {
		if comment.ReportID == reportID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

type fakeAuthClient struct {
	uid          string
	token        string
	displayNames map[string]string
	syncErr      error
}

func newFakeAuthClient(uid string) *fakeAuthClient {
	return &fakeAuthClient{
		uid:          uid,
		token:        "token-" + uid,
		displayNames: make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.displayNames[f.uid] = displayName
	return f.uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.uid, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	return f.token, nil
}

func (f *fakeAuthClient) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return "https://example.com/reset", nil
}

func (f *fakeAuthClient) UpdateDisplayName(ctx context.Context, uid, name string) error {
	if f.syncErr != nil {
		return f.syncErr
	}
	f.displayNames[uid] = name
	return nil
}

func seedUser(id, name string) *entity.User {
	return &entity.User{
		ID:    id,
		Name:  name,
		Email: id + "@example.com",
	}
}

func seedReport(repo *fakeReportRepo, id, ownerID, status string) *entity.Report {
	report := &entity.Report{
		ID:       id,
		Title:    "Broken streetlight",
		Category: "Public lighting",
		Status:   status,
		UserID:   ownerID,
		UserName: "Owner",
	}
	repo.reports[id] = report
	return report
}
