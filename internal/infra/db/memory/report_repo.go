package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/scamwatch/internal/application"
	domain "github.com/bryanwahyu/scamwatch/internal/domain/reports"
)

// ReportRepository keeps reports in process memory. Records live in an
// id-keyed primary map; byPhone is the secondary unique index and order
// remembers insertion so equal created_at values list stably.
type ReportRepository struct {
	mu      sync.RWMutex
	byID    map[domain.ReportID]domain.ScamReport
	byPhone map[string]domain.ReportID
	order   []domain.ReportID
	clock   application.Clock
}

func NewReportRepository(clock application.Clock) *ReportRepository {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &ReportRepository{
		byID:    make(map[domain.ReportID]domain.ScamReport),
		byPhone: make(map[string]domain.ReportID),
		clock:   clock,
	}
}

func (r *ReportRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*domain.ScamReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPhone[phoneNumber]
	if !ok {
		return nil, nil
	}
	rep, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(rep), nil
}

// Create stores a fresh record. Uniqueness of the phone number is the
// caller's job; a second Create for the same number repoints the index.
func (r *ReportRepository) Create(_ context.Context, in domain.NewReport) (*domain.ScamReport, error) {
	now := r.clock.Now().UTC()
	rep := domain.ScamReport{
		ID:          domain.ReportID(uuid.New().String()),
		PhoneNumber: in.PhoneNumber,
		Category:    in.Category,
		Description: in.Description,
		CallType:    in.CallType,
		Frequency:   in.Frequency,
		IsVerified:  false,
		ReportCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.byID[rep.ID] = rep
	r.byPhone[rep.PhoneNumber] = rep.ID
	r.order = append(r.order, rep.ID)
	r.mu.Unlock()

	return clone(rep), nil
}

func (r *ReportRepository) IncrementCount(_ context.Context, phoneNumber string) (*domain.ScamReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byPhone[phoneNumber]
	if !ok {
		return nil, nil
	}
	rep, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if rep.ReportCount < 1 {
		rep.ReportCount = 1
	}
	rep.ReportCount++
	rep.UpdatedAt = r.clock.Now().UTC()
	r.byID[id] = rep
	return clone(rep), nil
}

func (r *ReportRepository) SetVerified(_ context.Context, id domain.ReportID, verified bool) (*domain.ScamReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	rep.IsVerified = verified
	rep.UpdatedAt = r.clock.Now().UTC()
	r.byID[id] = rep
	return clone(rep), nil
}

func (r *ReportRepository) ListAll(_ context.Context) ([]*domain.ScamReport, error) {
	r.mu.RLock()
	out := make([]*domain.ScamReport, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.byID[id]))
	}
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b *domain.ScamReport) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ScamReport, error) {
	if limit <= 0 {
		limit = domain.DefaultRecentLimit
	}
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ReportRepository) Search(ctx context.Context, f domain.Filter) ([]*domain.ScamReport, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(f.Search)

	out := all[:0]
	for _, rep := range all {
		if term != "" &&
			!strings.Contains(rep.PhoneNumber, term) &&
			!strings.Contains(strings.ToLower(rep.Description), term) {
			continue
		}
		if f.Category != "" && rep.Category != f.Category {
			continue
		}
		out = append(out, rep)
	}
	return out, nil
}

func (r *ReportRepository) CountTotal(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *ReportRepository) CountSince(_ context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rep := range r.byID {
		if !rep.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// clone copies rep so callers cannot reach into the store through pointers.
func clone(rep domain.ScamReport) *domain.ScamReport {
	if rep.CallType != nil {
		ct := *rep.CallType
		rep.CallType = &ct
	}
	if rep.Frequency != nil {
		fr := *rep.Frequency
		rep.Frequency = &fr
	}
	return &rep
}
