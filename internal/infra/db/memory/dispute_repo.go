package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bryanwahyu/scamwatch/internal/application"
	domain "github.com/bryanwahyu/scamwatch/internal/domain/disputes"
)

type DisputeRepository struct {
	mu       sync.RWMutex
	disputes []domain.Dispute
	clock    application.Clock
}

func NewDisputeRepository(clock application.Clock) *DisputeRepository {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &DisputeRepository{clock: clock}
}

func (r *DisputeRepository) Create(_ context.Context, in domain.NewDispute) (*domain.Dispute, error) {
	d := domain.Dispute{
		ID:               domain.DisputeID(uuid.New().String()),
		ScamReportID:     in.ScamReportID,
		Description:      in.Description,
		VerificationInfo: in.VerificationInfo,
		CreatedAt:        r.clock.Now().UTC(),
	}

	r.mu.Lock()
	r.disputes = append(r.disputes, d)
	r.mu.Unlock()

	out := d
	return &out, nil
}

func (r *DisputeRepository) ListByReportID(_ context.Context, reportID string) ([]*domain.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Dispute, 0)
	for _, d := range r.disputes {
		d := d
		if d.ScamReportID == reportID {
			out = append(out, &d)
		}
	}
	return out, nil
}
