package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/scamwatch/internal/application"
	domain "github.com/bryanwahyu/scamwatch/internal/domain/disputes"
)

type DisputeRepository struct {
	db    *sql.DB
	clock application.Clock
}

func NewDisputeRepository(db *sql.DB, clock application.Clock) *DisputeRepository {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &DisputeRepository{db: db, clock: clock}
}

func (r *DisputeRepository) Create(ctx context.Context, in domain.NewDispute) (*domain.Dispute, error) {
	const q = `
INSERT INTO disputes (id, scam_report_id, description, verification_info, created_at)
VALUES ($1,$2,$3,$4,$5);`

	d := &domain.Dispute{
		ID:               domain.DisputeID(uuid.New().String()),
		ScamReportID:     in.ScamReportID,
		Description:      in.Description,
		VerificationInfo: in.VerificationInfo,
		CreatedAt:        r.clock.Now().UTC().Truncate(time.Microsecond),
	}
	if _, err := r.db.ExecContext(ctx, q,
		d.ID, d.ScamReportID, d.Description, nullString(d.VerificationInfo), d.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("postgres: insert dispute: %w", err)
	}
	return d, nil
}

func (r *DisputeRepository) ListByReportID(ctx context.Context, reportID string) ([]*domain.Dispute, error) {
	const q = `
SELECT id, scam_report_id, description, verification_info, created_at
FROM disputes
WHERE scam_report_id = $1
ORDER BY seq ASC;`
	rows, err := r.db.QueryContext(ctx, q, reportID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list disputes: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Dispute, 0)
	for rows.Next() {
		var d domain.Dispute
		var info sql.NullString
		if err := rows.Scan(&d.ID, &d.ScamReportID, &d.Description, &info, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan dispute: %w", err)
		}
		d.VerificationInfo = fromNull[string](info)
		out = append(out, &d)
	}
	return out, rows.Err()
}
