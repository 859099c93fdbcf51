package disputes

import (
	"context"

	domain "github.com/bryanwahyu/scamwatch/internal/domain/disputes"
)

type Service struct {
	Repo domain.Repository
}

// CreateCommand untuk submit dispute
type CreateCommand struct {
	ScamReportID     string
	Description      string
	VerificationInfo *string
}

// Create stores the dispute as given; the referenced report is not checked.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*domain.Dispute, error) {
	return s.Repo.Create(ctx, domain.NewDispute{
		ScamReportID:     cmd.ScamReportID,
		Description:      cmd.Description,
		VerificationInfo: cmd.VerificationInfo,
	})
}

func (s *Service) ListByReport(ctx context.Context, reportID string) ([]*domain.Dispute, error) {
	return s.Repo.ListByReportID(ctx, reportID)
}
