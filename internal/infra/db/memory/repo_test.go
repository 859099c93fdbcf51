package memory

import (
	"testing"

	"github.com/bryanwahyu/scamwatch/internal/application"
	"github.com/bryanwahyu/scamwatch/internal/domain/disputes"
	"github.com/bryanwahyu/scamwatch/internal/domain/reports"
	"github.com/bryanwahyu/scamwatch/internal/infra/db/storetest"
)

func TestReportRepository(t *testing.T) {
	storetest.RunReportRepository(t, func(_ *testing.T, clock application.Clock) reports.Repository {
		return NewReportRepository(clock)
	}, storetest.Options{})
}

func TestDisputeRepository(t *testing.T) {
	storetest.RunDisputeRepository(t, func(_ *testing.T, clock application.Clock) disputes.Repository {
		return NewDisputeRepository(clock)
	})
}
