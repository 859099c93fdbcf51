package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/scamwatch/internal/application"
	"github.com/bryanwahyu/scamwatch/internal/domain/reports"
)

func TestReportRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(application.NewManualClock(time.Now(), time.Second))

	ct := reports.CallTypeText
	created, err := repo.Create(ctx, reports.NewReport{
		PhoneNumber: "5551234567",
		Category:    reports.CategoryPhishing,
		Description: "Text with a parcel tracking link",
		CallType:    &ct,
	})
	require.NoError(t, err)

	created.ReportCount = 99
	*created.CallType = reports.CallTypeLive

	got, err := repo.FindByPhoneNumber(ctx, "5551234567")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ReportCount)
	assert.Equal(t, reports.CallTypeText, *got.CallType)
}
