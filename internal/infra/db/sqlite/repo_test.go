package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/scamwatch/internal/application"
	"github.com/bryanwahyu/scamwatch/internal/domain/disputes"
	"github.com/bryanwahyu/scamwatch/internal/domain/reports"
	"github.com/bryanwahyu/scamwatch/internal/infra/db/storetest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReportRepository(t *testing.T) {
	storetest.RunReportRepository(t, func(t *testing.T, clock application.Clock) reports.Repository {
		return NewReportRepository(openTestDB(t), clock)
	}, storetest.Options{UniquePhone: true})
}

func TestDisputeRepository(t *testing.T) {
	storetest.RunDisputeRepository(t, func(t *testing.T, clock application.Clock) disputes.Repository {
		return NewDisputeRepository(openTestDB(t), clock)
	})
}

func TestOpen_FileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scamwatch.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	repo := NewReportRepository(db, application.NewManualClock(storetest.Start, time.Second))
	created, err := repo.Create(ctx, reports.NewReport{
		PhoneNumber: "5551234567",
		Category:    reports.CategoryCharity,
		Description: "Fake hurricane relief fund",
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewReportRepository(db, nil).FindByPhoneNumber(ctx, "5551234567")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestIncrementCount_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(openTestDB(t), application.NewManualClock(storetest.Start, time.Millisecond))

	_, err := repo.Create(ctx, reports.NewReport{
		PhoneNumber: "5551234567",
		Category:    reports.CategoryRobocalls,
		Description: "Extended car warranty robocall",
	})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for j := 0; j < n; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementCount(ctx, "5551234567")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.FindByPhoneNumber(ctx, "5551234567")
	require.NoError(t, err)
	assert.Equal(t, n+1, got.ReportCount)
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `100\% \_ok\\`, escapeLikePattern(`100% _ok\`))
}
