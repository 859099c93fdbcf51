// Package storetest holds behaviour checks shared by every report and
// dispute store implementation.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/scamwatch/internal/application"
	"github.com/bryanwahyu/scamwatch/internal/domain/disputes"
	"github.com/bryanwahyu/scamwatch/internal/domain/reports"
)

// Start is the instant every suite clock begins at.
var Start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type ReportFactory func(t *testing.T, clock application.Clock) reports.Repository

type DisputeFactory func(t *testing.T, clock application.Clock) disputes.Repository

type Options struct {
	// UniquePhone is set for stores that reject a second Create of the
	// same number with reports.ErrDuplicatePhone.
	UniquePhone bool
}

func ptr[T any](v T) *T { return &v }

func sample(phone string) reports.NewReport {
	return reports.NewReport{
		PhoneNumber: phone,
		Category:    reports.CategoryIRSTax,
		Description: "Caller demanded payment in gift cards",
	}
}

func RunReportRepository(t *testing.T, newRepo ReportFactory, opts Options) {
	ctx := context.Background()

	t.Run("CreateAndFind", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))

		in := sample("5551234567")
		in.CallType = ptr(reports.CallTypeRobocall)
		created, err := repo.Create(ctx, in)
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 1, created.ReportCount)
		assert.False(t, created.IsVerified)
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
		assert.Nil(t, created.Frequency)

		got, err := repo.FindByPhoneNumber(ctx, "5551234567")
		require.NoError(t, err)
		require.NotNil(t, got)
		if diff := cmp.Diff(created, got); diff != "" {
			t.Errorf("FindByPhoneNumber mismatch (-created +got):\n%s", diff)
		}

		missing, err := repo.FindByPhoneNumber(ctx, "0000000000")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("IncrementCount", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))

		created, err := repo.Create(ctx, sample("5551234567"))
		require.NoError(t, err)

		bumped, err := repo.IncrementCount(ctx, "5551234567")
		require.NoError(t, err)
		require.NotNil(t, bumped)
		assert.Equal(t, created.ID, bumped.ID)
		assert.Equal(t, 2, bumped.ReportCount)
		assert.True(t, bumped.UpdatedAt.After(created.UpdatedAt))
		assert.True(t, bumped.CreatedAt.Equal(created.CreatedAt))
		assert.Equal(t, created.Description, bumped.Description)

		absent, err := repo.IncrementCount(ctx, "0000000000")
		require.NoError(t, err)
		assert.Nil(t, absent)

		total, err := repo.CountTotal(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("SetVerified", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))

		created, err := repo.Create(ctx, sample("5551234567"))
		require.NoError(t, err)
		_, err = repo.IncrementCount(ctx, "5551234567")
		require.NoError(t, err)

		verified, err := repo.SetVerified(ctx, created.ID, true)
		require.NoError(t, err)
		require.NotNil(t, verified)
		assert.True(t, verified.IsVerified)
		assert.Equal(t, 2, verified.ReportCount)
		assert.Equal(t, created.PhoneNumber, verified.PhoneNumber)
		assert.True(t, verified.UpdatedAt.After(created.UpdatedAt))

		unverified, err := repo.SetVerified(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, unverified.IsVerified)

		unknown, err := repo.SetVerified(ctx, "no-such-id", true)
		require.NoError(t, err)
		assert.Nil(t, unknown)
	})

	t.Run("ListOrdering", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Minute))

		for i := 0; i < 5; i++ {
			_, err := repo.Create(ctx, sample(fmt.Sprintf("555000000%d", i)))
			require.NoError(t, err)
		}

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "ListAll must be newest first")
		}
		assert.Equal(t, "5550000004", all[0].PhoneNumber)

		recent, err := repo.ListRecent(ctx, 3)
		require.NoError(t, err)
		if diff := cmp.Diff(all[:3], recent); diff != "" {
			t.Errorf("ListRecent(3) is not a prefix of ListAll:\n%s", diff)
		}
	})

	t.Run("ListRecentDefaultLimit", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))
		for i := 0; i < 12; i++ {
			_, err := repo.Create(ctx, sample(fmt.Sprintf("55500000%02d", i)))
			require.NoError(t, err)
		}

		recent, err := repo.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, recent, reports.DefaultRecentLimit)
	})

	t.Run("EqualTimestampsKeepInsertionOrder", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, 0))
		for _, phone := range []string{"5550000001", "5550000002", "5550000003"} {
			_, err := repo.Create(ctx, sample(phone))
			require.NoError(t, err)
		}

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		var phones []string
		for _, r := range all {
			phones = append(phones, r.PhoneNumber)
		}
		assert.Equal(t, []string{"5550000001", "5550000002", "5550000003"}, phones)
	})

	t.Run("EmptyListsAreNotNil", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("Search", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))
		fixtures := []reports.NewReport{
			{PhoneNumber: "5550001111", Category: reports.CategoryIRSTax, Description: "Said I OWE the IRS money"},
			{PhoneNumber: "5550002222", Category: reports.CategoryRomance, Description: "Promised a 100% refund"},
			{PhoneNumber: "5550003333", Category: reports.CategoryIRSTax, Description: "Automated tax lien warning"},
		}
		for _, f := range fixtures {
			_, err := repo.Create(ctx, f)
			require.NoError(t, err)
		}

		phones := func(f reports.Filter) []string {
			t.Helper()
			list, err := repo.Search(ctx, f)
			require.NoError(t, err)
			out := make([]string, 0, len(list))
			for _, r := range list {
				out = append(out, r.PhoneNumber)
			}
			return out
		}

		assert.Equal(t, []string{"5550001111"}, phones(reports.Filter{Search: "owe"}))
		assert.Equal(t, []string{"5550001111"}, phones(reports.Filter{Search: "IRS"}))
		assert.Equal(t, []string{"5550002222"}, phones(reports.Filter{Search: "0002"}))
		assert.Equal(t, []string{"5550002222"}, phones(reports.Filter{Search: "%"}))
		assert.Equal(t, []string{"5550003333", "5550001111"}, phones(reports.Filter{Category: reports.CategoryIRSTax}))
		assert.Equal(t, []string{"5550003333"}, phones(reports.Filter{Search: "TAX", Category: reports.CategoryIRSTax}))
		assert.Empty(t, phones(reports.Filter{Search: "refund", Category: reports.CategoryIRSTax}))
	})

	t.Run("CountSince", func(t *testing.T) {
		clock := application.NewManualClock(Start, 0)
		repo := newRepo(t, clock)
		today := reports.StartOfDay(Start)

		clock.Set(today.Add(-time.Hour))
		_, err := repo.Create(ctx, sample("5550000001"))
		require.NoError(t, err)
		clock.Set(today)
		_, err = repo.Create(ctx, sample("5550000002"))
		require.NoError(t, err)
		clock.Set(Start)
		_, err = repo.Create(ctx, sample("5550000003"))
		require.NoError(t, err)

		n, err := repo.CountSince(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		total, err := repo.CountTotal(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	if opts.UniquePhone {
		t.Run("DuplicateCreate", func(t *testing.T) {
			repo := newRepo(t, application.NewManualClock(Start, time.Second))

			_, err := repo.Create(ctx, sample("5551234567"))
			require.NoError(t, err)
			_, err = repo.Create(ctx, sample("5551234567"))
			assert.ErrorIs(t, err, reports.ErrDuplicatePhone)
		})
	}
}

func RunDisputeRepository(t *testing.T, newRepo DisputeFactory) {
	ctx := context.Background()

	t.Run("CreateAndList", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))

		first, err := repo.Create(ctx, disputes.NewDispute{
			ScamReportID:     "r-1",
			Description:      "This is my pharmacy's line",
			VerificationInfo: ptr("License #1234"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, first.ID)
		assert.True(t, first.CreatedAt.Equal(Start))

		second, err := repo.Create(ctx, disputes.NewDispute{ScamReportID: "r-1", Description: "Second dispute for it"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, disputes.NewDispute{ScamReportID: "r-2", Description: "Unrelated dispute text"})
		require.NoError(t, err)

		list, err := repo.ListByReportID(ctx, "r-1")
		require.NoError(t, err)
		if diff := cmp.Diff([]*disputes.Dispute{first, second}, list); diff != "" {
			t.Errorf("ListByReportID mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, list[1].VerificationInfo)
	})

	t.Run("UnknownReportIsEmpty", func(t *testing.T) {
		repo := newRepo(t, application.NewManualClock(Start, time.Second))

		list, err := repo.ListByReportID(ctx, "nope")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
