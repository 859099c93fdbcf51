package reports

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/bryanwahyu/scamwatch/internal/domain/reports"
)

// CountToday counts reports created since local midnight.
func (s *Service) CountToday(ctx context.Context) (int, error) {
	return s.Repo.CountSince(ctx, domain.StartOfDay(s.clock().Now()))
}

// Stats rekap total, hari ini, dan estimasi komunitas.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	var total, today int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Repo.CountTotal(gctx)
		total = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountToday(gctx)
		today = n
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		TotalScams:    total,
		TodayReports:  today,
		CommunitySize: domain.CommunitySize(total),
	}, nil
}
