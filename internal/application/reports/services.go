package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/bryanwahyu/scamwatch/internal/application"
	domain "github.com/bryanwahyu/scamwatch/internal/domain/reports"
)

// Service implements the report use-cases. It is safe for concurrent use;
// do not copy it after first use.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock

	locks keyedMutex
}

//
// ==== USE CASES ====
//

// ReportCommand is a scam report submission. PhoneNumber may be in any
// human format; it is normalized before touching the store.
type ReportCommand struct {
	PhoneNumber string
	Category    domain.Category
	Description string
	CallType    *domain.CallType
	Frequency   *domain.Frequency
}

type ReportResult struct {
	Report *domain.ScamReport
	// Created is false when an existing record had its count bumped.
	Created bool
}

// Report creates a record for a first-time number or increments the count
// of the existing one. Submissions for the same number are serialized so
// the lookup and the write act as one decision.
func (s *Service) Report(ctx context.Context, cmd ReportCommand) (ReportResult, error) {
	phone := domain.Normalize(cmd.PhoneNumber)
	if !domain.IsValid(phone) {
		return ReportResult{}, domain.ErrInvalidPhoneNumber
	}

	unlock := s.locks.Lock(phone)
	defer unlock()

	existing, err := s.Repo.FindByPhoneNumber(ctx, phone)
	if err != nil {
		return ReportResult{}, fmt.Errorf("reports: find %s: %w", phone, err)
	}
	if existing != nil {
		return s.increment(ctx, phone)
	}

	rep, err := s.Repo.Create(ctx, domain.NewReport{
		PhoneNumber: phone,
		Category:    cmd.Category,
		Description: cmd.Description,
		CallType:    cmd.CallType,
		Frequency:   cmd.Frequency,
	})
	if errors.Is(err, domain.ErrDuplicatePhone) {
		// another process won the unique index
		return s.increment(ctx, phone)
	}
	if err != nil {
		return ReportResult{}, fmt.Errorf("reports: create %s: %w", phone, err)
	}
	return ReportResult{Report: rep, Created: true}, nil
}

func (s *Service) increment(ctx context.Context, phone string) (ReportResult, error) {
	rep, err := s.Repo.IncrementCount(ctx, phone)
	if err != nil {
		return ReportResult{}, fmt.Errorf("reports: increment %s: %w", phone, err)
	}
	if rep == nil {
		return ReportResult{}, fmt.Errorf("reports: increment %s: record disappeared", phone)
	}
	return ReportResult{Report: rep, Created: false}, nil
}

// Lookup normalizes raw and returns the matching report, or nil.
func (s *Service) Lookup(ctx context.Context, raw string) (*domain.ScamReport, error) {
	return s.Repo.FindByPhoneNumber(ctx, domain.Normalize(raw))
}

// Recent ambil N report terakhir
func (s *Service) Recent(ctx context.Context, limit int) ([]*domain.ScamReport, error) {
	return s.Repo.ListRecent(ctx, limit)
}

// All returns every report, most recent first.
func (s *Service) All(ctx context.Context) ([]*domain.ScamReport, error) {
	return s.Repo.ListAll(ctx)
}

func (s *Service) Search(ctx context.Context, f domain.Filter) ([]*domain.ScamReport, error) {
	if f.Search == "" && f.Category == "" {
		return s.Repo.ListAll(ctx)
	}
	return s.Repo.Search(ctx, f)
}

// Verify sets the verification flag of report id. A nil report means the
// id is unknown.
func (s *Service) Verify(ctx context.Context, id domain.ReportID, verified bool) (*domain.ScamReport, error) {
	return s.Repo.SetVerified(ctx, id, verified)
}

func (s *Service) clock() application.Clock {
	if s.Clock == nil {
		return application.SystemClock{}
	}
	return s.Clock
}
