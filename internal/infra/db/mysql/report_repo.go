package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/scamwatch/internal/application"
	domain "github.com/bryanwahyu/scamwatch/internal/domain/reports"
)

const reportColumns = `id, phone_number, category, description, call_type, frequency,
       is_verified, report_count, created_at, updated_at`

type ReportRepository struct {
	db    *sql.DB
	clock application.Clock
}

func NewReportRepository(db *sql.DB, clock application.Clock) *ReportRepository {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &ReportRepository{db: db, clock: clock}
}

// now is truncated to the DATETIME(6) precision so returned values match
// what a later read gives back.
func (r *ReportRepository) now() time.Time {
	return r.clock.Now().UTC().Truncate(time.Microsecond)
}

func (r *ReportRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.ScamReport, error) {
	q := `SELECT ` + reportColumns + ` FROM scam_reports WHERE phone_number = ? LIMIT 1;`
	return r.one(ctx, q, phoneNumber)
}

func (r *ReportRepository) findByID(ctx context.Context, id domain.ReportID) (*domain.ScamReport, error) {
	q := `SELECT ` + reportColumns + ` FROM scam_reports WHERE id = ? LIMIT 1;`
	return r.one(ctx, q, id)
}

func (r *ReportRepository) one(ctx context.Context, q string, args ...any) (*domain.ScamReport, error) {
	rep, err := scanReport(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mysql: get report: %w", err)
	}
	return rep, nil
}

// Create inserts a new report. The unique index on phone_number turns a
// lost race into domain.ErrDuplicatePhone.
func (r *ReportRepository) Create(ctx context.Context, in domain.NewReport) (*domain.ScamReport, error) {
	const q = `
INSERT INTO scam_reports
  (id, phone_number, category, description, call_type, frequency,
   is_verified, report_count, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?);`

	now := r.now()
	rep := &domain.ScamReport{
		ID:          domain.ReportID(uuid.New().String()),
		PhoneNumber: in.PhoneNumber,
		Category:    in.Category,
		Description: in.Description,
		CallType:    in.CallType,
		Frequency:   in.Frequency,
		ReportCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := r.db.ExecContext(ctx, q,
		rep.ID, rep.PhoneNumber, rep.Category, rep.Description,
		nullString(rep.CallType), nullString(rep.Frequency),
		rep.IsVerified, rep.ReportCount, rep.CreatedAt, rep.UpdatedAt,
	)
	if isDuplicate(err) {
		return nil, domain.ErrDuplicatePhone
	}
	if err != nil {
		return nil, fmt.Errorf("mysql: insert report: %w", err)
	}
	return rep, nil
}

func (r *ReportRepository) IncrementCount(ctx context.Context, phoneNumber string) (*domain.ScamReport, error) {
	const q = `
UPDATE scam_reports
SET report_count = report_count + 1,
    updated_at = ?
WHERE phone_number = ?;`
	if _, err := r.db.ExecContext(ctx, q, r.now(), phoneNumber); err != nil {
		return nil, fmt.Errorf("mysql: increment report: %w", err)
	}
	return r.FindByPhoneNumber(ctx, phoneNumber)
}

func (r *ReportRepository) SetVerified(ctx context.Context, id domain.ReportID, verified bool) (*domain.ScamReport, error) {
	const q = `
UPDATE scam_reports
SET is_verified = ?,
    updated_at = ?
WHERE id = ?;`
	if _, err := r.db.ExecContext(ctx, q, verified, r.now(), id); err != nil {
		return nil, fmt.Errorf("mysql: verify report: %w", err)
	}
	return r.findByID(ctx, id)
}

func (r *ReportRepository) ListAll(ctx context.Context) ([]*domain.ScamReport, error) {
	q := `SELECT ` + reportColumns + ` FROM scam_reports ORDER BY created_at DESC, seq ASC;`
	return r.list(ctx, q)
}

func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ScamReport, error) {
	if limit <= 0 {
		limit = domain.DefaultRecentLimit
	}
	q := `SELECT ` + reportColumns + ` FROM scam_reports ORDER BY created_at DESC, seq ASC LIMIT ?;`
	return r.list(ctx, q, limit)
}

func (r *ReportRepository) Search(ctx context.Context, f domain.Filter) ([]*domain.ScamReport, error) {
	query := `SELECT ` + reportColumns + ` FROM scam_reports WHERE 1=1`
	var args []any

	if f.Search != "" {
		term := "%" + escapeLikePattern(strings.ToLower(f.Search)) + "%"
		query += " AND (phone_number LIKE ? OR LOWER(description) LIKE ?)"
		args = append(args, term, term)
	}
	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	query += " ORDER BY created_at DESC, seq ASC;"
	return r.list(ctx, query, args...)
}

func (r *ReportRepository) list(ctx context.Context, q string, args ...any) ([]*domain.ScamReport, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("mysql: list reports: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.ScamReport, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("mysql: scan report: %w", err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *ReportRepository) CountTotal(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scam_reports;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("mysql: count reports: %w", err)
	}
	return n, nil
}

func (r *ReportRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	const q = `SELECT COUNT(*) FROM scam_reports WHERE created_at >= ?;`
	if err := r.db.QueryRowContext(ctx, q, since.UTC()).Scan(&n); err != nil {
		return 0, fmt.Errorf("mysql: count reports since: %w", err)
	}
	return n, nil
}

func scanReport(s rowScanner) (*domain.ScamReport, error) {
	var rep domain.ScamReport
	var callType, frequency sql.NullString
	if err := s.Scan(
		&rep.ID, &rep.PhoneNumber, &rep.Category, &rep.Description, &callType, &frequency,
		&rep.IsVerified, &rep.ReportCount, &rep.CreatedAt, &rep.UpdatedAt,
	); err != nil {
		return nil, err
	}
	rep.CallType = fromNull[domain.CallType](callType)
	rep.Frequency = fromNull[domain.Frequency](frequency)
	return &rep, nil
}
