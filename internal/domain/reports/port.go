package reports

import (
	"context"
	"time"
)

// DefaultRecentLimit is used by ListRecent when limit <= 0.
const DefaultRecentLimit = 10

// Repository port (interface untuk persistence).
//
// Lookups return (nil, nil) when nothing matches; absence is not an error.
type Repository interface {
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*ScamReport, error)
	Create(ctx context.Context, in NewReport) (*ScamReport, error)
	IncrementCount(ctx context.Context, phoneNumber string) (*ScamReport, error)
	SetVerified(ctx context.Context, id ReportID, verified bool) (*ScamReport, error)

	// ListAll orders by created_at desc, ties keep insertion order.
	ListAll(ctx context.Context) ([]*ScamReport, error)
	ListRecent(ctx context.Context, limit int) ([]*ScamReport, error)
	Search(ctx context.Context, f Filter) ([]*ScamReport, error)

	CountTotal(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
