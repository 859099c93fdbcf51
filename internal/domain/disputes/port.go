package disputes

import "context"

// Repository port for persisting and querying disputes
type Repository interface {
	Create(ctx context.Context, in NewDispute) (*Dispute, error)
	// ListByReportID returns disputes in insertion order.
	ListByReportID(ctx context.Context, reportID string) ([]*Dispute, error)
}
