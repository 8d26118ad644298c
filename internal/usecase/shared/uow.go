package shared

import (
	"context"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/infra/query"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	UnitByStock(ctx context.Context, stockNumber string) (*inventory.Row, error)
	StockHasOpenOrder(ctx context.Context, stockNumber string) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx query.DBTX, order *checkout.Order) error
}
