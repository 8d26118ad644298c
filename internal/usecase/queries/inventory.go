package queries

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/domain/pricing"
	"rv-portal/internal/infra"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/shared"
)

var (
	ErrInvalidInventoryQuery = errs.New("invalid inventory query")
	ErrInventoryUnavailable  = errs.New("inventory unavailable")
)

type InitData struct {
	Locations   []location.Location
	UnitClasses []inventory.UnitClass
}

// InventoryQuery narrows server side through Search, then applies Criteria in memory.
type InventoryQuery struct {
	Search   shared.InventorySearch
	Criteria inventory.Criteria
	Sort     string
	Origin   *geo.Coordinates
	Group    bool
	// Limit caps the sorted result. The store is never limited so that sorting and
	// in-memory filters see every match.
	Limit int
}

type InventoryResult struct {
	Units  []inventory.RV
	Groups []inventory.GroupedRV
	// Fetched is the row count before in-memory filtering.
	Fetched int
	// Matched is the filtered count before Limit.
	Matched int
	Sort    inventory.SortKey
}

type InventoryQueries interface {
	InitData(ctx context.Context) (*InitData, error)
	Search(ctx context.Context, q InventoryQuery) (*InventoryResult, error)
	GetUnit(ctx context.Context, stockNumber string) (*inventory.RV, error)
}

type inventoryQueriesImpl struct {
	units     InventoryReadStore
	locations LocationReadStore
	images    ImageResolver
	terms     pricing.Terms
}

func NewInventoryQueries(units InventoryReadStore, locations LocationReadStore, images ImageResolver, terms pricing.Terms) InventoryQueries {
	return &inventoryQueriesImpl{
		units:     units,
		locations: locations,
		images:    images,
		terms:     terms,
	}
}

func (q *inventoryQueriesImpl) InitData(ctx context.Context) (*InitData, error) {
	var data InitData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		locs, err := q.locations.FindAll(gctx)
		if err != nil {
			return errs.Wrap(err, "load locations")
		}
		data.Locations = locs
		return nil
	})
	g.Go(func() error {
		classes, err := q.units.UnitClasses(gctx)
		if err != nil {
			return errs.Wrap(err, "load unit classes")
		}
		data.UnitClasses = classes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Mark(err, ErrInventoryUnavailable)
	}
	return &data, nil
}

func (q *inventoryQueriesImpl) Search(ctx context.Context, in InventoryQuery) (*InventoryResult, error) {
	key, err := inventory.ParseSortKey(in.Sort)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInventoryQuery)
	}
	if key == inventory.SortDistanceAsc && in.Origin == nil {
		return nil, errs.Mark(inventory.ErrSortNeedsOrigin, ErrInvalidInventoryQuery)
	}

	rows, err := q.units.Search(ctx, in.Search)
	if err != nil {
		return nil, errs.Mark(err, ErrInventoryUnavailable)
	}

	units := q.transform(ctx, rows)
	units = inventory.Apply(units, in.Criteria.Predicates()...)
	units, err = inventory.Sort(units, key, in.Origin)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInventoryQuery)
	}

	matched := len(units)
	if in.Limit > 0 && len(units) > in.Limit {
		units = units[:in.Limit]
	}

	res := &InventoryResult{Units: units, Fetched: len(rows), Matched: matched, Sort: key}
	if in.Group {
		res.Groups = inventory.Group(units)
	}
	return res, nil
}

func (q *inventoryQueriesImpl) GetUnit(ctx context.Context, stockNumber string) (*inventory.RV, error) {
	row, err := q.units.FindByStock(ctx, stockNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, errs.Mark(err, ErrInventoryUnavailable)
	}
	rv, err := inventory.Transform(*row, q.terms, q.images.ImageURL(ctx, row.StockNumber))
	if err != nil {
		return nil, errs.Mark(err, ErrInventoryUnavailable)
	}
	return &rv, nil
}

// transform drops rows the view model cannot represent instead of failing the whole page.
func (q *inventoryQueriesImpl) transform(ctx context.Context, rows []inventory.Row) []inventory.RV {
	units := make([]inventory.RV, 0, len(rows))
	for _, row := range rows {
		rv, err := inventory.Transform(row, q.terms, q.images.ImageURL(ctx, row.StockNumber))
		if err != nil {
			slog.Warn("skipping inventory row", "stock_number", row.StockNumber, "error", err.Error())
			continue
		}
		units = append(units, rv)
	}
	return units
}
