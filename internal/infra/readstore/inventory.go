package readstore

import (
	"context"

	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/infra"
	"rv-portal/internal/infra/query"
	"rv-portal/internal/pkg/pgconv"
	"rv-portal/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryReadQueries interface {
	GetInventory(ctx context.Context, db query.DBTX, arg query.GetInventoryParams) ([]query.GetInventoryRow, error)
	ListUnitClasses(ctx context.Context, db query.DBTX) ([]query.UnitClass, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      query.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db query.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryReadStore) Search(ctx context.Context, s shared.InventorySearch) ([]inventory.Row, error) {
	rows, err := r.queries.GetInventory(ctx, r.db, toInventoryParams(s))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to call unit.get_inventory", err)
	}

	result := make([]inventory.Row, 0, len(rows))
	for _, row := range rows {
		ir, err := toInventoryRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid inventory row", err, infra.KindInvalidData)
		}
		result = append(result, ir)
	}
	return result, nil
}

func (r *InventoryReadStore) FindByStock(ctx context.Context, stockNumber string) (*inventory.Row, error) {
	rows, err := r.Search(ctx, shared.InventorySearch{StockNumber: stockNumber, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("unit not found", nil, infra.KindNotFound)
	}
	return &rows[0], nil
}

func (r *InventoryReadStore) UnitClasses(ctx context.Context) ([]inventory.UnitClass, error) {
	rows, err := r.queries.ListUnitClasses(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unit classes", err)
	}

	result := make([]inventory.UnitClass, len(rows))
	for i, row := range rows {
		result[i] = inventory.UnitClass{
			ID:          int(row.ID),
			Code:        pgconv.StringFromPgtype(row.Code),
			Description: pgconv.StringFromPgtype(row.Description),
		}
	}
	return result, nil
}

func toInventoryParams(s shared.InventorySearch) query.GetInventoryParams {
	p := query.GetInventoryParams{
		ClassNames:    nilIfEmpty(s.ClassNames),
		Manufacturers: nilIfEmpty(s.Manufacturers),
		Makes:         nilIfEmpty(s.Makes),
		Models:        nilIfEmpty(s.Models),
		MinYear:       intPtrToPgtype(s.MinYear),
		MaxYear:       intPtrToPgtype(s.MaxYear),
		MinSleeps:     intPtrToPgtype(s.MinSleeps),
		MinLength:     float8PtrToPgtype(s.MinLength),
		MaxLength:     float8PtrToPgtype(s.MaxLength),
		StockNumber:   pgconv.StringOrNull(s.StockNumber),
		Search:        pgconv.StringOrNull(s.Search),
		Condition:     pgconv.StringOrNull(s.Condition),
	}
	if len(s.LocationIDs) > 0 {
		p.LocationIds = make([]int32, len(s.LocationIDs))
		for i, id := range s.LocationIDs {
			p.LocationIds[i] = int32(id) // #nosec G115 -- location ids are small
		}
	}
	if s.MinPrice != nil {
		p.MinPrice = pgconv.NumericFromDecimal(*s.MinPrice)
	}
	if s.MaxPrice != nil {
		p.MaxPrice = pgconv.NumericFromDecimal(*s.MaxPrice)
	}
	if s.Limit > 0 {
		p.Limit = pgconv.Int4ToPgtype(int32(s.Limit)) // #nosec G115 -- bounded by the handler
	}
	if s.Offset > 0 {
		p.Offset = pgconv.Int4ToPgtype(int32(s.Offset)) // #nosec G115 -- bounded by the handler
	}
	return p
}

func toInventoryRow(row query.GetInventoryRow) (inventory.Row, error) {
	price, err := pgconv.DecimalFromNumeric(row.ListPrice)
	if err != nil {
		return inventory.Row{}, err
	}
	return inventory.Row{
		StockNumber:      pgconv.StringFromPgtype(row.StockNumber),
		VIN:              pgconv.StringFromPgtype(row.Vin),
		Manufacturer:     pgconv.StringFromPgtype(row.Manufacturer),
		Make:             pgconv.StringFromPgtype(row.Make),
		Model:            pgconv.StringFromPgtype(row.Model),
		ModelYear:        int(pgconv.Int32FromPgtype(row.ModelYear)),
		Condition:        pgconv.StringFromPgtype(row.Condition),
		ClassCode:        pgconv.StringFromPgtype(row.ClassCode),
		ClassDescription: pgconv.StringFromPgtype(row.ClassDescription),
		ListPrice:        price,
		LengthFeet:       pgconv.Float64FromPgtype(row.LengthFt),
		DryWeightLbs:     int(pgconv.Int32FromPgtype(row.DryWeightLbs)),
		Sleeps:           int(pgconv.Int32FromPgtype(row.Sleeps)),
		FreshWaterGal:    int(pgconv.Int32FromPgtype(row.FreshWaterGal)),
		GreyWaterGal:     int(pgconv.Int32FromPgtype(row.GreyWaterGal)),
		BlackWaterGal:    int(pgconv.Int32FromPgtype(row.BlackWaterGal)),
		LocationID:       int(pgconv.Int32FromPgtype(row.LocationCmf)),
		LocationCode:     pgconv.StringFromPgtype(row.LocationCode),
		LocationName:     pgconv.StringFromPgtype(row.LocationName),
		LocationZip:      pgconv.StringFromPgtype(row.LocationZip),
		Latitude:         pgconv.Float64FromPgtype(row.Latitude),
		Longitude:        pgconv.Float64FromPgtype(row.Longitude),
	}, nil
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func intPtrToPgtype(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgconv.Int4ToPgtype(int32(*i)) // #nosec G115 -- years, sleeps
}

func float8PtrToPgtype(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}
