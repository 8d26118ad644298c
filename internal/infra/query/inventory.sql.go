package query

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const getInventory = `
SELECT stock_number::text,
       vin::text,
       manufacturer::text,
       make::text,
       model::text,
       model_year::int4,
       condition::text,
       class_code::text,
       class_description::text,
       list_price::numeric,
       length_ft::float8,
       dry_weight_lbs::int4,
       sleeps::int4,
       fresh_water_gal::int4,
       grey_water_gal::int4,
       black_water_gal::int4,
       location_cmf::int4,
       location_code::text,
       location_name::text,
       location_zip::text,
       latitude::float8,
       longitude::float8
FROM unit.get_inventory($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

func (q *Queries) GetInventory(ctx context.Context, db DBTX, arg GetInventoryParams) ([]GetInventoryRow, error) {
	rows, err := db.Query(ctx, getInventory,
		arg.LocationIds,
		arg.ClassNames,
		arg.Manufacturers,
		arg.Makes,
		arg.Models,
		arg.MinYear,
		arg.MaxYear,
		arg.MinPrice,
		arg.MaxPrice,
		arg.MinLength,
		arg.MaxLength,
		arg.MinSleeps,
		arg.StockNumber,
		arg.Search,
		arg.Condition,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GetInventoryRow])
}

const listLocations = `
SELECT cmf, location_code, store_name, address, city, state, zip, latitude::float8, longitude::float8
FROM unit.location
ORDER BY cmf
`

func (q *Queries) ListLocations(ctx context.Context, db DBTX) ([]UnitLocation, error) {
	rows, err := db.Query(ctx, listLocations)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UnitLocation])
}

const getLocation = `
SELECT cmf, location_code, store_name, address, city, state, zip, latitude::float8, longitude::float8
FROM unit.location
WHERE cmf = $1
`

func (q *Queries) GetLocation(ctx context.Context, db DBTX, cmf int32) (UnitLocation, error) {
	rows, err := db.Query(ctx, getLocation, cmf)
	if err != nil {
		return UnitLocation{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[UnitLocation])
}

const listUnitClasses = `
SELECT id, code, description
FROM unit.unit_class
ORDER BY description
`

func (q *Queries) ListUnitClasses(ctx context.Context, db DBTX) ([]UnitClass, error) {
	rows, err := db.Query(ctx, listUnitClasses)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UnitClass])
}
