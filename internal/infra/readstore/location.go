package readstore

import (
	"context"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/infra"
	"rv-portal/internal/infra/query"
	"rv-portal/internal/pkg/pgconv"
)

type LocationReadQueries interface {
	ListLocations(ctx context.Context, db query.DBTX) ([]query.UnitLocation, error)
	GetLocation(ctx context.Context, db query.DBTX, cmf int32) (query.UnitLocation, error)
}

type LocationReadStore struct {
	queries LocationReadQueries
	db      query.DBTX
}

func NewLocationReadStore(queries LocationReadQueries, db query.DBTX) *LocationReadStore {
	return &LocationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LocationReadStore) FindAll(ctx context.Context) ([]location.Location, error) {
	rows, err := r.queries.ListLocations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}

	result := make([]location.Location, len(rows))
	for i, row := range rows {
		result[i] = toLocation(row)
	}
	return result, nil
}

func (r *LocationReadStore) FindByCMF(ctx context.Context, cmf int) (*location.Location, error) {
	row, err := r.queries.GetLocation(ctx, r.db, int32(cmf)) // #nosec G115 -- cmf ids are small
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location", err)
	}
	loc := toLocation(row)
	return &loc, nil
}

func toLocation(row query.UnitLocation) location.Location {
	return location.Location{
		CMF:       int(row.Cmf),
		Code:      pgconv.StringFromPgtype(row.LocationCode),
		StoreName: pgconv.StringFromPgtype(row.StoreName),
		Address:   pgconv.StringFromPgtype(row.Address),
		City:      pgconv.StringFromPgtype(row.City),
		State:     pgconv.StringFromPgtype(row.State),
		Zip:       pgconv.StringFromPgtype(row.Zip),
		Coords: geo.Coordinates{
			Latitude:  pgconv.Float64FromPgtype(row.Latitude),
			Longitude: pgconv.Float64FromPgtype(row.Longitude),
		},
	}
}
