//go:build unit || e2e

package dbtest

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rv-portal/internal/pkg/pgconv"
	"rv-portal/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

//go:embed unit_schema.sql
var unitSchemaSQL string

// ApplyUnitSchema creates the read-only dealer schema the portal queries against.
func ApplyUnitSchema(ctx context.Context, db DBLike) error {
	if _, err := db.Exec(ctx, unitSchemaSQL); err != nil {
		return fmt.Errorf("failed to apply unit schema: %w", err)
	}
	return nil
}

// CreateTestUnit inserts the unit described by b, creating its location and class if needed.
func CreateTestUnit(t *testing.T, db DBLike, b *builder.UnitBuilder) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO unit.location (cmf, location_code, store_name, address, city, state, zip, latitude, longitude)
		VALUES ($1, $2, $3, '', $3, 'TX', $4, $5, $6)
		ON CONFLICT (cmf) DO NOTHING`,
		b.LocationID, b.LocationCode, b.LocationName, b.LocationZip, b.Latitude, b.Longitude)
	require.NoError(t, err)

	var classID int
	err = db.QueryRow(ctx, `SELECT id FROM unit.unit_class WHERE code = $1`, b.ClassCode).Scan(&classID)
	require.NoError(t, err, "unknown class code %q", b.ClassCode)

	_, err = db.Exec(ctx, `
		INSERT INTO unit.units (stock_number, vin, manufacturer, make, model, model_year, condition,
		                        class_id, list_price, length_ft, dry_weight_lbs, sleeps,
		                        fresh_water_gal, grey_water_gal, black_water_gal, location_cmf)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 7200, $11, 40, 30, 30, $12)`,
		b.StockNumber, b.VIN, b.Manufacturer, b.Make, b.Model, b.Year, b.Condition,
		classID, pgconv.NumericFromDecimal(b.ListPrice), b.LengthFeet, b.Sleeps, b.LocationID)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO unit.unit_class (id, code, description) VALUES
		    (1, 'A', 'Class A'),
		    (2, 'C', 'Class C'),
		    (3, 'TT', 'Travel Trailer'),
		    (4, 'FW', 'Fifth Wheel')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO unit.location (cmf, location_code, store_name, address, city, state, zip, latitude, longitude) VALUES
		    (101, 'AUS', 'Austin', '100 Congress Ave', 'Austin', 'TX', '78701', 30.2672, -97.7431),
		    (202, 'DAL', 'Dallas', '200 Main St', 'Dallas', 'TX', '75201', 32.7767, -96.7970)
		ON CONFLICT (cmf) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all portal and unit tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT quote_ident(schemaname) || '.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname IN ('portal', 'unit')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
