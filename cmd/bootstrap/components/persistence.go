package components

import (
	"coshare-scheduler/internal/infra/readstore"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/infra/uow"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are created per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Conflict
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ConflictReadQueries)),
		),
		fx.Annotate(
			readstore.NewConflictReadStore,
			fx.As(new(queries.ConflictReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
