package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/repository/postgres"
)

// NewDBForTest wraps a raw sqlx handle the way the production constructor does.
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

func NewStationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StationRepository {
	return postgres.NewStationRepository(NewDBForTest(db, logger))
}

func NewPriceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PriceRepository {
	return postgres.NewPriceRepository(NewDBForTest(db, logger))
}

func NewFavoriteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FavoriteRepository {
	return postgres.NewFavoriteRepository(NewDBForTest(db, logger))
}
