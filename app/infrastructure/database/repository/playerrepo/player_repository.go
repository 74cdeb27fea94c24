package playerrepo

import (
	"context"
	"errors"

	domain "gametrack.gg/stats-api/app/domain/player"
	"gametrack.gg/stats-api/app/domain/query"
	"gametrack.gg/stats-api/app/infrastructure/database"
	"gametrack.gg/stats-api/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type PlayerGormRepository struct {
	db *gorm.DB
}

func NewPlayerGormRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerGormRepository{
		db: db,
	}
}

// regionTx routes the query to the server's region pool.
func (r *PlayerGormRepository) regionTx(ctx context.Context, serverCode string) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(dbresolver.Use(database.RegionLabel(serverCode)))
}

func (r *PlayerGormRepository) FindByFilter(ctx context.Context, filter domain.PlayerFilter, pagination *query.Pagination) ([]*domain.Player, int64, error) {
	tx := r.regionTx(ctx, filter.ServerCode).
		Model(&dbschema.Player{}).
		Where("server_code = ?", filter.ServerCode)
	if filter.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "might DESC"
	if pagination.Order == "asc" {
		order = "might ASC"
	}

	var models []*dbschema.Player
	err := tx.Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	players := make([]*domain.Player, 0, len(models))
	for _, model := range models {
		players = append(players, model.EtoD())
	}
	return players, total, nil
}

func (r *PlayerGormRepository) FindByGameID(ctx context.Context, serverCode string, gameID int64) (*domain.Player, error) {
	var model dbschema.Player
	err := r.regionTx(ctx, serverCode).
		Where("server_code = ? AND game_id = ?", serverCode, gameID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}
