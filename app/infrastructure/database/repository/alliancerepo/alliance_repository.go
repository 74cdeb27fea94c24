package alliancerepo

import (
	"context"
	"errors"

	domain "gametrack.gg/stats-api/app/domain/alliance"
	"gametrack.gg/stats-api/app/domain/query"
	"gametrack.gg/stats-api/app/infrastructure/database"
	"gametrack.gg/stats-api/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type AllianceGormRepository struct {
	db *gorm.DB
}

func NewAllianceGormRepository(db *gorm.DB) domain.AllianceRepository {
	return &AllianceGormRepository{
		db: db,
	}
}

func (r *AllianceGormRepository) regionTx(ctx context.Context, serverCode string) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(dbresolver.Use(database.RegionLabel(serverCode)))
}

func (r *AllianceGormRepository) FindByFilter(ctx context.Context, filter domain.AllianceFilter, pagination *query.Pagination) ([]*domain.Alliance, int64, error) {
	tx := r.regionTx(ctx, filter.ServerCode).
		Model(&dbschema.Alliance{}).
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

	var models []*dbschema.Alliance
	err := tx.Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	alliances := make([]*domain.Alliance, 0, len(models))
	for _, model := range models {
		alliances = append(alliances, model.EtoD())
	}
	return alliances, total, nil
}

func (r *AllianceGormRepository) FindByGameID(ctx context.Context, serverCode string, gameID int64) (*domain.Alliance, error) {
	var model dbschema.Alliance
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
