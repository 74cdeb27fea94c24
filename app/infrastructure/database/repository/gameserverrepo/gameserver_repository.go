package gameserverrepo

import (
	"context"
	"errors"

	domain "gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type GameServerGormRepository struct {
	db *gorm.DB
}

func NewGameServerGormRepository(db *gorm.DB) domain.GameServerRepository {
	return &GameServerGormRepository{
		db: db,
	}
}

func (r *GameServerGormRepository) FindByFilter(ctx context.Context, filter domain.GameServerFilter) ([]*domain.GameServer, error) {
	tx := r.db.WithContext(ctx).Model(&dbschema.GameServer{})
	if filter.Code != nil {
		tx = tx.Where("code = ?", *filter.Code)
	}
	if filter.Region != nil {
		tx = tx.Where("region = ?", *filter.Region)
	}
	if filter.Enabled != nil {
		tx = tx.Where("enabled = ?", *filter.Enabled)
	}

	var models []*dbschema.GameServer
	if err := tx.Order("code").Find(&models).Error; err != nil {
		return nil, err
	}

	servers := make([]*domain.GameServer, 0, len(models))
	for _, model := range models {
		servers = append(servers, model.EtoD())
	}
	return servers, nil
}

func (r *GameServerGormRepository) FindByCode(ctx context.Context, code string) (*domain.GameServer, error) {
	var model dbschema.GameServer
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}
