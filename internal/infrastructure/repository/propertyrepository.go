package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/property"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/mappers"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/models"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/db"
	apperrors "github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
)

type PropertyRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewPropertyRepository(database *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		db:     database,
		mapper: mappers.NewPropertyMapper(),
	}
}

func (r *PropertyRepository) Save(ctx context.Context, p *property.Property) error {
	model := r.mapper.PropertyToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PropertyRepository) GetByID(ctx context.Context, propertyID uint) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("property %d not found", propertyID))
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	return r.mapper.PropertyToDomain(&model)
}

func (r *PropertyRepository) ListByCommunity(ctx context.Context, communityID uint) ([]*property.Property, error) {
	var propertyModels []models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("community_id = ?", communityID).
		Order("building ASC, room_number ASC").
		Find(&propertyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	properties := make([]*property.Property, len(propertyModels))
	for i, model := range propertyModels {
		p, err := r.mapper.PropertyToDomain(&model)
		if err != nil {
			return nil, err
		}
		properties[i] = p
	}

	return properties, nil
}

type CommunityRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewCommunityRepository(database *gorm.DB) *CommunityRepository {
	return &CommunityRepository{
		db:     database,
		mapper: mappers.NewPropertyMapper(),
	}
}

func (r *CommunityRepository) Save(ctx context.Context, c *property.Community) error {
	model := r.mapper.CommunityToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save community: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommunityRepository) GetByID(ctx context.Context, communityID uint) (*property.Community, error) {
	var model models.CommunityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, communityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("community %d not found", communityID))
		}
		return nil, fmt.Errorf("failed to find community: %w", err)
	}

	return r.mapper.CommunityToDomain(&model)
}

func (r *CommunityRepository) List(ctx context.Context) ([]*property.Community, error) {
	var communityModels []models.CommunityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&communityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}

	communities := make([]*property.Community, len(communityModels))
	for i, model := range communityModels {
		c, err := r.mapper.CommunityToDomain(&model)
		if err != nil {
			return nil, err
		}
		communities[i] = c
	}

	return communities, nil
}
