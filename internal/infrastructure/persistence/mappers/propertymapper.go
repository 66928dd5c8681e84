package mappers

import (
	"github.com/nuffylu-cyber/property-management-system/internal/domain/property"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/models"
)

type PropertyMapper interface {
	PropertyToModel(p *property.Property) *models.PropertyModel
	PropertyToDomain(model *models.PropertyModel) (*property.Property, error)
	CommunityToModel(c *property.Community) *models.CommunityModel
	CommunityToDomain(model *models.CommunityModel) (*property.Community, error)
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) PropertyToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID:          p.ID(),
		CommunityID: p.CommunityID(),
		Building:    p.Building(),
		RoomNumber:  p.RoomNumber(),
	}
}

func (m *PropertyMapperImpl) PropertyToDomain(model *models.PropertyModel) (*property.Property, error) {
	return property.ReconstructProperty(model.ID, model.CommunityID, model.Building, model.RoomNumber)
}

func (m *PropertyMapperImpl) CommunityToModel(c *property.Community) *models.CommunityModel {
	return &models.CommunityModel{
		ID:      c.ID(),
		Name:    c.Name(),
		Address: c.Address(),
	}
}

func (m *PropertyMapperImpl) CommunityToDomain(model *models.CommunityModel) (*property.Community, error) {
	return property.ReconstructCommunity(model.ID, model.Name, model.Address)
}
