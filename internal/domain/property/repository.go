package property

import "context"

type PropertyRepository interface {
	Save(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, propertyID uint) (*Property, error)
	ListByCommunity(ctx context.Context, communityID uint) ([]*Property, error)
}

type CommunityRepository interface {
	Save(ctx context.Context, c *Community) error
	GetByID(ctx context.Context, communityID uint) (*Community, error)
	List(ctx context.Context) ([]*Community, error)
}
