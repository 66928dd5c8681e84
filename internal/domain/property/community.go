package property

import "fmt"

// Community is a residential compound grouping property units.
type Community struct {
	id      uint
	name    string
	address string
}

func NewCommunity(name, address string) (*Community, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("community name is required")
	}

	return &Community{
		name:    name,
		address: address,
	}, nil
}

func ReconstructCommunity(id uint, name, address string) (*Community, error) {
	if id == 0 {
		return nil, fmt.Errorf("community ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("community name is required")
	}

	return &Community{
		id:      id,
		name:    name,
		address: address,
	}, nil
}

func (c *Community) ID() uint        { return c.id }
func (c *Community) Name() string    { return c.name }
func (c *Community) Address() string { return c.address }

func (c *Community) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("community ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("community ID cannot be zero")
	}
	c.id = id
	return nil
}
