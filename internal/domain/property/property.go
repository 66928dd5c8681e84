package property

import "fmt"

// Property is a single unit inside a community. The maintenance lifecycle
// resolves a ticket's community through the unit at creation time.
type Property struct {
	id          uint
	communityID uint
	building    string
	roomNumber  string
}

func NewProperty(communityID uint, building, roomNumber string) (*Property, error) {
	if communityID == 0 {
		return nil, fmt.Errorf("community ID is required")
	}
	if len(roomNumber) == 0 {
		return nil, fmt.Errorf("room number is required")
	}

	return &Property{
		communityID: communityID,
		building:    building,
		roomNumber:  roomNumber,
	}, nil
}

func ReconstructProperty(id, communityID uint, building, roomNumber string) (*Property, error) {
	if id == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	if communityID == 0 {
		return nil, fmt.Errorf("community ID is required")
	}

	return &Property{
		id:          id,
		communityID: communityID,
		building:    building,
		roomNumber:  roomNumber,
	}, nil
}

func (p *Property) ID() uint          { return p.id }
func (p *Property) CommunityID() uint { return p.communityID }
func (p *Property) Building() string  { return p.building }
func (p *Property) RoomNumber() string { return p.roomNumber }

// UnitLabel is the human identifier used in list search, e.g. "3-1502".
func (p *Property) UnitLabel() string {
	if p.building == "" {
		return p.roomNumber
	}
	return fmt.Sprintf("%s-%s", p.building, p.roomNumber)
}

func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}
