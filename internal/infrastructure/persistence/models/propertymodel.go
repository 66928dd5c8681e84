package models

type PropertyModel struct {
	ID          uint   `gorm:"primaryKey"`
	CommunityID uint   `gorm:"not null;index"`
	Building    string `gorm:"size:50"`
	RoomNumber  string `gorm:"size:50;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

type CommunityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Address   string `gorm:"size:200"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommunityModel) TableName() string {
	return "communities"
}
