package entity

type RewardOption struct {
	SnowFlakeBase
	ProjectID   string  `gorm:"not null;index"`
	Project     Project `gorm:"foreignKey:ProjectID"`
	Price       int64   `gorm:"not null"`
	Description string  `gorm:"type:text"`
}
