package entity

import "database/sql"

// Funding is a submitted contribution. Exactly one of OptionID / a free price
// is meaningful: a reward-backed funding carries the option id, a free one
// carries only the price the backer typed in.
type Funding struct {
	SnowFlakeBase
	UserID    string  `gorm:"not null;index"`
	User      User    `gorm:"foreignKey:UserID"`
	ProjectID string  `gorm:"not null;index"`
	Project   Project `gorm:"foreignKey:ProjectID"`
	OptionID  sql.NullInt64
	CouponID  sql.NullInt64
	Price     int64 `gorm:"not null"`
}
