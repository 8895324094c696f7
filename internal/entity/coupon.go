package entity

// Coupon is issued by an external collaborator. Only the discount amount
// matters to this service; it is recorded on the funding but not applied to
// the paid price yet.
type Coupon struct {
	SnowFlakeBase
	UserID   string `gorm:"not null;index"`
	User     User   `gorm:"foreignKey:UserID"`
	Discount int64  `gorm:"not null"`
}
