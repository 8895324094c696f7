package entity

type Ask struct {
	SnowFlakeBase
	ProjectID  string  `gorm:"not null;index"`
	Project    Project `gorm:"foreignKey:ProjectID"`
	AuthorID   string  `gorm:"not null"`
	AuthorUser User    `gorm:"foreignKey:AuthorID"`
	Content    string  `gorm:"type:text"`
}

// Answer is the at-most-one reply the project owner posts to an ask. The
// unique index backs up the pre-insert check in the domain.
type Answer struct {
	SnowFlakeBase
	AskID   int64  `gorm:"not null;uniqueIndex"`
	Ask     Ask    `gorm:"foreignKey:AskID"`
	Content string `gorm:"type:text"`
}
