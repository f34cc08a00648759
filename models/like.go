package models

// Like records "user likes cafe". The composite primary key forbids
// duplicate pairs; both foreign keys cascade so a removed user or cafe
// takes its likes with it.
type Like struct {
	UserID uint `gorm:"column:user_liking;primaryKey" json:"user_id"`
	CafeID uint `gorm:"column:cafe_liked;primaryKey" json:"cafe_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Cafe *Cafe `gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE" json:"cafe,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
