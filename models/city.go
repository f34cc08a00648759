package models

// City is immutable reference data: seeded at startup, never written by a
// request handler and never deleted.
type City struct {
	Code  string `gorm:"primaryKey;size:32" json:"code"`
	Name  string `gorm:"size:100;not null" json:"name"`
	State string `gorm:"type:varchar(2);not null" json:"state"`
}

func (City) TableName() string {
	return "cities"
}

// CityChoice is the (code, name) pair rendered into the city select box.
type CityChoice struct {
	Code string
	Name string
}
