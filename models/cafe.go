package models

const (
	DefaultCafeImage       = "/static/images/default-cafe.jpg"
	DefaultCafeDescription = "enter description here"
)

type Cafe struct {
	BaseModel

	Name        string `gorm:"size:255;not null;index" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	URL         string `gorm:"column:url;size:512;not null" json:"url"`
	Address     string `gorm:"size:512;not null" json:"address"`
	CityCode    string `gorm:"size:32;not null;index" json:"city_code"`
	ImageURL    string `gorm:"size:512;not null" json:"image_url"`

	City *City `gorm:"foreignKey:CityCode;references:Code" json:"city,omitempty"`
}

func (Cafe) TableName() string {
	return "cafes"
}

// ApplyDefaults fills the optional fields before the row is first
// persisted. Defaulting happens here, at creation time, not in the
// storage layer.
func (c *Cafe) ApplyDefaults() {
	if c.Description == "" {
		c.Description = DefaultCafeDescription
	}
	if c.ImageURL == "" {
		c.ImageURL = DefaultCafeImage
	}
}
