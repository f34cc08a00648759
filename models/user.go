package models

const (
	DefaultUserImage       = "/static/images/default-pic.png"
	DefaultUserDescription = "enter description here"
)

type User struct {
	BaseModel

	Username       string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email          string `gorm:"size:255;not null" json:"email"`
	FirstName      string `gorm:"size:100;not null" json:"first_name"`
	LastName       string `gorm:"size:100;not null" json:"last_name"`
	Description    string `gorm:"type:text" json:"description"`
	ImageURL       string `gorm:"size:512" json:"image_url"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
	Admin          bool   `gorm:"default:false;not null" json:"admin"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ApplyDefaults fills the optional profile fields at registration time.
func (u *User) ApplyDefaults() {
	if u.Description == "" {
		u.Description = DefaultUserDescription
	}
	if u.ImageURL == "" {
		u.ImageURL = DefaultUserImage
	}
}
