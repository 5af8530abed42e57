package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the singleton identity record behind the public site. It is
// fetched on load and replaced wholesale on save, never deleted.
type Profile struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	Name      string `gorm:"column:name;type:text" json:"name"`
	Title     string `gorm:"column:title;type:text" json:"title"`
	Subtitle  string `gorm:"column:subtitle;type:text" json:"subtitle"`
	Email     string `gorm:"column:email;type:text" json:"email"`
	Location  string `gorm:"column:location;type:text" json:"location"`
	AboutText string `gorm:"column:about_text;type:text" json:"about_text"`
	HeroImage string `gorm:"column:hero_image;type:text" json:"hero_image"`
	CVURL     string `gorm:"column:cv_url;type:text" json:"cv_url"`

	// JSONB map of platform name -> URL (linkedin, github, ...)
	SocialLinks datatypes.JSONMap `gorm:"column:social_links;type:jsonb" json:"social_links"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
