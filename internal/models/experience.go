package models

import "github.com/lib/pq"

// Type tags that mark an Experience row as education. Everything else is a
// professional entry. The two public views share this one table.
const (
	TypeEducation = "Education"
	TypeFormation = "Formation"
)

// Experience is the unified experience/education record. For education rows
// Role holds the degree and Company holds the school.
type Experience struct {
	ID          uint           `gorm:"column:id;primaryKey" json:"id"`
	Role        string         `gorm:"column:role;type:text" json:"role"`
	Company     string         `gorm:"column:company;type:text" json:"company"`
	Location    string         `gorm:"column:location;type:text" json:"location"`
	Period      string         `gorm:"column:period;type:text" json:"period"`
	Type        string         `gorm:"column:type;type:text" json:"type"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Missions    pq.StringArray `gorm:"column:missions;type:text[]" json:"missions"`
}

func (Experience) TableName() string { return "experiences" }

// IsEducation reports whether the row belongs to the education view.
func (e Experience) IsEducation() bool {
	return e.Type == TypeEducation || e.Type == TypeFormation
}
