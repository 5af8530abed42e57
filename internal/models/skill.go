package models

// Skill icons are a fixed enumeration shared with the admin editor.
const (
	IconCode     = "code"
	IconGlobe    = "globe"
	IconDatabase = "database"
	IconServer   = "server"
)

type Skill struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:text" json:"name"`
	Category string `gorm:"column:category;type:text" json:"category"`
	Icon     string `gorm:"column:icon;type:text" json:"icon"`
	Level    int    `gorm:"column:level" json:"level"`
	Order    int    `gorm:"column:sort_order" json:"order"`
}

func (Skill) TableName() string { return "skills" }
