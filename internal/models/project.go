package models

import "github.com/lib/pq"

type Project struct {
	ID           uint           `gorm:"column:id;primaryKey" json:"id"`
	Title        string         `gorm:"column:title;type:text" json:"title"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	ImageURL     string         `gorm:"column:image_url;type:text" json:"image_url"`
	ProjectURL   string         `gorm:"column:project_url;type:text" json:"project_url"`
	Technologies pq.StringArray `gorm:"column:technologies;type:text[]" json:"technologies"`
	Order        int            `gorm:"column:sort_order" json:"order"`
}

func (Project) TableName() string { return "projects" }
