package models

import "time"

// Review is a visitor testimonial. IsPublished gates visibility on the public
// site and is flipped through a dedicated publish endpoint; IsActive is a soft
// switch the admin can use without deleting the row.
type Review struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Author      string    `gorm:"column:author;type:text" json:"author"`
	GuestEmail  string    `gorm:"column:guest_email;type:text" json:"guest_email,omitempty"`
	Role        string    `gorm:"column:role;type:text" json:"role,omitempty"`
	Content     string    `gorm:"column:content;type:text" json:"content"`
	Rating      int       `gorm:"column:rating" json:"rating"`
	IsActive    bool      `gorm:"column:is_active" json:"is_active"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
