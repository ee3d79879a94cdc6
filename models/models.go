package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category is the closed set of product display categories.
type Category string

const (
	CategoryFabric Category = "kumaş"
	CategoryOther  Category = "diğer"
)

func (c Category) Valid() bool {
	return c == CategoryFabric || c == CategoryOther
}

// Product is a catalog row. Optional fields are pointers so a missing
// value serializes as an explicit null instead of being dropped.
type Product struct {
	ID          string                      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Description *string                     `json:"description"`
	ImageURL    *string                     `json:"image_url"`
	Category    Category                    `gorm:"size:32;not null" json:"category"`
	AmazonLink  *string                     `json:"amazon_link"`
	Features    datatypes.JSONSlice[string] `json:"features"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Setting holds the site-wide contact, announcement and SEO fields.
// The table is meant to hold exactly one row; the settings service
// enforces that with check-then-write, not a database constraint.
type Setting struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	UpdatedAt          time.Time `json:"updated_at"`
	Phone              string    `json:"phone"`
	Whatsapp           string    `json:"whatsapp"`
	Email              string    `json:"email"`
	Address            string    `json:"address"`
	Instagram          string    `json:"instagram"`
	Linkedin           string    `json:"linkedin"`
	AnnouncementText   string    `json:"announcement_text"`
	AnnouncementActive bool      `json:"announcement_active"`
	SiteTitle          string    `json:"site_title"`
	SiteDescription    string    `json:"site_description"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
