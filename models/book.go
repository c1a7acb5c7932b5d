package models

import "time"

// Categories the catalog accepts; mirrors the store's shelf layout.
var Categories = []string{
	"Motivational",
	"Telugu",
	"English",
	"UPSC",
	"Groups",
	"Competitive",
	"GATE",
	"Fiction",
	"Science Fiction",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Book struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Author      string    `bson:"author" json:"author"`
	Price       float64   `bson:"price" json:"price"`
	Image       string    `bson:"image" json:"image"`
	CoverKey    string    `bson:"coverKey,omitempty" json:"-"` // object key in S3 when a cover was uploaded
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Stock       int       `bson:"stock" json:"stock"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BookPatch carries a partial update; nil fields are left untouched.
type BookPatch struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

// Apply merges the patch into b.
func (p *BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Stock != nil {
		b.Stock = *p.Stock
	}
}
