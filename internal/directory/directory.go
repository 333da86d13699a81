// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory defines the artisan directory's entities and the Directory
Store that owns them.

The store holds four collections: categories, artisans, contact messages and
accounts. Categories and artisans are seeded once and then only read; contact
messages and accounts are only ever created and looked up.

Core Responsibility:

  - Entities: trilingual (en/fr/ar) records with camelCase wire names.
  - Querying: [ArtisanFilter] composes category, search and rating predicates.
  - Storage: [Repository] has an in-memory and a PostgreSQL implementation
    with identical observable behaviour.

Referential integrity is intentionally not enforced: an artisan may name a
category that does not exist, and a contact message may name any artisan.
*/
package directory

import (
	"time"

	"github.com/taibuivan/sanaa/internal/platform/locale"
)

// # Core Entities

// Category is a named grouping of artisans.
type Category struct {
	ID            string  `json:"id"`
	NameEn        string  `json:"nameEn"`
	NameFr        string  `json:"nameFr"`
	NameAr        string  `json:"nameAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionFr *string `json:"descriptionFr"`
	DescriptionAr *string `json:"descriptionAr"`
	Icon          string  `json:"icon"` // Presentation hint, e.g. "cooking"
}

// Name returns the three translations of the category name.
func (c *Category) Name() locale.Text {
	return locale.Text{En: c.NameEn, Fr: c.NameFr, Ar: c.NameAr}
}

// Artisan is a service provider with a multilingual profile.
//
// Rating and ReviewCount are editorial values set by the seed data; no
// operation updates them. The three Services lists are positionally aligned.
type Artisan struct {
	ID              string   `json:"id"`
	NameEn          string   `json:"nameEn"`
	NameFr          string   `json:"nameFr"`
	NameAr          string   `json:"nameAr"`
	CategoryID      string   `json:"categoryId"`
	BioEn           string   `json:"bioEn"`
	BioFr           string   `json:"bioFr"`
	BioAr           string   `json:"bioAr"`
	ServicesEn      []string `json:"servicesEn"`
	ServicesFr      []string `json:"servicesFr"`
	ServicesAr      []string `json:"servicesAr"`
	Location        string   `json:"location"`
	Phone           string   `json:"phone"`
	Email           *string  `json:"email"`
	PriceRange      string   `json:"priceRange"` // "$", "$$" or "$$$"
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	ProfileImage    string   `json:"profileImage"`
	PortfolioImages []string `json:"portfolioImages"`
	Featured        int      `json:"featured"` // 1 = featured, 0 = not
}

// Name returns the three translations of the artisan's display name.
func (a *Artisan) Name() locale.Text {
	return locale.Text{En: a.NameEn, Fr: a.NameFr, Ar: a.NameAr}
}

// Bio returns the three translations of the artisan's biography.
func (a *Artisan) Bio() locale.Text {
	return locale.Text{En: a.BioEn, Fr: a.BioFr, Ar: a.BioAr}
}

// IsFeatured reports whether the presentation layer should highlight the artisan.
func (a *Artisan) IsFeatured() bool {
	return a.Featured == FeaturedYes
}

// ContactMessage is an inquiry sent to an artisan through the directory.
type ContactMessage struct {
	ID          string    `json:"id"`
	ArtisanID   string    `json:"artisanId"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone *string   `json:"clientPhone"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"` // Server-assigned
}

// Account is a user credential record. It is never rendered by any route.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// # Insert Payloads

// NewCategory carries the caller-supplied fields of a category.
type NewCategory struct {
	NameEn        string
	NameFr        string
	NameAr        string
	DescriptionEn *string
	DescriptionFr *string
	DescriptionAr *string
	Icon          string
}

// NewArtisan carries the caller-supplied fields of an artisan.
//
// Rating, review count and featured flag are absent on purpose: creation
// always starts them at zero.
type NewArtisan struct {
	NameEn          string
	NameFr          string
	NameAr          string
	CategoryID      string
	BioEn           string
	BioFr           string
	BioAr           string
	ServicesEn      []string
	ServicesFr      []string
	ServicesAr      []string
	Location        string
	Phone           string
	Email           *string
	PriceRange      string
	ProfileImage    string
	PortfolioImages []string
}

// NewContactMessage carries the validated fields of an inquiry.
type NewContactMessage struct {
	ArtisanID   string
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Message     string
}

// NewAccount carries the fields of an account record. Password is stored as given.
type NewAccount struct {
	Username string
	Password string
}

// # Constants

const (
	// FeaturedYes and FeaturedNo are the two values of [Artisan.Featured].
	FeaturedYes = 1
	FeaturedNo  = 0
)

// # Builders

// buildArtisan turns a payload into a record with the creation defaults applied.
func buildArtisan(id string, data NewArtisan) *Artisan {
	return &Artisan{
		ID:              id,
		NameEn:          data.NameEn,
		NameFr:          data.NameFr,
		NameAr:          data.NameAr,
		CategoryID:      data.CategoryID,
		BioEn:           data.BioEn,
		BioFr:           data.BioFr,
		BioAr:           data.BioAr,
		ServicesEn:      nonNil(data.ServicesEn),
		ServicesFr:      nonNil(data.ServicesFr),
		ServicesAr:      nonNil(data.ServicesAr),
		Location:        data.Location,
		Phone:           data.Phone,
		Email:           data.Email,
		PriceRange:      data.PriceRange,
		Rating:          0,
		ReviewCount:     0,
		ProfileImage:    data.ProfileImage,
		PortfolioImages: nonNil(data.PortfolioImages),
		Featured:        FeaturedNo,
	}
}

func buildCategory(id string, data NewCategory) *Category {
	return &Category{
		ID:            id,
		NameEn:        data.NameEn,
		NameFr:        data.NameFr,
		NameAr:        data.NameAr,
		DescriptionEn: data.DescriptionEn,
		DescriptionFr: data.DescriptionFr,
		DescriptionAr: data.DescriptionAr,
		Icon:          data.Icon,
	}
}

func buildContactMessage(id string, createdAt time.Time, data NewContactMessage) *ContactMessage {
	return &ContactMessage{
		ID:          id,
		ArtisanID:   data.ArtisanID,
		ClientName:  data.ClientName,
		ClientEmail: data.ClientEmail,
		ClientPhone: data.ClientPhone,
		Message:     data.Message,
		CreatedAt:   createdAt,
	}
}

// nonNil keeps list fields serialising as [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
