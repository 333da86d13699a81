// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import "context"

// # Directory Store Contract

// Repository is the Directory Store: the single owner of all four collections.
//
// # Absence
//
// Lookups return (nil, nil) when nothing matches. Absence is a normal
// outcome; the error return is reserved for genuine storage faults.
type Repository interface {
	CategoryRepository
	ArtisanRepository
	ContactRepository
	AccountRepository
}

// CategoryRepository covers the category collection.
type CategoryRepository interface {
	// ListCategories returns every category in insertion order.
	ListCategories(ctx context.Context) ([]*Category, error)

	// FindCategory returns the category with the given id, or nil.
	FindCategory(ctx context.Context, id string) (*Category, error)

	// CreateCategory assigns a new identifier and stores the category.
	CreateCategory(ctx context.Context, data NewCategory) (*Category, error)
}

// ArtisanRepository covers the artisan collection.
type ArtisanRepository interface {
	/*
		ListArtisans returns the artisans matching filter in insertion order.

		Parameters:
		  - ctx: context.Context
		  - filter: ArtisanFilter (zero value returns everything)

		Returns:
		  - []*Artisan: never nil
		  - error: storage faults only
	*/
	ListArtisans(ctx context.Context, filter ArtisanFilter) ([]*Artisan, error)

	// FindArtisan returns the artisan with the given id, or nil.
	FindArtisan(ctx context.Context, id string) (*Artisan, error)

	// CreateArtisan assigns a new identifier and stores the artisan with
	// rating 0, review count 0 and featured 0, whatever the caller intended.
	CreateArtisan(ctx context.Context, data NewArtisan) (*Artisan, error)
}

// ContactRepository covers the write-only contact message collection.
type ContactRepository interface {
	// CreateContactMessage assigns an identifier and a server-side creation
	// timestamp, then stores the message. The artisan id is not checked.
	CreateContactMessage(ctx context.Context, data NewContactMessage) (*ContactMessage, error)
}

// AccountRepository covers account records.
type AccountRepository interface {
	// FindAccount returns the account with the given id, or nil.
	FindAccount(ctx context.Context, id string) (*Account, error)

	// FindAccountByUsername returns the account with the given username, or nil.
	FindAccountByUsername(ctx context.Context, username string) (*Account, error)

	// CreateAccount assigns an identifier and stores the account.
	// A duplicate username is reported as an apperr CONFLICT.
	CreateAccount(ctx context.Context, data NewAccount) (*Account, error)
}

// # Seeding

// Seeder loads reference data verbatim, bypassing the creation defaults so
// that seeded ratings and featured flags survive.
type Seeder interface {
	// Load inserts the records only when the store holds no categories and no
	// artisans. It reports whether anything was inserted.
	Load(ctx context.Context, categories []*Category, artisans []*Artisan) (bool, error)
}
