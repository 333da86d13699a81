// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/pkg/pointer"
	"github.com/taibuivan/sanaa/pkg/slice"
	"github.com/taibuivan/sanaa/pkg/uuid"
)

// MemoryStore keeps every collection in process memory.
//
// # Concurrency
//
// A single RWMutex guards all four collections. Each create* holds the write
// lock across identifier generation and insertion, so both appear atomic.
// Records are copied on the way in and out; callers never share storage.
type MemoryStore struct {
	mu sync.RWMutex

	categories     []*Category
	categoryIndex  map[string]int
	artisans       []*Artisan
	artisanIndex   map[string]int
	messages       map[string]*ContactMessage
	accounts       map[string]*Account
	accountsByName map[string]string

	newID func() string
	now   func() time.Time
}

// NewMemoryStore returns an empty store. Use [Seed] to load the reference dataset.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories:     make([]*Category, 0),
		categoryIndex:  make(map[string]int),
		artisans:       make([]*Artisan, 0),
		artisanIndex:   make(map[string]int),
		messages:       make(map[string]*ContactMessage),
		accounts:       make(map[string]*Account),
		accountsByName: make(map[string]string),
		newID:          uuid.New,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// # Categories

// ListCategories implements [CategoryRepository].
func (store *MemoryStore) ListCategories(_ context.Context) ([]*Category, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slice.Map(store.categories, cloneCategory), nil
}

// FindCategory implements [CategoryRepository].
func (store *MemoryStore) FindCategory(_ context.Context, id string) (*Category, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	index, ok := store.categoryIndex[id]
	if !ok {
		return nil, nil
	}
	return cloneCategory(store.categories[index]), nil
}

// CreateCategory implements [CategoryRepository].
func (store *MemoryStore) CreateCategory(_ context.Context, data NewCategory) (*Category, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	category := buildCategory(store.newID(), data)
	store.putCategory(category)
	return cloneCategory(category), nil
}

// # Artisans

// ListArtisans implements [ArtisanRepository].
func (store *MemoryStore) ListArtisans(_ context.Context, filter ArtisanFilter) ([]*Artisan, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slice.Map(filter.Apply(store.artisans), cloneArtisan), nil
}

// FindArtisan implements [ArtisanRepository].
func (store *MemoryStore) FindArtisan(_ context.Context, id string) (*Artisan, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	index, ok := store.artisanIndex[id]
	if !ok {
		return nil, nil
	}
	return cloneArtisan(store.artisans[index]), nil
}

// CreateArtisan implements [ArtisanRepository].
func (store *MemoryStore) CreateArtisan(_ context.Context, data NewArtisan) (*Artisan, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	artisan := buildArtisan(store.newID(), cloneNewArtisan(data))
	store.putArtisan(artisan)
	return cloneArtisan(artisan), nil
}

// # Contact Messages

// CreateContactMessage implements [ContactRepository].
func (store *MemoryStore) CreateContactMessage(_ context.Context, data NewContactMessage) (*ContactMessage, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	message := buildContactMessage(store.newID(), store.now(), data)
	message.ClientPhone = clonePtr(message.ClientPhone)
	store.messages[message.ID] = message

	copied := *message
	copied.ClientPhone = clonePtr(message.ClientPhone)
	return &copied, nil
}

// # Accounts

// FindAccount implements [AccountRepository].
func (store *MemoryStore) FindAccount(_ context.Context, id string) (*Account, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	account, ok := store.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

// FindAccountByUsername implements [AccountRepository].
func (store *MemoryStore) FindAccountByUsername(_ context.Context, username string) (*Account, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	id, ok := store.accountsByName[username]
	if !ok {
		return nil, nil
	}
	copied := *store.accounts[id]
	return &copied, nil
}

// CreateAccount implements [AccountRepository].
func (store *MemoryStore) CreateAccount(_ context.Context, data NewAccount) (*Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, taken := store.accountsByName[data.Username]; taken {
		return nil, apperr.Conflict("Username is already taken")
	}

	account := &Account{ID: store.newID(), Username: data.Username, Password: data.Password}
	store.accounts[account.ID] = account
	store.accountsByName[account.Username] = account.ID

	copied := *account
	return &copied, nil
}

// # Seeding

// Load implements [Seeder].
func (store *MemoryStore) Load(_ context.Context, categories []*Category, artisans []*Artisan) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if len(store.categories) > 0 || len(store.artisans) > 0 {
		return false, nil
	}

	for _, category := range categories {
		store.putCategory(cloneCategory(category))
	}
	for _, artisan := range artisans {
		store.putArtisan(cloneArtisan(artisan))
	}
	return true, nil
}

// # Internal Helpers

// putCategory inserts or replaces by id. Callers hold the write lock.
func (store *MemoryStore) putCategory(category *Category) {
	if index, ok := store.categoryIndex[category.ID]; ok {
		store.categories[index] = category
		return
	}
	store.categoryIndex[category.ID] = len(store.categories)
	store.categories = append(store.categories, category)
}

// putArtisan inserts or replaces by id. Callers hold the write lock.
func (store *MemoryStore) putArtisan(artisan *Artisan) {
	if index, ok := store.artisanIndex[artisan.ID]; ok {
		store.artisans[index] = artisan
		return
	}
	store.artisanIndex[artisan.ID] = len(store.artisans)
	store.artisans = append(store.artisans, artisan)
}

func cloneCategory(category *Category) *Category {
	copied := *category
	copied.DescriptionEn = clonePtr(category.DescriptionEn)
	copied.DescriptionFr = clonePtr(category.DescriptionFr)
	copied.DescriptionAr = clonePtr(category.DescriptionAr)
	return &copied
}

func cloneArtisan(artisan *Artisan) *Artisan {
	copied := *artisan
	copied.ServicesEn = nonNil(slices.Clone(artisan.ServicesEn))
	copied.ServicesFr = nonNil(slices.Clone(artisan.ServicesFr))
	copied.ServicesAr = nonNil(slices.Clone(artisan.ServicesAr))
	copied.PortfolioImages = nonNil(slices.Clone(artisan.PortfolioImages))
	copied.Email = clonePtr(artisan.Email)
	return &copied
}

func cloneNewArtisan(data NewArtisan) NewArtisan {
	data.ServicesEn = slices.Clone(data.ServicesEn)
	data.ServicesFr = slices.Clone(data.ServicesFr)
	data.ServicesAr = slices.Clone(data.ServicesAr)
	data.PortfolioImages = slices.Clone(data.PortfolioImages)
	data.Email = clonePtr(data.Email)
	return data
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	return pointer.To(*value)
}
