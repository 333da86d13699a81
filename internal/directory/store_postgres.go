// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/sanaa/internal/platform/database/schema"
	"github.com/taibuivan/sanaa/internal/platform/dberr"
	"github.com/taibuivan/sanaa/pkg/uuid"
)

// PostgresStore implements [Repository] and [Seeder] on PostgreSQL.
//
// Listings are ordered by the BIGSERIAL position column, which reproduces
// insertion order exactly like [MemoryStore].
type PostgresStore struct {
	db    *pgxpool.Pool
	newID func() string
}

// NewPostgresStore returns a store backed by the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db, newID: uuid.New}
}

// # Categories

// ListCategories implements [CategoryRepository].
func (store *PostgresStore) ListCategories(ctx context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.DirectoryCategory.Columns(), ", "),
		schema.DirectoryCategory.Table, schema.DirectoryCategory.Position,
	)

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	return categories, nil
}

// FindCategory implements [CategoryRepository].
func (store *PostgresStore) FindCategory(ctx context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.DirectoryCategory.Columns(), ", "),
		schema.DirectoryCategory.Table, schema.DirectoryCategory.ID,
	)

	category, err := scanCategory(store.db.QueryRow(ctx, query, id))
	if dberr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_category")
	}
	return category, nil
}

// CreateCategory implements [CategoryRepository].
func (store *PostgresStore) CreateCategory(ctx context.Context, data NewCategory) (*Category, error) {
	category := buildCategory(store.newID(), data)

	if _, err := store.db.Exec(ctx, insertCategorySQL(), categoryArgs(category)...); err != nil {
		return nil, dberr.Wrap(err, "create_category")
	}
	return category, nil
}

// # Artisans

// ListArtisans implements [ArtisanRepository].
func (store *PostgresStore) ListArtisans(ctx context.Context, filter ArtisanFilter) ([]*Artisan, error) {
	where, args := artisanWhere(filter)

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s ASC`,
		strings.Join(schema.DirectoryArtisan.Columns(), ", "),
		schema.DirectoryArtisan.Table, where, schema.DirectoryArtisan.Position,
	)

	rows, err := store.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artisans")
	}
	defer rows.Close()

	artisans := make([]*Artisan, 0)
	for rows.Next() {
		artisan, err := scanArtisan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artisan")
		}
		artisans = append(artisans, artisan)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_artisans")
	}
	return artisans, nil
}

// FindArtisan implements [ArtisanRepository].
func (store *PostgresStore) FindArtisan(ctx context.Context, id string) (*Artisan, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.DirectoryArtisan.Columns(), ", "),
		schema.DirectoryArtisan.Table, schema.DirectoryArtisan.ID,
	)

	artisan, err := scanArtisan(store.db.QueryRow(ctx, query, id))
	if dberr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_artisan")
	}
	return artisan, nil
}

// CreateArtisan implements [ArtisanRepository].
func (store *PostgresStore) CreateArtisan(ctx context.Context, data NewArtisan) (*Artisan, error) {
	artisan := buildArtisan(store.newID(), data)

	if _, err := store.db.Exec(ctx, insertArtisanSQL(), artisanArgs(artisan)...); err != nil {
		return nil, dberr.Wrap(err, "create_artisan")
	}
	return artisan, nil
}

// # Contact Messages

// CreateContactMessage implements [ContactRepository].
//
// The creation timestamp comes from the database clock.
func (store *PostgresStore) CreateContactMessage(ctx context.Context, data NewContactMessage) (*ContactMessage, error) {
	table := schema.DirectoryContactMessage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		table.Table,
		table.ID, table.ArtisanID, table.ClientName, table.ClientEmail, table.ClientPhone, table.Message,
		table.CreatedAt,
	)

	message := buildContactMessage(store.newID(), time.Time{}, data)
	err := store.db.QueryRow(ctx, query,
		message.ID, message.ArtisanID, message.ClientName, message.ClientEmail, message.ClientPhone, message.Message,
	).Scan(&message.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_contact_message")
	}

	message.CreatedAt = message.CreatedAt.UTC()
	return message, nil
}

// # Accounts

// FindAccount implements [AccountRepository].
func (store *PostgresStore) FindAccount(ctx context.Context, id string) (*Account, error) {
	return store.findAccountBy(ctx, schema.UserAccount.ID, id)
}

// FindAccountByUsername implements [AccountRepository].
func (store *PostgresStore) FindAccountByUsername(ctx context.Context, username string) (*Account, error) {
	return store.findAccountBy(ctx, schema.UserAccount.Username, username)
}

// CreateAccount implements [AccountRepository]. The unique index on username
// surfaces duplicates as an apperr CONFLICT through [dberr.Wrap].
func (store *PostgresStore) CreateAccount(ctx context.Context, data NewAccount) (*Account, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Password,
	)

	account := &Account{ID: store.newID(), Username: data.Username, Password: data.Password}
	if _, err := store.db.Exec(ctx, query, account.ID, account.Username, account.Password); err != nil {
		return nil, dberr.Wrap(err, "create_account")
	}
	return account, nil
}

func (store *PostgresStore) findAccountBy(ctx context.Context, column string, value string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.UserAccount.Columns(), ", "), schema.UserAccount.Table, column,
	)

	account := &Account{}
	err := store.db.QueryRow(ctx, query, value).Scan(&account.ID, &account.Username, &account.Password)
	if dberr.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_account")
	}
	return account, nil
}

// # Seeding

// Load implements [Seeder].
//
// The emptiness check and the inserts share one transaction holding an
// exclusive lock on both tables, so concurrent starters seed at most once.
func (store *PostgresStore) Load(ctx context.Context, categories []*Category, artisans []*Artisan) (bool, error) {
	tx, err := store.db.Begin(ctx)
	if err != nil {
		return false, dberr.Wrap(err, "seed_begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	lock := fmt.Sprintf(`LOCK TABLE %s, %s IN EXCLUSIVE MODE`,
		schema.DirectoryCategory.Table, schema.DirectoryArtisan.Table)
	if _, err := tx.Exec(ctx, lock); err != nil {
		return false, dberr.Wrap(err, "seed_lock")
	}

	var populated bool
	check := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s) OR EXISTS (SELECT 1 FROM %s)`,
		schema.DirectoryCategory.Table, schema.DirectoryArtisan.Table)
	if err := tx.QueryRow(ctx, check).Scan(&populated); err != nil {
		return false, dberr.Wrap(err, "seed_check")
	}
	if populated {
		return false, nil
	}

	batch := &pgx.Batch{}
	for _, category := range categories {
		batch.Queue(insertCategorySQL(), categoryArgs(category)...)
	}
	for _, artisan := range artisans {
		batch.Queue(insertArtisanSQL(), artisanArgs(artisan)...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, dberr.Wrap(err, "seed_insert")
	}

	if err := tx.Commit(ctx); err != nil {
		return false, dberr.Wrap(err, "seed_commit")
	}
	return true, nil
}

// # Query Builders

// artisanWhere renders the active predicates of filter as a WHERE clause.
//
// Latin fields use strpos over lower() on both sides; Arabic fields use a
// plain strpos, which matches the case-sensitive in-memory semantics.
// strpos is used instead of LIKE so that '%' and '_' in a term stay literal.
func artisanWhere(filter ArtisanFilter) (string, []any) {
	table := schema.DirectoryArtisan
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.HasCategory() {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.CategoryID, len(args)))
	}

	if filter.HasSearch() {
		args = append(args, *filter.Search)
		placeholder := len(args)

		matches := make([]string, 0, 7)
		for _, column := range table.LatinSearchColumns() {
			matches = append(matches, fmt.Sprintf("strpos(lower(%s), lower($%d)) > 0", column, placeholder))
		}
		for _, column := range table.ArabicSearchColumns() {
			matches = append(matches, fmt.Sprintf("strpos(%s, $%d) > 0", column, placeholder))
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	if filter.HasMinRating() {
		args = append(args, *filter.MinRating)
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", table.Rating, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func insertCategorySQL() string {
	columns := schema.DirectoryCategory.Columns()
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.DirectoryCategory.Table, strings.Join(columns, ", "), placeholders(len(columns)))
}

func insertArtisanSQL() string {
	columns := schema.DirectoryArtisan.Columns()
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.DirectoryArtisan.Table, strings.Join(columns, ", "), placeholders(len(columns)))
}

// placeholders returns "$1, $2, ..., $n".
func placeholders(count int) string {
	parts := make([]string, count)
	for index := range parts {
		parts[index] = fmt.Sprintf("$%d", index+1)
	}
	return strings.Join(parts, ", ")
}

// # Row Mapping

// categoryArgs follows the order of DirectoryCategory.Columns().
func categoryArgs(category *Category) []any {
	return []any{
		category.ID, category.NameEn, category.NameFr, category.NameAr,
		category.DescriptionEn, category.DescriptionFr, category.DescriptionAr, category.Icon,
	}
}

// artisanArgs follows the order of DirectoryArtisan.Columns().
func artisanArgs(artisan *Artisan) []any {
	return []any{
		artisan.ID, artisan.NameEn, artisan.NameFr, artisan.NameAr, artisan.CategoryID,
		artisan.BioEn, artisan.BioFr, artisan.BioAr,
		nonNil(artisan.ServicesEn), nonNil(artisan.ServicesFr), nonNil(artisan.ServicesAr),
		artisan.Location, artisan.Phone, artisan.Email, artisan.PriceRange,
		artisan.Rating, artisan.ReviewCount, artisan.ProfileImage, nonNil(artisan.PortfolioImages), artisan.Featured,
	}
}

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID, &category.NameEn, &category.NameFr, &category.NameAr,
		&category.DescriptionEn, &category.DescriptionFr, &category.DescriptionAr, &category.Icon,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func scanArtisan(row pgx.Row) (*Artisan, error) {
	artisan := &Artisan{}
	err := row.Scan(
		&artisan.ID, &artisan.NameEn, &artisan.NameFr, &artisan.NameAr, &artisan.CategoryID,
		&artisan.BioEn, &artisan.BioFr, &artisan.BioAr,
		&artisan.ServicesEn, &artisan.ServicesFr, &artisan.ServicesAr,
		&artisan.Location, &artisan.Phone, &artisan.Email, &artisan.PriceRange,
		&artisan.Rating, &artisan.ReviewCount, &artisan.ProfileImage, &artisan.PortfolioImages, &artisan.Featured,
	)
	if err != nil {
		return nil, err
	}

	artisan.ServicesEn = nonNil(artisan.ServicesEn)
	artisan.ServicesFr = nonNil(artisan.ServicesFr)
	artisan.ServicesAr = nonNil(artisan.ServicesAr)
	artisan.PortfolioImages = nonNil(artisan.PortfolioImages)
	return artisan, nil
}
