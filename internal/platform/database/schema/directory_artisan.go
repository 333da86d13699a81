package schema

// DirectoryArtisanTable represents the 'directory.artisan' table
type DirectoryArtisanTable struct {
	Table           string
	Position        string
	ID              string
	NameEn          string
	NameFr          string
	NameAr          string
	CategoryID      string
	BioEn           string
	BioFr           string
	BioAr           string
	ServicesEn      string
	ServicesFr      string
	ServicesAr      string
	Location        string
	Phone           string
	Email           string
	PriceRange      string
	Rating          string
	ReviewCount     string
	ProfileImage    string
	PortfolioImages string
	Featured        string
}

// DirectoryArtisan is the schema definition for directory.artisan
var DirectoryArtisan = DirectoryArtisanTable{
	Table:           "directory.artisan",
	Position:        "position",
	ID:              "id",
	NameEn:          "name_en",
	NameFr:          "name_fr",
	NameAr:          "name_ar",
	CategoryID:      "category_id",
	BioEn:           "bio_en",
	BioFr:           "bio_fr",
	BioAr:           "bio_ar",
	ServicesEn:      "services_en",
	ServicesFr:      "services_fr",
	ServicesAr:      "services_ar",
	Location:        "location",
	Phone:           "phone",
	Email:           "email",
	PriceRange:      "price_range",
	Rating:          "rating",
	ReviewCount:     "review_count",
	ProfileImage:    "profile_image",
	PortfolioImages: "portfolio_images",
	Featured:        "featured",
}

// Columns returns the selectable columns in scan order. Position is internal.
func (t DirectoryArtisanTable) Columns() []string {
	return []string{
		t.ID, t.NameEn, t.NameFr, t.NameAr, t.CategoryID,
		t.BioEn, t.BioFr, t.BioAr,
		t.ServicesEn, t.ServicesFr, t.ServicesAr,
		t.Location, t.Phone, t.Email, t.PriceRange,
		t.Rating, t.ReviewCount, t.ProfileImage, t.PortfolioImages, t.Featured,
	}
}

// LatinSearchColumns are matched case-insensitively by artisan search.
func (t DirectoryArtisanTable) LatinSearchColumns() []string {
	return []string{t.NameEn, t.NameFr, t.Location, t.BioEn, t.BioFr}
}

// ArabicSearchColumns are matched verbatim by artisan search.
func (t DirectoryArtisanTable) ArabicSearchColumns() []string {
	return []string{t.NameAr, t.BioAr}
}
