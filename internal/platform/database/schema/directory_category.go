package schema

// DirectoryCategoryTable represents the 'directory.category' table
type DirectoryCategoryTable struct {
	Table         string
	Position      string
	ID            string
	NameEn        string
	NameFr        string
	NameAr        string
	DescriptionEn string
	DescriptionFr string
	DescriptionAr string
	Icon          string
}

// DirectoryCategory is the schema definition for directory.category
var DirectoryCategory = DirectoryCategoryTable{
	Table:         "directory.category",
	Position:      "position",
	ID:            "id",
	NameEn:        "name_en",
	NameFr:        "name_fr",
	NameAr:        "name_ar",
	DescriptionEn: "description_en",
	DescriptionFr: "description_fr",
	DescriptionAr: "description_ar",
	Icon:          "icon",
}

// Columns returns the selectable columns in scan order. Position is internal.
func (t DirectoryCategoryTable) Columns() []string {
	return []string{
		t.ID, t.NameEn, t.NameFr, t.NameAr,
		t.DescriptionEn, t.DescriptionFr, t.DescriptionAr, t.Icon,
	}
}
