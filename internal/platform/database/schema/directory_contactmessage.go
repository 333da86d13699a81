package schema

// DirectoryContactMessageTable represents the 'directory.contact_message' table
type DirectoryContactMessageTable struct {
	Table       string
	ID          string
	ArtisanID   string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Message     string
	CreatedAt   string
}

// DirectoryContactMessage is the schema definition for directory.contact_message
var DirectoryContactMessage = DirectoryContactMessageTable{
	Table:       "directory.contact_message",
	ID:          "id",
	ArtisanID:   "artisan_id",
	ClientName:  "client_name",
	ClientEmail: "client_email",
	ClientPhone: "client_phone",
	Message:     "message",
	CreatedAt:   "created_at",
}

// Columns returns all standard column names
func (t DirectoryContactMessageTable) Columns() []string {
	return []string{t.ID, t.ArtisanID, t.ClientName, t.ClientEmail, t.ClientPhone, t.Message, t.CreatedAt}
}
