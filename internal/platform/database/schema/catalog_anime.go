package schema

// CatalogAnimeTable represents the 'catalog.anime' table
type CatalogAnimeTable struct {
	Table     string
	ID        string
	Title     string
	Summary   string
	Director  string
	IsDeleted string
	CreatedAt string
	UpdatedAt string
}

// CatalogAnime is the schema definition for catalog.anime
var CatalogAnime = CatalogAnimeTable{
	Table:     "catalog.anime",
	ID:        "id",
	Title:     "title",
	Summary:   "summary",
	Director:  "director",
	IsDeleted: "isdeleted",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CatalogAnimeTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Summary, t.Director, t.IsDeleted, t.CreatedAt, t.UpdatedAt,
	}
}
