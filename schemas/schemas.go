// Package schemas defines the documents stored for the portfolio site and
// the validation rules applied before anything is written.
//
// Each model maps to one MongoDB collection. The collection names are fixed
// so existing data stays readable across deployments.
package schemas

// Collection names used by the document store.
const (
	CollectionProfiles = "portfolioprofile"
	CollectionProjects = "portfolioproject"
	CollectionContacts = "contactmessage"
)

// CollectionSchema describes one collection for the schema endpoint, which
// the internal database viewer reads to render editing forms.
type CollectionSchema struct {
	Collection  string        `json:"collection"`
	Model       string        `json:"model"`
	Description string        `json:"description"`
	Fields      []FieldSchema `json:"fields"`
}

// FieldSchema describes a single document field.
type FieldSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Catalog returns the schema descriptors for every collection the API
// serves.
func Catalog() []CollectionSchema {
	return []CollectionSchema{
		{
			Collection:  CollectionProfiles,
			Model:       "Profile",
			Description: "Portfolio profile information",
			Fields: []FieldSchema{
				{Name: "name", Type: "string", Required: true, Description: "Full name"},
				{Name: "role", Type: "string", Required: true, Description: "Primary title/role"},
				{Name: "bio", Type: "string", Required: true, Description: "Short biography for the about section"},
				{Name: "location", Type: "string", Description: "City, Country"},
				{Name: "avatar", Type: "string", Description: "URL to avatar/profile image"},
				{Name: "socials", Type: "map[string]string", Description: "Map of social platform -> URL"},
				{Name: "skills", Type: "string[]", Description: "Key skills/tags"},
			},
		},
		{
			Collection:  CollectionProjects,
			Model:       "Project",
			Description: "Project cards displayed on the site",
			Fields: []FieldSchema{
				{Name: "title", Type: "string", Required: true, Description: "Project title"},
				{Name: "description", Type: "string", Required: true, Description: "Short description"},
				{Name: "image", Type: "string", Description: "Public image path or URL"},
				{Name: "tags", Type: "string[]", Description: "Tech tags"},
				{Name: "url", Type: "string", Description: "Live site URL"},
				{Name: "repo", Type: "string", Description: "Repository URL"},
			},
		},
		{
			Collection:  CollectionContacts,
			Model:       "ContactMessage",
			Description: "Messages submitted from the contact form",
			Fields: []FieldSchema{
				{Name: "name", Type: "string", Required: true, Description: "Sender name"},
				{Name: "email", Type: "string", Required: true, Description: "Sender email"},
				{Name: "message", Type: "string", Required: true, Description: "Message body (3-5000 characters)"},
			},
		},
	}
}
