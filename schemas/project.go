package schemas

// Project represents one project card displayed on the site. Image accepts
// a public path or a full URL; url and repo must be full URLs when present.
type Project struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description string   `bson:"description" json:"description" validate:"required"`
	Image       *string  `bson:"image" json:"image"`
	Tags        []string `bson:"tags" json:"tags"`
	URL         *string  `bson:"url" json:"url" validate:"omitempty,url"`
	Repo        *string  `bson:"repo" json:"repo" validate:"omitempty,url"`
}

// Validate reports field-level failures before the project is stored.
func (p *Project) Validate() error {
	return checkStruct(p)
}
