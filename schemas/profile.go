package schemas

// Profile represents the owner's "about me" information shown on the site.
// Optional fields serialize as explicit nulls so the frontend can render
// placeholders without probing for missing keys.
type Profile struct {
	Name     string             `bson:"name" json:"name" validate:"required"`
	Role     string             `bson:"role" json:"role" validate:"required"`
	Bio      string             `bson:"bio" json:"bio" validate:"required"`
	Location *string            `bson:"location" json:"location"`
	Avatar   *string            `bson:"avatar" json:"avatar" validate:"omitempty,url"`
	Socials  map[string]*string `bson:"socials" json:"socials"`
	Skills   []string           `bson:"skills" json:"skills"`
}

// Validate reports field-level failures before the profile is stored.
func (p *Profile) Validate() error {
	return checkStruct(p)
}
