package schemas

// ContactMessage is a contact-form submission. Messages are stored once and
// never served back through the public API.
type ContactMessage struct {
	Name    string `bson:"name" json:"name" validate:"required"`
	Email   string `bson:"email" json:"email" validate:"required,email"`
	Message string `bson:"message" json:"message" validate:"required,min=3,max=5000"`
}

// Validate reports field-level failures before the message is stored.
func (m *ContactMessage) Validate() error {
	return checkStruct(m)
}
