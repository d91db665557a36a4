package contact

// submitResponse acknowledges a stored contact message.
type submitResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}
