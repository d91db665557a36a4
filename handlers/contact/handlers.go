package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"portfolio/backend/handlers"
	"portfolio/backend/schemas"
)

// Store is the slice of the document store this package writes to.
type Store interface {
	Create(ctx context.Context, collection string, doc any) (string, error)
}

// SubmitContactHandler validates a contact-form submission and stores it.
// Nothing is written when validation fails.
func SubmitContactHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg schemas.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			handlers.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := msg.Validate(); err != nil {
			handlers.ValidationError(w, err)
			return
		}

		id, err := store.Create(r.Context(), schemas.CollectionContacts, msg)
		if err != nil {
			log.Error().Err(err).Msg("storing contact message")
			handlers.StoreError(w, err)
			return
		}
		handlers.JSON(w, http.StatusOK, submitResponse{OK: true, ID: id})
	}
}
