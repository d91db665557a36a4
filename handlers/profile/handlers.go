package profile

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio/backend/handlers"
	"portfolio/backend/schemas"
)

// Store is the slice of the document store this package reads from.
type Store interface {
	List(ctx context.Context, collection string, limit int64) ([]bson.Raw, error)
}

// GetProfileHandler returns the owner's profile, or null when none has
// been created yet. The store identifier never reaches the response.
func GetProfileHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := store.List(r.Context(), schemas.CollectionProfiles, 1)
		if err != nil {
			log.Error().Err(err).Msg("listing profile")
			handlers.StoreError(w, err)
			return
		}
		if len(docs) == 0 {
			handlers.JSON(w, http.StatusOK, nil)
			return
		}

		var p schemas.Profile
		if err := bson.Unmarshal(docs[0], &p); err != nil {
			log.Error().Err(err).Msg("decoding profile")
			handlers.StoreError(w, err)
			return
		}
		handlers.JSON(w, http.StatusOK, p)
	}
}
