package seed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"portfolio/backend/handlers"
	"portfolio/backend/schemas"
)

// Store is the slice of the document store the seed endpoint needs.
type Store interface {
	Create(ctx context.Context, collection string, doc any) (string, error)
	Count(ctx context.Context, collection string, filter any) (int64, error)
}

// SeedHandler inserts starter content into collections that are still
// empty. Populated collections are left untouched, so the frontend can
// call it blindly on first load.
func SeedHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			handlers.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.withDemo() {
			if err := seedDemo(r.Context(), store); err != nil {
				log.Error().Err(err).Msg("seeding demo content")
				handlers.StoreError(w, err)
				return
			}
		}
		handlers.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func seedDemo(ctx context.Context, store Store) error {
	n, err := store.Count(ctx, schemas.CollectionProfiles, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		p := demoProfile()
		if err := p.Validate(); err != nil {
			return err
		}
		if _, err := store.Create(ctx, schemas.CollectionProfiles, p); err != nil {
			return err
		}
	}

	n, err = store.Count(ctx, schemas.CollectionProjects, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, p := range demoProjects() {
			if err := p.Validate(); err != nil {
				return err
			}
			if _, err := store.Create(ctx, schemas.CollectionProjects, p); err != nil {
				return err
			}
		}
	}
	return nil
}
