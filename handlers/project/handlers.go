package project

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

// ListProjectsHandler returns every project card. An empty collection
// yields an empty array, never null.
func ListProjectsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := store.List(r.Context(), schemas.CollectionProjects, 0)
		if err != nil {
			log.Error().Err(err).Msg("listing projects")
			handlers.StoreError(w, err)
			return
		}

		projects := make([]schemas.Project, 0, len(docs))
		for _, doc := range docs {
			var p schemas.Project
			if err := bson.Unmarshal(doc, &p); err != nil {
				log.Error().Err(err).Msg("decoding project")
				handlers.StoreError(w, err)
				return
			}
			projects = append(projects, p)
		}
		handlers.JSON(w, http.StatusOK, projects)
	}
}
