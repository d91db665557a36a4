package handlers

import (
	"net/http"

	"portfolio/backend/schemas"
)

// SchemaHandler serves the collection catalog the internal database viewer
// uses to render editing forms.
func SchemaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, schemas.Catalog())
	}
}
