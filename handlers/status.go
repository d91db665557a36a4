package handlers

import (
	"context"
	"net/http"
)

// Store is the slice of the document store the service-level endpoints
// need for diagnostics.
type Store interface {
	Configured() bool
	Connected() bool
	DatabaseName() string
	Collections(ctx context.Context) ([]string, error)
}

// testStatus mirrors the shape the frontend's status widget expects.
type testStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// RootHandler reports that the API is up.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"message": "Portfolio API is running"})
	}
}

// TestHandler reports database connectivity and the visible collections.
// It always answers 200: a broken database shows up in the payload, not as
// an HTTP failure.
func TestHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := testStatus{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			DatabaseURL:      "❌ Not Set",
			DatabaseName:     "❌ Not Set",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		if store.Configured() {
			status.DatabaseURL = "✅ Set"
		}
		if store.Connected() {
			status.Database = "✅ Available"
			status.DatabaseName = store.DatabaseName()
			status.ConnectionStatus = "Connected"

			names, err := store.Collections(r.Context())
			if err != nil {
				status.Database = "⚠️ Connected but Error: " + Truncate(err.Error(), 80)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				if names != nil {
					status.Collections = names
				}
				status.Database = "✅ Connected & Working"
			}
		}

		JSON(w, http.StatusOK, status)
	}
}
