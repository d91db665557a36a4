package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/schemas"
)

type fakeStore struct {
	id  string
	err error

	lastCollection string
	lastDoc        any
	calls          int
}

func (f *fakeStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	f.calls++
	f.lastCollection = collection
	f.lastDoc = doc
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func postContact(t *testing.T, st *fakeStore, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	SubmitContactHandler(st).ServeHTTP(rec, req)
	return rec
}

func TestSubmitContactHandler(t *testing.T) {
	t.Run("stores a valid submission", func(t *testing.T) {
		msg := schemas.ContactMessage{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Message: gofakeit.Sentence(12),
		}
		body, err := json.Marshal(msg)
		require.NoError(t, err)

		st := &fakeStore{id: "65f2a0f4c2a4d1e8b0a1b2c3"}
		rec := postContact(t, st, string(body))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok": true, "id": "65f2a0f4c2a4d1e8b0a1b2c3"}`, rec.Body.String())
		assert.Equal(t, schemas.CollectionContacts, st.lastCollection)
		assert.Equal(t, msg, st.lastDoc)
	})

	t.Run("rejects a short message before any write", func(t *testing.T) {
		st := &fakeStore{}
		rec := postContact(t, st, `{"name": "Ada", "email": "ada@example.com", "message": "hi"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, st.calls)

		var body struct {
			Detail string               `json:"detail"`
			Errors []schemas.FieldError `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Detail)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "message", body.Errors[0].Field)
		assert.Equal(t, "must be at least 3 characters", body.Errors[0].Error)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		st := &fakeStore{}
		rec := postContact(t, st, `{"name": "Ada", "email": "nope", "message": "hello there"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, st.calls)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		st := &fakeStore{}
		rec := postContact(t, st, `{"name": `)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, st.calls)
		assert.JSONEq(t, `{"detail": "Invalid request body"}`, rec.Body.String())
	})

	t.Run("maps store failures to a server error", func(t *testing.T) {
		st := &fakeStore{err: errors.New("write concern failed")}
		rec := postContact(t, st, `{"name": "Ada", "email": "ada@example.com", "message": "hello there"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail": "write concern failed"}`, rec.Body.String())
		assert.Equal(t, 1, st.calls)
	})
}
