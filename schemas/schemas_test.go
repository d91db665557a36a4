package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactMessage() ContactMessage {
	return ContactMessage{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would love to work with you.",
	}
}

func TestContactMessageValidate(t *testing.T) {
	t.Run("accepts a valid message", func(t *testing.T) {
		m := validContactMessage()
		require.NoError(t, m.Validate())
	})

	t.Run("length boundaries", func(t *testing.T) {
		m := validContactMessage()

		m.Message = "abc"
		assert.NoError(t, m.Validate())

		m.Message = strings.Repeat("a", 5000)
		assert.NoError(t, m.Validate())

		m.Message = "ab"
		assert.Error(t, m.Validate())

		m.Message = strings.Repeat("a", 5001)
		assert.Error(t, m.Validate())
	})

	t.Run("reports the failing field", func(t *testing.T) {
		m := validContactMessage()
		m.Message = "hi"

		var verr *ValidationError
		require.ErrorAs(t, m.Validate(), &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "message", verr.Fields[0].Field)
		assert.Equal(t, "must be at least 3 characters", verr.Fields[0].Error)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		m := validContactMessage()
		m.Email = "not-an-email"

		var verr *ValidationError
		require.ErrorAs(t, m.Validate(), &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "email", verr.Fields[0].Field)
		assert.Equal(t, "must be a valid email address", verr.Fields[0].Error)
	})

	t.Run("collects every missing field", func(t *testing.T) {
		var m ContactMessage

		var verr *ValidationError
		require.ErrorAs(t, m.Validate(), &verr)
		require.Len(t, verr.Fields, 3)
		for _, fe := range verr.Fields {
			assert.Equal(t, "is required", fe.Error)
		}
	})
}

func TestProfileValidate(t *testing.T) {
	t.Run("requires name, role and bio", func(t *testing.T) {
		var p Profile

		var verr *ValidationError
		require.ErrorAs(t, p.Validate(), &verr)
		assert.Len(t, verr.Fields, 3)
	})

	t.Run("accepts optional fields left empty", func(t *testing.T) {
		p := Profile{Name: "Legas Yasin", Role: "Web Developer", Bio: "Short bio."}
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects a malformed avatar URL", func(t *testing.T) {
		avatar := "not a url"
		p := Profile{Name: "Legas Yasin", Role: "Web Developer", Bio: "Short bio.", Avatar: &avatar}

		var verr *ValidationError
		require.ErrorAs(t, p.Validate(), &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "avatar", verr.Fields[0].Field)
		assert.Equal(t, "must be a valid URL", verr.Fields[0].Error)
	})
}

func TestProjectValidate(t *testing.T) {
	t.Run("requires title and description", func(t *testing.T) {
		var p Project

		var verr *ValidationError
		require.ErrorAs(t, p.Validate(), &verr)
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("accepts a plain image path", func(t *testing.T) {
		img := "/images/project-1.jpg"
		p := Project{Title: "ColorSplash Landing", Description: "Landing page.", Image: &img}
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects a malformed repo URL", func(t *testing.T) {
		repo := "github dot com"
		p := Project{Title: "ColorSplash Landing", Description: "Landing page.", Repo: &repo}

		var verr *ValidationError
		require.ErrorAs(t, p.Validate(), &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "repo", verr.Fields[0].Field)
	})
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 3)

	collections := make([]string, 0, len(cat))
	for _, c := range cat {
		collections = append(collections, c.Collection)
		assert.NotEmpty(t, c.Model)
		assert.NotEmpty(t, c.Fields)
	}
	assert.Equal(t, []string{CollectionProfiles, CollectionProjects, CollectionContacts}, collections)
}
