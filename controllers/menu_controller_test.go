package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kathirfood/menu_backend/repositories"
)

// newMenuController builds a controller over a lazy mongo client that
// is never dialed: these tests only exercise request validation, which
// rejects before any storage access.
func newMenuController(t *testing.T) *MenuController {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	return NewMenuController(repositories.NewMenuRepository(client, nil))
}

func postDraft(t *testing.T, mc *MenuController, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/menu", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, mc.CreateMenuItem(e.NewContext(req, rec)))
	return rec
}

// Drafts that violate the struct tags must be rejected by the bound
// validator before the handler touches the store.
func TestCreateMenuItem_DraftValidation(t *testing.T) {
	mc := newMenuController(t)

	t.Run("MissingName", func(t *testing.T) {
		rec := postDraft(t, mc, `{"category":"Thai","price":9.99,"description":"Hot and sour soup"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation failed")
	})

	t.Run("MissingDescription", func(t *testing.T) {
		rec := postDraft(t, mc, `{"name":"Tom Yum Soup","category":"Thai","price":9.99}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation failed")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		rec := postDraft(t, mc, `{"name":"Tom Yum Soup","category":"Thai","price":-1,"description":"Hot and sour soup"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation failed")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		rec := postDraft(t, mc, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request body")
	})
}

func TestUpdateMenuItem_DraftValidation(t *testing.T) {
	mc := newMenuController(t)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPut, "/api/menu/64a000000000000000000000", strings.NewReader(`{"price":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("64a000000000000000000000")

	// Updates are full replaces; a partial body fails the required tags.
	require.NoError(t, mc.UpdateMenuItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}
