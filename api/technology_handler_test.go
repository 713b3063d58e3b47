package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

func TestListTechnologies_SeededDefaults(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/technologies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var technologies []models.Technology
	decodeBody(t, w, &technologies)
	require.Len(t, technologies, 6)
	assert.Equal(t, "React", technologies[0].Name)
	assert.Equal(t, "TailwindCSS", technologies[5].Name)
}

func TestCreateTechnology_DuplicateName(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/technologies", map[string]string{"name": "Svelte"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/technologies", map[string]string{"name": " Svelte "}, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Seeded names collide too
	w = doJSON(t, router, http.MethodPost, "/technologies", map[string]string{"name": "React"}, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTechnology_MissingName(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/technologies", map[string]string{"name": "   "}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTechnologyLifecycle(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/technologies", map[string]string{"name": "Svelte"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var technology models.Technology
	decodeBody(t, w, &technology)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/technologies/%d", technology.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/technologies/%d", technology.ID), map[string]string{"name": "SvelteKit"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Technology
	decodeBody(t, w, &updated)
	assert.Equal(t, "SvelteKit", updated.Name)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/technologies/%d", technology.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/technologies/%d", technology.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTechnologyMutations_RequireSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/technologies", map[string]string{"name": "Svelte"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/technologies/1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
