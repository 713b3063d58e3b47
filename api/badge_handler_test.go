package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

func TestCreateBadge_Defaults(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/badges", map[string]string{
		"name": "  Go  ",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var badge models.Badge
	decodeBody(t, w, &badge)
	assert.Equal(t, "Go", badge.Name, "name should be trimmed")
	assert.Equal(t, models.DefaultBadgeColor, badge.Color)
	assert.NotZero(t, badge.ID)
}

func TestCreateBadge_DuplicateName(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/badges", map[string]string{"name": "Go"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same trimmed name again
	w = doJSON(t, router, http.MethodPost, "/badges", map[string]string{"name": " Go "}, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]interface{}
	decodeBody(t, w, &body)
	assert.Contains(t, body, "error")
}

func TestCreateBadge_MissingName(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/badges", map[string]string{"color": "#ff0000"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBadges_OrderedByID(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		w := doJSON(t, router, http.MethodPost, "/badges", map[string]string{"name": name}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/badges", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var badges []models.Badge
	decodeBody(t, w, &badges)
	require.Len(t, badges, 3)
	for i := 1; i < len(badges); i++ {
		assert.Greater(t, badges[i].ID, badges[i-1].ID)
	}
}

func TestUpdateBadge(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/badges", map[string]string{"name": "Go"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var badge models.Badge
	decodeBody(t, w, &badge)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/badges/%d", badge.ID), map[string]string{
		"name":  "Golang",
		"color": "#00add8",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Badge
	decodeBody(t, w, &updated)
	assert.Equal(t, "Golang", updated.Name)
	assert.Equal(t, "#00add8", updated.Color)

	w = doJSON(t, router, http.MethodPut, "/badges/999", map[string]string{"name": "X"}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBadge_Idempotent(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/badges", map[string]string{"name": "Go"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var badge models.Badge
	decodeBody(t, w, &badge)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/badges/%d", badge.ID), nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/badges/%d", badge.ID), nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteBadge_DetachesFromProjects(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	badgeID := createBadge(t, router, cookie, "Frontend")

	w := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
		"name":        "X",
		"description": "Y",
		"badges":      []uint{badgeID},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var project models.Project
	decodeBody(t, w, &project)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/badges/%d", badgeID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Project
	decodeBody(t, w, &fetched)
	assert.Empty(t, fetched.Badges)
}
