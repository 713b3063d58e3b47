package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

func TestGetButtonSettings_SeededDefault(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/settings/button", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var setting models.ButtonSetting
	decodeBody(t, w, &setting)
	assert.Equal(t, models.ButtonSettingKey, setting.Key)
	assert.Equal(t, models.DefaultButtonLabel, setting.Label)
	assert.Equal(t, models.DefaultButtonURL, setting.URL)
}

func TestUpdateButtonSettings(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPut, "/settings/button", map[string]string{
		"label": "Book a call",
		"url":   "https://example.com/call",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/settings/button", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var setting models.ButtonSetting
	decodeBody(t, w, &setting)
	assert.Equal(t, "Book a call", setting.Label)
	assert.Equal(t, "https://example.com/call", setting.URL)
}

func TestUpdateButtonSettings_Validation(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPut, "/settings/button", map[string]string{
		"label": "Book a call",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/settings/button", map[string]string{
		"url": "https://example.com",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateButtonSettings_RequiresSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/settings/button", map[string]string{
		"label": "Book a call",
		"url":   "https://example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
