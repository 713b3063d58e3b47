package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-admin-backend/models"
)

func submitContact(t *testing.T, router http.Handler, name string) models.ContactMessage {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/contact", map[string]string{
		"name":         name,
		"email":        "visitor@example.com",
		"project_type": "website",
		"message":      "hello",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var message models.ContactMessage
	decodeBody(t, w, &message)
	require.NotZero(t, message.ID)
	return message
}

func TestSubmitContact_Success(t *testing.T) {
	router := newTestRouter(t)

	message := submitContact(t, router, "Visitor")
	assert.Equal(t, "Visitor", message.Name)
	assert.Equal(t, "visitor@example.com", message.Email)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	payloads := []map[string]string{
		{"email": "a@b.c", "project_type": "website", "message": "hi"},
		{"name": "A", "project_type": "website", "message": "hi"},
		{"name": "A", "email": "a@b.c", "message": "hi"},
		{"name": "A", "email": "a@b.c", "project_type": "website"},
	}
	for _, payload := range payloads {
		w := doJSON(t, router, http.MethodPost, "/contact", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestListContactMessages_AdminOnly(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/contact", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListContactMessages_NewestFirst(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	submitContact(t, router, "first")
	time.Sleep(5 * time.Millisecond)
	submitContact(t, router, "second")

	w := doJSON(t, router, http.MethodGet, "/contact", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.ContactMessage
	decodeBody(t, w, &messages)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Name)
	assert.Equal(t, "first", messages[1].Name)
}

func TestContactMessage_GetAndDelete(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAdmin(t, router)

	message := submitContact(t, router, "Visitor")

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/contact/%d", message.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/contact/%d", message.ID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/contact/%d", message.ID), nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Idempotent delete
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/contact/%d", message.ID), nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}
