package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler       authHandler
	projectHandler    projectHandler
	badgeHandler      badgeHandler
	technologyHandler technologyHandler
	contactHandler    contactHandler
	settingsHandler   settingsHandler
	healthHandler     healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"name"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// Pagination describes one page of a paginated listing
type Pagination struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
	HasMore    bool  `json:"hasMore"`
}
