package common

// ErrorResponse is the standard body for client and server failures.
// Error carries the underlying technical detail and is only populated
// outside production.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResponse creates an error response with an optional detail string
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Error:   detail,
	}
}

// HealthResponse reports service and database status.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// EndpointInfo describes one endpoint in the service descriptor.
type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// InfoResponse is the static service descriptor served at the root.
type InfoResponse struct {
	Message       string                  `json:"message"`
	Version       string                  `json:"version"`
	Status        string                  `json:"status"`
	Endpoints     map[string]EndpointInfo `json:"endpoints"`
	Documentation string                  `json:"documentation"`
}
