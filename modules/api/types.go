package api

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for requests that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}
