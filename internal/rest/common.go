package rest

// ResponseError is the standard error envelope returned by handlers.
type ResponseError struct {
	Message string `json:"message"`
}
