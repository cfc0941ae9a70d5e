package errors

// Response is the JSON envelope returned by the error middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error code and diagnostic details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
