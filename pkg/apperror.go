package pkg

// AppError is the HTTP-facing error envelope: a stable machine code, a
// user-safe message and the status to respond with. The wrapped cause is for
// server-side logs only and never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body written for a failed request. The stable code
// stays server-side; clients get success=false plus the user-safe message.
type HTTPError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Error:   e.Message,
	}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
