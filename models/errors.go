package models

// AppError is the closed set of failures allowed to cross the service
// boundary. Every storage, auth and validation failure is mapped onto
// exactly one of these values before it leaves the service layer; the
// values double as the wire codes the client sees.
type AppError string

const (
	ErrNotFound            AppError = "NOT_FOUND"
	ErrMethodNotAllowed    AppError = "METHOD_NOT_ALLOWED"
	ErrDecodeError         AppError = "DECODE_ERROR"
	ErrUnauthorized        AppError = "UNAUTHORIZED"
	ErrArticleNonexistent  AppError = "ARTICLE_NONEXISTENT"
	ErrInvalidDuration     AppError = "INVALID_DURATION"
	ErrInvalidPosition     AppError = "INVALID_POSITION"
	ErrInternalServerError AppError = "INTERNAL_SERVER_ERROR"
	ErrUnknown             AppError = "UNKNOWN"
)

func (e AppError) Error() string {
	return string(e)
}
