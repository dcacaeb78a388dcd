package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fakejournal-reader/models"
)

// HTTPHelper is the only place that knows how classified errors map to
// transport status codes. Everything below it deals in models.AppError.
type HTTPHelper struct {
	Log *zap.SugaredLogger
}

func NewHTTPHelper(log *zap.SugaredLogger) *HTTPHelper {
	return &HTTPHelper{Log: log.With("component", "HTTPHelper")}
}

// GetStatusCode follows the original wire contract: only NotFound,
// MethodNotAllowed and Unknown get dedicated statuses; every other
// classified error, infrastructure ones included, is a 400 whose body
// carries the code.
func (u *HTTPHelper) GetStatusCode(appErr models.AppError) int {
	switch appErr {
	case models.ErrNotFound:
		return http.StatusNotFound
	case models.ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case models.ErrUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// SendAppError writes the classified error as a bare JSON string with its
// mapped status.
func (u *HTTPHelper) SendAppError(c *gin.Context, appErr models.AppError) {
	c.JSON(u.GetStatusCode(appErr), appErr)
}

// SendError classifies an arbitrary service-layer error. Anything that is
// not already an AppError should never happen; it is logged and collapsed
// to Unknown.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	var appErr models.AppError
	if !errors.As(err, &appErr) {
		u.Log.Errorw("intercepted unknown error kind", "cause", err)
		appErr = models.ErrUnknown
	}
	u.SendAppError(c, appErr)
}

// SendSuccess writes the hydrated response with no envelope.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
