package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger wires the package logger so error responses can be recorded
// once, at the edge.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// StoreErr maps store errors onto the HTTP taxonomy: validation failures
// are 400, unknown ids 404, failed snapshot writes 500. Anything else is an
// internal error.
func StoreErr(err error) Response {
	switch {
	case repo.IsValidation(err):
		return Err(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, repo.ErrNotFound):
		return Err(http.StatusNotFound, err.Error(), err)
	default:
		var pe *repo.PersistenceError
		if errors.As(err, &pe) {
			log.Sugar().Errorw("snapshot write failed", "err", err)
			return Err(http.StatusInternalServerError, "storage error", err)
		}
		log.Sugar().Errorw("internal error", "err", err)
		return Err(http.StatusInternalServerError, "internal error", err)
	}
}
