package resp

import (
	"net/http"
	"os"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetLogger replaces the package logger; mains call this at startup.
func SetLogger(l zerolog.Logger) { logger = l }

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Error maps a classified error to its status. Unexpected errors are logged
// server-side and reported with a generic message only.
func Error(c *gin.Context, err error) {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		BadRequest(c, err.Error())
	case errs.KindUnauthorized:
		Unauthorized(c, err.Error())
	case errs.KindForbidden:
		Forbidden(c, err.Error())
	case errs.KindNotFound:
		NotFound(c, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
