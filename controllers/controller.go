package controllers

import (
	"net/http"

	"crosscheck/config"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

// SetConfigurations hands the loaded configuration to the controllers;
// the auth handlers read the JWT settings from it.
func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Error codes carried next to the human-readable message so clients can
// branch without parsing text.
const (
	ErrCodeValidation   = "validation_error"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeInternal     = "internal_server_error"
)

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeValidation
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternal
	}
}

func RespondError(c *gin.Context, msg string, status int) {
	c.JSON(status, gin.H{"error": msg, "code": codeForStatus(status)})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
