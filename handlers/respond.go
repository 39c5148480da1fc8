package handlers

import (
	"net/http"

	"clinicore/middleware"
	"clinicore/services/scheduling"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusForCode maps engine error codes to HTTP statuses. Conflict is the
// only non-400 client error: callers losing a slot race are expected to pick
// another slot and retry themselves.
func statusForCode(code string) int {
	switch code {
	case scheduling.CodeUnauthorized:
		return http.StatusForbidden
	case scheduling.CodeNotFound:
		return http.StatusNotFound
	case scheduling.CodeSlotConflict:
		return http.StatusConflict
	case scheduling.CodeValidation,
		scheduling.CodeNotAWorkingDay,
		scheduling.CodeSlotUnavailable,
		scheduling.CodePastDate,
		scheduling.CodeInvalidTransition:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError translates any engine failure into the standard error body.
// Non-engine errors are logged and masked as internal server errors.
func respondError(c *gin.Context, err error) {
	code := scheduling.CodeOf(err)
	if code == "" {
		utils.GetLogger().Error("unclassified engine failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(statusForCode(code), gin.H{"error": code, "message": err.Error()})
}

// requester pulls the authenticated (id, role) pair set by the auth
// middleware.
func requester(c *gin.Context) (id, role string) {
	return c.GetString(middleware.ContextRequesterID), c.GetString(middleware.ContextRequesterRole)
}
