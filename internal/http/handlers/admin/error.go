package admin

import (
	"net/http"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

// crudErrorRules cover the common outcomes of back-office mutations.
var crudErrorRules = []handlershared.MappedHandlerError{
	{Target: service.ErrValidation, Status: http.StatusBadRequest, Message: "Invalid request"},
	{Target: service.ErrNotFound, Status: http.StatusNotFound, Message: "Record not found"},
	{Target: service.ErrDuplicateSlug, Status: http.StatusConflict, Message: "Slug already in use"},
}

func respondCRUDError(c *gin.Context, err error, fallbackMsg string) {
	handlershared.RespondMappedError(c, err, crudErrorRules, http.StatusInternalServerError, fallbackMsg)
}
