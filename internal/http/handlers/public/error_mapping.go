package public

import (
	"net/http"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

var cartErrorRules = []handlershared.MappedHandlerError{
	{Target: service.ErrValidation, Status: http.StatusBadRequest, Message: "Invalid cart request"},
	{Target: service.ErrNotFound, Status: http.StatusNotFound, Message: "Product not found"},
}

var orderCreateErrorRules = []handlershared.MappedHandlerError{
	{Target: service.ErrValidation, Status: http.StatusBadRequest, Message: "Invalid order request"},
	{Target: service.ErrAmountMismatch, Status: http.StatusBadRequest, Message: "Total amount is below the items subtotal"},
}

var orderLookupErrorRules = []handlershared.MappedHandlerError{
	{Target: service.ErrNotFound, Status: http.StatusNotFound, Message: "Order not found"},
}

func respondCartError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "Failed to update cart")
}

func respondOrderCreateError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, orderCreateErrorRules, http.StatusInternalServerError, "Failed to create order")
}

func respondOrderLookupError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, orderLookupErrorRules, http.StatusInternalServerError, "Failed to fetch order")
}
