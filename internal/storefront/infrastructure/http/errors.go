package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/gin-gonic/gin"
)

func handleWorkflowError(c *gin.Context, err error) {
	var networkErr *domain.NetworkFailureError
	if errors.As(err, &networkErr) {
		message := networkErr.Msg
		if message == "" {
			message = domain.MsgGenericFailure
		}

		c.JSON(http.StatusBadGateway, gin.H{"errors": message})
		return
	}

	switch {
	case errors.Is(err, &domain.EmptyQueryError{}),
		errors.Is(err, &domain.SelfTargetError{}),
		errors.Is(err, &domain.NoRecipientError{}),
		errors.Is(err, &domain.InvalidAmountError{}),
		errors.Is(err, &domain.NoItemSelectedError{}),
		errors.Is(err, &domain.InvalidModeError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.NotAuthenticatedError{}):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.UserNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.OperationInProgressError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.TransferRejectedError{}):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
