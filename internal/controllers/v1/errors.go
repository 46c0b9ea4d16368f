package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/S-okubomy/account-book/internal/assistant"
	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status maps an error to the HTTP status code of the response.
func status(c *gin.Context, err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrBudgetAmountNegative),
		errors.Is(err, models.ErrCategoryInvalid),
		errors.Is(err, models.ErrDateNotSet),
		errors.Is(err, models.ErrDescriptionNotSet),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, assistant.ErrLocationInvalid),
		errors.Is(err, assistant.ErrReceiptImageEmpty):
		return http.StatusBadRequest

	case errors.Is(err, assistant.ErrNotConfigured):
		return http.StatusServiceUnavailable

	case errors.Is(err, assistant.ErrUpstream),
		errors.Is(err, assistant.ErrReceiptUnreadable):
		return http.StatusBadGateway

	case reflect.TypeOf(err) == reflect.TypeOf(&json.UnmarshalTypeError{}),
		reflect.TypeOf(err) == reflect.TypeOf(&time.ParseError{}):
		return http.StatusBadRequest

	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return http.StatusInternalServerError
	}
}
