package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/report"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/gin-gonic/gin"
)

// ErrMonthInFuture is returned for summary requests of months that
// have not started yet.
var ErrMonthInFuture = errors.New("the month must not be in the future")

type MonthResponse struct {
	Data  *report.MonthSummary `json:"data"`  // Data for the month
	Error *string              `json:"error"` // The error, if any occurred
}

type ShareTextResponse struct {
	Data  *string `json:"data"`  // The formatted share text
	Error *string `json:"error"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for Months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)

	r.OPTIONS("/share-text", OptionsShareText)
	r.GET("/share-text", GetShareText)
}

// monthOrCurrent parses a YYYY-MM string, defaulting to the current
// month when it is empty. Months after the current one are rejected
// since no records can exist for them yet.
func monthOrCurrent(value string) (types.Month, error) {
	current := types.MonthOf(time.Now().UTC())

	if value == "" {
		return current, nil
	}

	month, err := types.ParseMonth(value)
	if err != nil {
		return types.Month{}, err
	}

	if month.After(current) {
		return types.Month{}, ErrMonthInFuture
	}

	return month, nil
}

func queryMonth(c *gin.Context) (types.Month, error) {
	return monthOrCurrent(c.Query("month"))
}

// reportForMonth aggregates the current record collections for one
// month.
func reportForMonth(month types.Month) report.MonthSummary {
	return report.Summarize(month, records.Expenses(), records.Incomes(), records.FixedCosts(), records.Budgets())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month summary
// @Description	Returns the aggregated data for one month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &s})
		return
	}

	summary := reportForMonth(month)
	c.JSON(http.StatusOK, MonthResponse{Data: &summary})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/share-text [options]
func OptionsShareText(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get share text
// @Description	Returns the month summary formatted for sharing in messaging apps
// @Tags			Months
// @Produce		json
// @Success		200		{object}	ShareTextResponse
// @Failure		400		{object}	ShareTextResponse
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/months/share-text [get]
func GetShareText(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ShareTextResponse{Error: &s})
		return
	}

	summary := reportForMonth(month)
	text := summary.ShareText()

	c.JSON(http.StatusOK, ShareTextResponse{Data: &text})
}
