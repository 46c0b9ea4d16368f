package v1

import (
	"errors"
	"net/http"

	"github.com/S-okubomy/account-book/internal/assistant"
	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/gin-gonic/gin"
)

// SavingsTipsRequest selects the month to generate tips for.
type SavingsTipsRequest struct {
	Month string `json:"month" example:"2024-03"` // The month in YYYY-MM format. Defaults to the current month
}

type SavingsTipsResponse struct {
	Data  *string `json:"data"`  // The generated tips as markdown
	Error *string `json:"error"` // The error, if any occurred
}

// ReceiptRequest carries a receipt image for analysis.
type ReceiptRequest struct {
	Image    []byte `json:"image" swaggertype:"string" format:"base64"` // The receipt image, base64 encoded
	MimeType string `json:"mimeType" example:"image/jpeg"`              // The image MIME type. Defaults to image/jpeg
}

type ReceiptResponse struct {
	Data  *assistant.Receipt `json:"data"`  // The draft expense extracted from the image
	Error *string            `json:"error"` // The error, if any occurred
}

type SalesInfoResponse struct {
	Data  *assistant.SalesInfo `json:"data"`  // The sales information with its sources
	Error *string              `json:"error"` // The error, if any occurred
}

// RegisterAssistantRoutes registers the routes for the assistant with
// the RouterGroup that is passed.
func RegisterAssistantRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/savings-tips", OptionsSavingsTips)
	r.POST("/savings-tips", GetSavingsTips)

	r.OPTIONS("/receipt", OptionsReceipt)
	r.POST("/receipt", AnalyzeReceipt)

	r.OPTIONS("/sales-info", OptionsSalesInfo)
	r.POST("/sales-info", GetSalesInfo)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/assistant/savings-tips [options]
func OptionsSavingsTips(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get savings tips
// @Description	Generates personalized savings advice from one month's records. Degrades to a canned message when the assistant is disabled
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsTipsResponse
// @Failure		400		{object}	SavingsTipsResponse
// @Param			request	body		SavingsTipsRequest	false	"Request"
// @Router			/v1/assistant/savings-tips [post]
func GetSavingsTips(c *gin.Context) {
	var request SavingsTipsRequest
	if err := httputil.BindData(c, &request); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(c, err), SavingsTipsResponse{Error: &s})
		return
	}

	month, err := monthOrCurrent(request.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SavingsTipsResponse{Error: &s})
		return
	}

	summary := reportForMonth(month)
	tips := ai.SavingsTips(c.Request.Context(), month, summary.Expenses, summary.Incomes)

	c.JSON(http.StatusOK, SavingsTipsResponse{Data: &tips})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/assistant/receipt [options]
func OptionsReceipt(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Analyze receipt
// @Description	Extracts a draft expense from a receipt image. Nothing is stored, the draft is returned for review
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReceiptResponse
// @Failure		400		{object}	ReceiptResponse
// @Failure		502		{object}	ReceiptResponse
// @Failure		503		{object}	ReceiptResponse
// @Param			request	body		ReceiptRequest	true	"Request"
// @Router			/v1/assistant/receipt [post]
func AnalyzeReceipt(c *gin.Context) {
	var request ReceiptRequest
	if err := httputil.BindData(c, &request); err != nil {
		s := err.Error()
		c.JSON(status(c, err), ReceiptResponse{Error: &s})
		return
	}

	receipt, err := ai.AnalyzeReceipt(c.Request.Context(), request.Image, request.MimeType)
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), ReceiptResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ReceiptResponse{Data: &receipt})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/assistant/sales-info [options]
func OptionsSalesInfo(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get sales info
// @Description	Searches for current supermarket sales around a location. Exactly one of an address or a coordinate pair must be given
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200			{object}	SalesInfoResponse
// @Failure		400			{object}	SalesInfoResponse
// @Failure		502			{object}	SalesInfoResponse
// @Failure		503			{object}	SalesInfoResponse
// @Param			location	body		assistant.Location	true	"Location"
// @Router			/v1/assistant/sales-info [post]
func GetSalesInfo(c *gin.Context) {
	var location assistant.Location
	if err := httputil.BindData(c, &location); err != nil {
		s := err.Error()
		c.JSON(status(c, err), SalesInfoResponse{Error: &s})
		return
	}

	info, err := ai.SalesInfo(c.Request.Context(), location)
	if err != nil {
		s := err.Error()
		c.JSON(status(c, err), SalesInfoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SalesInfoResponse{Data: &info})
}
