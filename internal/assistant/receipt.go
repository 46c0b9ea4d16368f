package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

var (
	// ErrReceiptImageEmpty means the request did not contain image data.
	ErrReceiptImageEmpty = errors.New("the receipt image is empty")

	// ErrReceiptUnreadable means the image could not be turned into a
	// transaction.
	ErrReceiptUnreadable = errors.New("the receipt could not be analyzed, check that the image is sharp and try again")
)

// Receipt is a draft expense extracted from a receipt image. It is
// returned to the caller for review, nothing is stored.
type Receipt struct {
	Date        types.Date        `json:"date" example:"2024-03-15"`
	Amount      decimal.Decimal   `json:"amount" example:"1480"`
	Category    taxonomy.Category `json:"category" example:"食費"`
	Description string            `json:"description" example:"スーパーマルエツ"`
}

// receiptSchema constrains the model output to the fields of a draft
// expense.
func receiptSchema() *genai.Schema {
	categories := make([]string, 0, len(taxonomy.All))
	for _, c := range taxonomy.All {
		categories = append(categories, string(c))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":      {Type: genai.TypeNumber, Description: "合計金額"},
			"date":        {Type: genai.TypeString, Description: "日付 (YYYY-MM-DD)"},
			"description": {Type: genai.TypeString, Description: "内容（店名など）"},
			"category":    {Type: genai.TypeString, Enum: categories, Description: "カテゴリ"},
		},
		Required: []string{"amount", "date", "description", "category"},
	}
}

// AnalyzeReceipt extracts a draft expense from a receipt image. An
// unparseable date falls back to today and a category outside the
// taxonomy falls back to CategoryOther.
func (c *Client) AnalyzeReceipt(ctx context.Context, image []byte, mimeType string) (Receipt, error) {
	if !c.Enabled() {
		return Receipt{}, ErrNotConfigured
	}

	if len(image) == 0 {
		return Receipt{}, ErrReceiptImageEmpty
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	today := types.DateOf(time.Now().UTC())

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(receiptPrompt(today)),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := c.generate(ctx, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   receiptSchema(),
	})
	if err != nil {
		return Receipt{}, err
	}

	var payload struct {
		Amount      decimal.Decimal `json:"amount"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &payload); err != nil {
		log.Error().Err(err).Msg("assistant: receipt response is not valid JSON")
		return Receipt{}, ErrReceiptUnreadable
	}

	date, err := types.ParseDate(payload.Date)
	if err != nil {
		date = today
	}

	return Receipt{
		Date:        date,
		Amount:      payload.Amount,
		Category:    taxonomy.Normalize(payload.Category),
		Description: strings.TrimSpace(payload.Description),
	}, nil
}
