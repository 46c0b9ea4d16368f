package assistant

import (
	"context"
	"fmt"

	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/types"
	"google.golang.org/genai"
)

// Fallback texts for SavingsTips. The feature degrades to one of these
// instead of failing the request.
const (
	tipsUnavailable = "AIによる節約のヒント生成機能は現在利用できません。APIキーが正しく設定されていない可能性があります。"
	tipsFailed      = "すみません、今ちょっとヒントを考えるのに苦労しています。後でもう一度お試しください。"
)

// SavingsTips asks for personalized savings advice based on one
// month's records. It never fails: when the assistant is disabled, the
// month is empty or the upstream call errors, a canned Japanese
// message is returned instead.
func (c *Client) SavingsTips(ctx context.Context, month types.Month, expenses []models.Expense, incomes []models.Income) string {
	if !c.Enabled() {
		return tipsUnavailable
	}

	if len(expenses) == 0 && len(incomes) == 0 {
		return fmt.Sprintf("まずは%sの収入か支出を追加してみましょう。記録がたまると、あなたに合った節約のヒントを提案できます！", monthLabel(month))
	}

	resp, err := c.generate(ctx, genai.Text(savingsTipsPrompt(month, expenses, incomes)), nil)
	if err != nil {
		return tipsFailed
	}

	return resp.Text()
}
