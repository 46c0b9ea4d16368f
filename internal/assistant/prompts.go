package assistant

import (
	"fmt"
	"strings"

	"github.com/S-okubomy/account-book/internal/models"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/S-okubomy/account-book/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The prompts are written in Japanese since that is the language of
// the people using the account book.

var printer = message.NewPrinter(language.Japanese)

func yen(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart())
}

func monthLabel(month types.Month) string {
	return fmt.Sprintf("%d年%d月", month.Year(), month.MonthOfYear())
}

func savingsTipsPrompt(month types.Month, expenses []models.Expense, incomes []models.Income) string {
	monthString := monthLabel(month)

	formattedExpenses := "この月の支出は記録されていません。"
	if len(expenses) > 0 {
		lines := make([]string, 0, len(expenses))
		for _, e := range expenses {
			lines = append(lines, fmt.Sprintf("- カテゴリ: %s, 金額: %s円, 内容: %s", e.Category, yen(e.Amount), e.Description))
		}
		formattedExpenses = strings.Join(lines, "\n")
	}

	formattedIncomes := "この月の収入は記録されていません。"
	if len(incomes) > 0 {
		lines := make([]string, 0, len(incomes))
		for _, i := range incomes {
			lines = append(lines, fmt.Sprintf("- 金額: %s円, 内容: %s", yen(i.Amount), i.Description))
		}
		formattedIncomes = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`あなたは「節約先生」、フレンドリーで、励ましてくれる、鋭いファイナンシャルアドバイザーです。
あなたの目標は、ユーザーの収入と消費習慣を分析して、お金を節約するのを助けることです。
批判的または厳しい態度は避けてください。あなたのトーンはポジティブで、元気づけるようなものでなければなりません。

以下の【%[1]s】の収入と支出のリストに基づき、実行可能でパーソナライズされた節約のヒントを日本語で3〜5個提案してください。
マークダウンのリスト形式で提示してください。フレンドリーな挨拶で始め、励ましの言葉で締めくくってください。

これがユーザーの【%[1]s】の収入データです：
%[2]s

これがユーザーの【%[1]s】の支出データです：
%[3]s

これらの収入と支出のパターンを分析し、具体的で創造的なアドバイスを提供してください。
例えば、「食費」の支出が多い場合は、作り置きやスーパーのアプリ活用などの具体的な戦略を提案します。「娯楽」費が高い場合は、無料の地域イベントやサブスクリプションの見直しなどを提案します。収入に対して支出が多い場合は、その点にも優しく触れてください。`,
		monthString, formattedIncomes, formattedExpenses)
}

func receiptPrompt(today types.Date) string {
	categories := make([]string, 0, len(taxonomy.All))
	for _, c := range taxonomy.All {
		categories = append(categories, string(c))
	}

	return fmt.Sprintf(`あなたは知的なレシートスキャナーです。提供されたレシートの画像を分析し、以下の情報をJSON形式で抽出してください:
- 取引の合計金額。
- 取引の日付を「YYYY-MM-DD」形式で。日付が見つからない場合は、今日の日付を使用してください: %s。
- 店舗名や目立つ商品名などの簡単な説明。
- 支出のカテゴリ。次のリストから選択してください: %s。最も関連性の高いカテゴリを選択し、適合するものがない場合は「%s」を使用してください。

提供されたJSONスキーマに厳密に従って出力を提供してください。`,
		today, strings.Join(categories, ", "), taxonomy.CategoryOther)
}

func salesInfoPrompt(location Location) string {
	var locationInfo, locationContext string

	if location.Address != "" {
		locationInfo = fmt.Sprintf("【検索場所】\n%s", location.Address)
		locationContext = "この【検索場所】の周辺エリアに限定して"
	} else {
		locationInfo = fmt.Sprintf("【現在地】\n緯度: %v\n経度: %v", *location.Latitude, *location.Longitude)
		locationContext = "この【現在地】が含まれる都道府県と市区町村を特定し、その市区町村内または非常に近い隣接地域に限定して"
	}

	return fmt.Sprintf(`あなたは地域情報に詳しい、賢いショッピングアシスタントです。
ユーザーが指定した以下の場所の情報を基に、Google検索を最大限活用して、スーパーマーケットの具体的なセール情報やお得情報を教えてください。

%s

回答のポイント:
- 必ず、%s、スーパーマーケットの情報を検索してください。
- スーパーマーケットの名前と、簡単な場所や支店名を明記してください。
- 現在実施中の具体的なセール品（例：「〇〇スーパーで本日、卵が99円」「△△ストアで週末限定、野菜詰め放題」など）。
- 時間帯による割引情報（タイムセールなど）があれば含めてください。
- 近隣の店舗で共通するお買い得な曜日や傾向も役立ちます。

回答は、ユーザーがすぐに行動に移せるような、具体的で実践的なヒントを、店ごとに分かりやすくマークダウン形式で生成してください。
もし指定された地域で具体的な店舗情報が見つからない場合は、その地域で役立ちそうな一般的な買い物術を提案してください。`,
		locationInfo, locationContext)
}
