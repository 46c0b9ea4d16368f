package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// yen formats an amount with Japanese digit grouping.
func yen(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart())
}

// ShareText renders the summary as a plain text snippet for messaging
// apps. Amounts are grouped the Japanese way and the balance line
// carries a mood marker depending on its sign.
func (s MonthSummary) ShareText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "【%d年%d月の家計簿】\n", s.Month.Year(), s.Month.MonthOfYear())
	fmt.Fprintf(&b, "支出合計: %s円\n", yen(s.TotalSpent))
	fmt.Fprintf(&b, "収入合計: %s円\n", yen(s.TotalIncome))

	mood := "😊"
	if s.Balance.IsNegative() {
		mood = "😱"
	}
	fmt.Fprintf(&b, "収支: %s円 %s\n", yen(s.Balance), mood)

	if s.FixedCost.IsPositive() || s.VariableCost.IsPositive() {
		fmt.Fprintf(&b, "\n固定費: %s円 / 変動費: %s円\n", yen(s.FixedCost), yen(s.VariableCost))
	}

	b.WriteString("\n#家計簿 #節約")

	return b.String()
}
