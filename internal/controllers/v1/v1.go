// Package v1 implements the v1 API of the account book.
package v1

import (
	"github.com/S-okubomy/account-book/internal/assistant"
	"github.com/S-okubomy/account-book/internal/store"
	"github.com/gin-gonic/gin"
)

var (
	records *store.Store
	ai      *assistant.Client
)

// Configure sets the record store and the assistant client used by all
// handlers. It must be called once before the routes are served.
func Configure(s *store.Store, a *assistant.Client) {
	records = s
	ai = a
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRoot)
		r.GET("", GetRoot)
	}

	RegisterExpenseRoutes(r.Group("/expenses"))
	RegisterIncomeRoutes(r.Group("/incomes"))
	RegisterFixedCostRoutes(r.Group("/fixed-costs"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterMonthRoutes(r.Group("/months"))
	RegisterAssistantRoutes(r.Group("/assistant"))
}
