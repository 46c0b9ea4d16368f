package v1

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/taxonomy"
	"github.com/gin-gonic/gin"
)

// CategoryObject is one entry of the category taxonomy.
type CategoryObject struct {
	Name taxonomy.Category    `json:"name" example:"食費"`   // The category name
	Type taxonomy.ExpenseType `json:"type" example:"変動費"` // Whether spending in this category is fixed or variable
}

type CategoryListResponse struct {
	Data  []CategoryObject `json:"data"` // The category taxonomy in display order
	Error *string          `json:"error"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for Categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List categories
// @Description	Returns the category taxonomy in display order
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories := make([]CategoryObject, 0, len(taxonomy.All))
	for _, category := range taxonomy.All {
		expenseType, _ := category.Type()
		categories = append(categories, CategoryObject{
			Name: category,
			Type: expenseType,
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}
