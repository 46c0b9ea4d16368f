// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/S-okubomy/account-book/internal/httputil"
	"github.com/S-okubomy/account-book/internal/storage"
	"github.com/gin-gonic/gin"
)

var db *storage.DB

// RegisterRoutes registers the health check routes with the
// RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup, database *storage.DB) {
	db = database

	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if err := db.Ping(); err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
