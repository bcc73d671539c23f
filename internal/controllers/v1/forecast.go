package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
)

// RegisterForecastRoutes registers the routes for the cash-flow
// forecast with the RouterGroup that is passed.
func RegisterForecastRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetForecast)
}

// @Summary		Cash-flow forecast
// @Description	Projects the total balance forward based on average daily spending and income
// @Tags			Forecast
// @Produce		json
// @Success		200	{object}	ForecastResponse
// @Failure		500	{object}	httpError
// @Router			/v1/forecast [get]
func GetForecast(c *gin.Context) {
	forecast, err := newPlanner().Forecast()
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newForecast(forecast)
	c.JSON(http.StatusOK, ForecastResponse{Data: &data})
}
