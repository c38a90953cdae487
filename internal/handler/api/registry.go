package api

import (
	"net/http"

	"booking-registry/internal/domain/token"
	reqdto "booking-registry/internal/handler/dto/request"
	resdto "booking-registry/internal/handler/dto/response"
	"booking-registry/internal/handler/httperr"
	"booking-registry/internal/handler/middleware"
	"booking-registry/internal/usecase/commands"
	"booking-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RegistryHandler struct {
	cmds commands.RegistryCommands
	q    queries.RegistryQueries
}

func NewRegistryHandler(cmds commands.RegistryCommands, q queries.RegistryQueries) *RegistryHandler {
	return &RegistryHandler{cmds: cmds, q: q}
}

// @Summary Registry settings
// @Description Get the principals, current tax percentage and room prices
// @Tags registry
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Router /registry [get]
func (h *RegistryHandler) GetSettings(c *gin.Context) {
	view, err := h.q.GetSettings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSettingsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get tax percentage
// @Tags registry
// @Produce json
// @Success 200 {object} resdto.TaxPercentageResponse
// @Router /registry/tax [get]
func (h *RegistryHandler) GetTaxPercentage(c *gin.Context) {
	pct, err := h.q.GetTaxPercentage(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TaxPercentageResponse{TaxPercentage: pct})
}

// @Summary Set tax percentage
// @Description Owner sets the tax applied to bookings created from now on
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetTaxPercentageRequest true "Tax percentage (0-100)"
// @Success 200 {object} resdto.TaxPercentageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /registry/tax [put]
func (h *RegistryHandler) SetTaxPercentage(c *gin.Context) {
	actor, ok := middleware.GetAccount(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SetTaxPercentageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	settings, err := h.cmds.SetTaxPercentage(c.Request.Context(), actor, *req.TaxPercentage)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TaxPercentageResponse{TaxPercentage: settings.TaxPercentage().Int()})
}

// @Summary Get room prices
// @Tags registry
// @Produce json
// @Success 200 {object} resdto.RoomPricesResponse
// @Router /registry/room-prices [get]
func (h *RegistryHandler) GetRoomPrices(c *gin.Context) {
	view, err := h.q.GetRoomPrices(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomPricesView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Set room prices
// @Description Owner replaces all three room prices
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetRoomPricesRequest true "Room prices in token minor units"
// @Success 200 {object} resdto.RoomPricesResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /registry/room-prices [put]
func (h *RegistryHandler) SetRoomPrices(c *gin.Context) {
	actor, ok := middleware.GetAccount(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SetRoomPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	prices, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	settings, err := h.cmds.SetRoomPrices(c.Request.Context(), actor, prices)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRoomPrices(settings.RoomPrices())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Calculate total amount
// @Description Apply a tax percentage to a base amount, truncating toward zero
// @Tags registry
// @Produce json
// @Param baseAmount query string true "Base amount in token minor units"
// @Param taxPercentage query int true "Tax percentage, any non-negative rate"
// @Success 200 {object} resdto.TotalAmountResponse
// @Failure 400 {object} httperr.Response
// @Router /registry/total [get]
func (h *RegistryHandler) CalculateTotalAmount(c *gin.Context) {
	var query reqdto.TotalAmountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	base, err := token.ParseAmount(query.BaseAmount)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	total, err := h.q.CalculateTotalAmount(base, *query.TaxPercentage)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TotalAmountResponse{
		BaseAmount:    base.String(),
		TaxPercentage: *query.TaxPercentage,
		TotalAmount:   total.String(),
	})
}
