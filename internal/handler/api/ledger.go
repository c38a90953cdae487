package api

import (
	"net/http"

	"booking-registry/internal/domain/account"
	resdto "booking-registry/internal/handler/dto/response"
	"booking-registry/internal/handler/httperr"
	"booking-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	q queries.LedgerQueries
}

func NewLedgerHandler(q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{q: q}
}

// @Summary Token balance
// @Tags ledger
// @Produce json
// @Param account path string true "Account address"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /ledger/balances/{account} [get]
func (h *LedgerHandler) Balance(c *gin.Context) {
	holder, err := account.Parse(c.Param("account"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Balance(c.Request.Context(), holder)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBalanceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Escrow allowance
// @Description Amount the owner has approved the escrow account to collect
// @Tags ledger
// @Produce json
// @Param owner path string true "Approving account address"
// @Success 200 {object} resdto.AllowanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /ledger/allowances/{owner} [get]
func (h *LedgerHandler) EscrowAllowance(c *gin.Context) {
	owner, err := account.Parse(c.Param("owner"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.EscrowAllowance(c.Request.Context(), owner)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAllowanceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
