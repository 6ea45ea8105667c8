package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PromotionHandler struct {
	svs PromotionServicer
}

func NewPromotionHandler(svs PromotionServicer) *PromotionHandler {
	return &PromotionHandler{
		svs: svs,
	}
}

type GrantParams struct {
	// Один аккаунт или список - кампания на несколько аккаунтов сразу.
	AccountIDs []int64         `binding:"required,min=1" json:"account_ids"`
	Amount     decimal.Decimal `binding:"required"       json:"amount"`
	Message    string          `binding:"max=255"        json:"message"`
}

// Grant POST RouteGroup + PromotionRoute. Начисляет промо-деньги списку аккаунтов.
func (h *PromotionHandler) Grant(c *gin.Context) {
	var params GrantParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if len(params.AccountIDs) == 1 {
		result, err := h.svs.Grant(reqCtx, params.AccountIDs[0], params.Amount, params.Message)
		renderResult(c, result, err)
		return
	}

	results, err := h.svs.GrantMany(reqCtx, params.AccountIDs, params.Amount, params.Message)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}

	// по каждому аккаунту свой код итога: часть кампании могла не пройти.
	response := make(map[string]string, len(results))
	for accountID, result := range results {
		response[strconv.FormatInt(accountID, 10)] = result.Code.String()
	}
	c.JSON(http.StatusOK, response)
}
