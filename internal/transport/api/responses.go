package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/transport/api/middlewares"
)

// OperationResponse ответ на денежную операцию: код итога плюс балансы
// в минорных единицах. Форматирование валюты - забота клиента.
type OperationResponse struct {
	Status      string `json:"status"`
	Deposited   int64  `json:"deposited"`
	Promotional int64  `json:"promotional"`
}

func outcomeStatus(code domain.Outcome) int {
	switch code {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeAmountNotInteger,
		domain.OutcomeMaxDepositPerDayExceeded,
		domain.OutcomeMaxDepositedAmountExceeded:
		return http.StatusUnprocessableEntity
	case domain.OutcomeNotEnoughMoney:
		return http.StatusPaymentRequired
	case domain.OutcomeAuthorizationFailure:
		return http.StatusUnauthorized
	case domain.OutcomeInvalidAccount:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// renderResult отдает итог операции клиенту. Инфраструктурная ошибка
// дополнительно уходит в цепочку ошибок gin для логирования.
func renderResult(c *gin.Context, result domain.Result, err error) {
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}
	c.JSON(outcomeStatus(result.Code), OperationResponse{
		Status:      result.Code.String(),
		Deposited:   result.DepositedBalance,
		Promotional: result.PromotionalBalance,
	})
	c.Abort()
}

func getAccountIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentAccountIDKey)
}
