package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/venuepay/internal/domain"
	"github.com/fsdevblog/venuepay/internal/service"
)

type AccountHandler struct {
	svs AccountServicer
}

func NewAccountHandler(svs AccountServicer) *AccountHandler {
	return &AccountHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Deposited   int64 `json:"deposited"`
	Multiplied  int64 `json:"multiplied"`
	Promotional int64 `json:"promotional"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *AccountHandler) Balance(c *gin.Context) {
	currentAccountID := getAccountIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	snap, err := h.svs.GetBalances(reqCtx, currentAccountID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAccount) {
			c.AbortWithStatusJSON(http.StatusNotFound,
				gin.H{"status": domain.OutcomeInvalidAccount.String()})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Deposited:   snap.Deposited,
		Multiplied:  snap.Multiplied,
		Promotional: snap.Promotional,
	})
}

type AmountParams struct {
	// Amount в минорных единицах валюты. Принимаем decimal, а не int:
	// нецелая сумма - валидный ввод, на который ядро отвечает кодом
	// amount_not_integer, а не ошибкой парсинга.
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// Deposit POST RouteGroup + DepositRoute.
func (h *AccountHandler) Deposit(c *gin.Context) {
	currentAccountID := getAccountIDFromContext(c)

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.Deposit(reqCtx, currentAccountID, params.Amount)
	renderResult(c, result, err)
}

// Withdraw POST RouteGroup + WithdrawRoute. Выплата денег выполняется
// провайдером выплат асинхронно, после успешного списания.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	currentAccountID := getAccountIDFromContext(c)

	var params AmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.Withdraw(reqCtx, currentAccountID, params.Amount)
	renderResult(c, result, err)
}

type PayParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
	// MultiplierAllowed присылает заведение: ядро не знает, когда оно открылось
	// и насколько занят бар.
	MultiplierAllowed bool   `json:"multiplier_allowed"`
	Message           string `binding:"max=255" json:"message"`
}

type PayResponse struct {
	OperationResponse
	PromotionalDraw int64 `json:"promotional_draw"`
	DepositedDraw   int64 `json:"deposited_draw"`
}

// Pay POST RouteGroup + PayRoute. Авторизация запроса на оплату от заведения.
func (h *AccountHandler) Pay(c *gin.Context) {
	currentAccountID := getAccountIDFromContext(c)

	var params PayParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.AuthorizePayment(reqCtx, currentAccountID, service.AuthorizePaymentArgs{
		Amount:            params.Amount,
		MultiplierAllowed: params.MultiplierAllowed,
		Message:           params.Message,
	})
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}

	c.JSON(outcomeStatus(result.Code), &PayResponse{
		OperationResponse: OperationResponse{
			Status:      result.Code.String(),
			Deposited:   result.DepositedBalance,
			Promotional: result.PromotionalBalance,
		},
		PromotionalDraw: result.PromotionalDraw,
		DepositedDraw:   result.DepositedDraw,
	})
}

type TransactionsResponseItem struct {
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	Source    string `json:"source"`
	Amount    int64  `json:"amount"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Transactions GET RouteGroup + TransactionsRoute. История проводок, новые первыми.
func (h *AccountHandler) Transactions(c *gin.Context) {
	currentAccountID := getAccountIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.Transactions(reqCtx, currentAccountID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]TransactionsResponseItem, len(transactions))
	for i, t := range transactions {
		response[i] = TransactionsResponseItem{
			Reference: t.Reference.String(),
			Kind:      string(t.Kind),
			Source:    string(t.Source),
			Amount:    t.Amount,
			Message:   t.Message,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}
