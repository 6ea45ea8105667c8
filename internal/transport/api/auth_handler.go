package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/venuepay/internal/domain"
)

type AuthHandler struct {
	accountService AccountServicer
}

func NewAuthHandler(accountService AccountServicer) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

type LoginParams struct {
	AccountID int64  `binding:"required"               json:"account_id"`
	Username  string `binding:"required,min=1,max=64"  json:"username"`
	Password  string `binding:"required,min=6,max=255" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Авторизует аккаунт по учетным данным
// и выдает сессионный токен в заголовке Authorization.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	acc, token, err := h.accountService.Authorize(ctx, params.AccountID, params.Username, params.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAccount):
			c.AbortWithStatusJSON(http.StatusNotFound,
				gin.H{"status": domain.OutcomeInvalidAccount.String()})
		case errors.Is(err, domain.ErrPasswordMissMatch):
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"status": domain.OutcomeAuthorizationFailure.String()})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"status":     domain.OutcomeSuccess.String(),
		"account_id": acc.ID,
	})
}
