package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/venuepay/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	LoginRoute        = "/account/login"
	BalanceRoute      = "/account/balance"
	DepositRoute      = "/account/deposit"
	WithdrawRoute     = "/account/withdraw"
	PayRoute          = "/account/pay"
	TransactionsRoute = "/account/transactions"
	PromotionRoute    = "/admin/promotion"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	AccountService   AccountServicer
	PromotionService PromotionServicer
	JWTSecretKey     []byte
	AdminKey         string
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AccountService)
	accountHandler := NewAccountHandler(args.AccountService)
	promotionHandler := NewPromotionHandler(args.PromotionService)

	api := r.Group(RouteGroup)

	api.POST(LoginRoute, authHandler.Login)

	// начисление промо доступно только админке, сессия аккаунта не нужна.
	api.POST(PromotionRoute, middlewares.AdminRequired(args.AdminKey), promotionHandler.Grant)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного аккаунта.
	api.GET(BalanceRoute, accountHandler.Balance)
	api.POST(DepositRoute, accountHandler.Deposit)
	api.POST(WithdrawRoute, accountHandler.Withdraw)
	api.POST(PayRoute, accountHandler.Pay)
	api.GET(TransactionsRoute, accountHandler.Transactions)

	return r
}
