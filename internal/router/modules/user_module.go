package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-course-marketplace/internal/interface/http"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
)

// UserModule wires the end-user routes.
// Public: POST /user/signup, POST /user/signin
// Protected (user token): GET /user/purchases
type UserModule struct {
	Accounts  *handlers.AccountHandler
	Purchases *handlers.PurchaseHandler
	Tokens    middleware.TokenVerifier
}

func NewUserModule(accounts *handlers.AccountHandler, purchases *handlers.PurchaseHandler, tokens middleware.TokenVerifier) *UserModule {
	return &UserModule{Accounts: accounts, Purchases: purchases, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/user")
	g.POST("/signup", m.Accounts.Signup)
	g.POST("/signin", m.Accounts.Signin)

	auth := g.Group("/")
	auth.Use(middleware.UserGate(m.Tokens))
	{
		auth.GET("/purchases", m.Purchases.ListPurchases)
	}
}
