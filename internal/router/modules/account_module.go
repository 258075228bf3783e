package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/coinfollow/coinfollow-api/internal/interface/http"
)

// AccountModule wires signup/login routes.
// Both are public: the service returns the public user object and leaves
// session state to the client.
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)
}
