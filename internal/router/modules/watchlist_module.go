package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/coinfollow/coinfollow-api/internal/interface/http"
)

// WatchlistModule wires follow/unfollow mutations and the membership/listing
// queries.
// PATCH /api/watchlist/follow, PATCH /api/watchlist/unfollow
// GET /api/watchlist/status, GET /api/watchlist
type WatchlistModule struct {
	Handler *handlers.WatchlistHandler
}

func NewWatchlistModule(h *handlers.WatchlistHandler) *WatchlistModule {
	return &WatchlistModule{Handler: h}
}

func (m *WatchlistModule) Register(rg *gin.RouterGroup) {
	rg.PATCH("/watchlist/follow", m.Handler.Follow)
	rg.PATCH("/watchlist/unfollow", m.Handler.Unfollow)
	rg.GET("/watchlist/status", m.Handler.FollowStatus)
	rg.GET("/watchlist", m.Handler.List)
}
