package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coinfollow/coinfollow-api/internal/application"
	"github.com/coinfollow/coinfollow-api/pkg/response"
	"github.com/coinfollow/coinfollow-api/pkg/validation"
)

type WatchlistHandler struct {
	Svc    *application.WatchlistService
	Logger *logrus.Logger
}

func NewWatchlistHandler(svc *application.WatchlistService, logger *logrus.Logger) *WatchlistHandler {
	return &WatchlistHandler{Svc: svc, Logger: logger}
}

type followRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Coin   string `json:"coin" binding:"required,symbol"`
}

type statusQuery struct {
	UserID string `form:"user_id" binding:"required,uuid"`
	Coin   string `form:"coin" binding:"required,symbol"`
}

type listQuery struct {
	UserID string `form:"user_id" binding:"required,uuid"`
}

// Follow PATCH /api/watchlist/follow
func (h *WatchlistHandler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "user id and coin are required", validation.ToDetails(err)))
		return
	}

	if err := h.Svc.Follow(c.Request.Context(), req.UserID, req.Coin); err != nil {
		h.writeMutationError(c, err, "user not found or coin already followed", "error updating followed coins")
		return
	}
	response.JSON(c, response.Success[any](c, http.StatusOK, gin.H{"followed": true}, "coin added successfully", nil))
}

// Unfollow PATCH /api/watchlist/unfollow
func (h *WatchlistHandler) Unfollow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "user id and coin are required", validation.ToDetails(err)))
		return
	}

	if err := h.Svc.Unfollow(c.Request.Context(), req.UserID, req.Coin); err != nil {
		h.writeMutationError(c, err, "user not found or coin not followed", "error removing followed coin")
		return
	}
	response.JSON(c, response.Success[any](c, http.StatusOK, gin.H{"followed": false}, "coin removed successfully", nil))
}

// FollowStatus GET /api/watchlist/status?user_id=&coin=
func (h *WatchlistHandler) FollowStatus(c *gin.Context) {
	var q statusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "user id and coin are required", validation.ToDetails(err)))
		return
	}

	follows, err := h.Svc.CheckFollowStatus(c.Request.Context(), q.UserID, q.Coin)
	if err != nil {
		h.writeQueryError(c, err, "error checking follow status")
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, gin.H{"follows_coin": follows}, "follow status", nil))
}

// List GET /api/watchlist?user_id=
func (h *WatchlistHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "user id is required", validation.ToDetails(err)))
		return
	}

	coins, err := h.Svc.ListFollowed(c.Request.Context(), q.UserID)
	if err != nil {
		h.writeQueryError(c, err, "error fetching followed coins")
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, gin.H{"followed_coins": coins}, "followed coins", nil))
}

func (h *WatchlistHandler) writeMutationError(c *gin.Context, err error, notModifiedMsg, storageMsg string) {
	switch {
	case errors.Is(err, application.ErrNotModified):
		response.JSON(c, response.Error[any](c, http.StatusNotFound, notModifiedMsg, nil))
	case errors.Is(err, application.ErrInvalidArgument):
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "user id and coin are required", nil))
	default:
		response.JSON(c, response.Error[any](c, http.StatusInternalServerError, storageMsg, nil))
	}
}

func (h *WatchlistHandler) writeQueryError(c *gin.Context, err error, storageMsg string) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.JSON(c, response.Error[any](c, http.StatusNotFound, "user not found", nil))
	case errors.Is(err, application.ErrInvalidArgument):
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "user id and coin are required", nil))
	default:
		response.JSON(c, response.Error[any](c, http.StatusInternalServerError, storageMsg, nil))
	}
}
