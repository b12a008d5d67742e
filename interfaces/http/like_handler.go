package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/interfaces/middleware"
	"streamhub/usecase"
)

type ILikeHandler interface {
	ToggleVideo(c *gin.Context)
	ToggleComment(c *gin.Context)
	ToggleTweet(c *gin.Context)
	LikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	state, err := h.likeUsecase.ToggleVideo(c.Request.Context(), c.Param("videoId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, state, "Video like toggled successfully")
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	state, err := h.likeUsecase.ToggleComment(c.Request.Context(), c.Param("commentId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, state, "Comment like toggled successfully")
}

func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	state, err := h.likeUsecase.ToggleTweet(c.Request.Context(), c.Param("tweetId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, state, "Tweet like toggled successfully")
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	videos, err := h.likeUsecase.LikedVideos(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
