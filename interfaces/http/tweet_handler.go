package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/interfaces/middleware"
	"streamhub/usecase"
)

type ITweetHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (h *TweetHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	var req dto.ReqContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Content is required")
		return
	}

	tweet, err := h.tweetUsecase.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := h.tweetUsecase.ListByUser(c.Request.Context(), c.Param("userId"), middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	var req dto.ReqContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Content is required")
		return
	}

	tweet, err := h.tweetUsecase.Update(c.Request.Context(), c.Param("tweetId"), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	if err := h.tweetUsecase.Delete(c.Request.Context(), c.Param("tweetId"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Tweet deleted successfully")
}
