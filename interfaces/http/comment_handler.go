package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/interfaces/middleware"
	"streamhub/usecase"
)

type ICommentHandler interface {
	ListByVideo(c *gin.Context)
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	var req dto.ReqPage
	if err := c.ShouldBindQuery(&req); err != nil {
		respondInvalid(c, "Invalid query parameters")
		return
	}

	page, err := h.commentUsecase.ListByVideo(c.Request.Context(), c.Param("videoId"), middleware.ViewerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c *gin.Context) {
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

	comment, err := h.commentUsecase.Add(c.Request.Context(), c.Param("videoId"), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
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

	comment, err := h.commentUsecase.Update(c.Request.Context(), c.Param("commentId"), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	if err := h.commentUsecase.Delete(c.Request.Context(), c.Param("commentId"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Comment deleted successfully")
}
