package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/infrastructure/configuration"
	"streamhub/interfaces/middleware"
	"streamhub/usecase"
)

type IVideoHandler interface {
	Feed(c *gin.Context)
	Publish(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
	app          configuration.App
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase, app configuration.App) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase, app: app}
}

func (h *VideoHandler) Feed(c *gin.Context) {
	var req dto.ReqVideoFeed
	if err := c.ShouldBindQuery(&req); err != nil {
		respondInvalid(c, "Invalid query parameters")
		return
	}

	page, err := h.videoUsecase.Feed(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "Videos fetched successfully")
}

func (h *VideoHandler) Publish(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	var req dto.ReqPublishVideo
	if err := c.ShouldBind(&req); err != nil {
		respondInvalid(c, "Title and description are required")
		return
	}

	videoPath, err := stageFile(c, "videoFile", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading video file")
		return
	}
	defer removeStaged(videoPath)
	if videoPath == "" {
		respondInvalid(c, "Video file is required")
		return
	}

	thumbnailPath, err := stageFile(c, "thumbnail", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading thumbnail file")
		return
	}
	defer removeStaged(thumbnailPath)
	if thumbnailPath == "" {
		respondInvalid(c, "Thumbnail file is required")
		return
	}

	video, err := h.videoUsecase.Publish(c.Request.Context(), user.ID, req, videoPath, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) Get(c *gin.Context) {
	var viewer *model.User
	if user, ok := middleware.CurrentUser(c); ok {
		viewer = &user
	}

	detail, err := h.videoUsecase.Get(c.Request.Context(), c.Param("videoId"), middleware.ViewerID(c), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, detail, "Video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	var req dto.ReqUpdateVideo
	if err := c.ShouldBind(&req); err != nil {
		respondInvalid(c, "Title and description are required")
		return
	}

	thumbnailPath, err := stageFile(c, "thumbnail", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading thumbnail file")
		return
	}
	defer removeStaged(thumbnailPath)

	video, err := h.videoUsecase.Update(c.Request.Context(), c.Param("videoId"), user.ID, req, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	if err := h.videoUsecase.Delete(c.Request.Context(), c.Param("videoId"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), c.Param("videoId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Publish status toggled successfully")
}
