package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/logger"
	"streamhub/interfaces/middleware"
	"streamhub/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	RefreshToken(c *gin.Context)
	ChangePassword(c *gin.Context)
	CurrentUser(c *gin.Context)
	UpdateAccount(c *gin.Context)
	UpdateAvatar(c *gin.Context)
	UpdateCoverImage(c *gin.Context)
	ChannelProfile(c *gin.Context)
	WatchHistory(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
	app         configuration.App
}

func NewUserHandler(userUsecase usecase.IUserUsecase, app configuration.App) IUserHandler {
	return &UserHandler{userUsecase: userUsecase, app: app}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.ReqRegister
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding request")
		respondInvalid(c, "All fields are required")
		return
	}

	avatarPath, err := stageFile(c, "avatar", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading avatar file")
		return
	}
	defer removeStaged(avatarPath)
	if avatarPath == "" {
		respondInvalid(c, "Avatar file is required")
		return
	}

	coverPath, err := stageFile(c, "coverImage", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading cover image file")
		return
	}
	defer removeStaged(coverPath)

	user, err := h.userUsecase.Register(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, user, "User registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding request")
		respondInvalid(c, "Password is required")
		return
	}

	data, err := h.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, data.AccessToken, data.RefreshToken)
	respond(c, http.StatusOK, data, "User logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}
	h.clearAuthCookies(c)
	respond(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

func (h *UserHandler) RefreshToken(c *gin.Context) {
	presented, _ := c.Cookie("refreshToken")
	if presented == "" {
		var req dto.ReqRefreshToken
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.userUsecase.Refresh(c.Request.Context(), presented)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, pair, "Access token refreshed")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	var req dto.ReqChangePassword
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Old and new password are required")
		return
	}

	if err := h.userUsecase.ChangePassword(c.Request.Context(), user.ID, req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}
	respond(c, http.StatusOK, user, "User fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	var req dto.ReqUpdateAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Full name and email are required")
		return
	}

	updated, err := h.userUsecase.UpdateAccount(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	path, err := stageFile(c, "avatar", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading avatar file")
		return
	}
	defer removeStaged(path)
	if path == "" {
		respondInvalid(c, "Avatar file is required")
		return
	}

	updated, err := h.userUsecase.UpdateAvatar(c.Request.Context(), user, path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	path, err := stageFile(c, "coverImage", h.app.TempDir)
	if err != nil {
		respondInvalid(c, "Error reading cover image file")
		return
	}
	defer removeStaged(path)
	if path == "" {
		respondInvalid(c, "Cover image file is required")
		return
	}

	updated, err := h.userUsecase.UpdateCoverImage(c.Request.Context(), user, path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated, "Cover image updated successfully")
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := h.userUsecase.ChannelProfile(c.Request.Context(), c.Param("username"), middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	history, err := h.userUsecase.WatchHistory(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, history, "Watch history fetched successfully")
}

func (h *UserHandler) setAuthCookies(c *gin.Context, access, refresh string) {
	c.SetCookie("accessToken", access, int(h.app.AccessTokenTTL.Seconds()), "/", "", h.app.SecureCookies, true)
	c.SetCookie("refreshToken", refresh, int(h.app.RefreshTokenTTL.Seconds()), "/", "", h.app.SecureCookies, true)
}

func (h *UserHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", h.app.SecureCookies, true)
	c.SetCookie("refreshToken", "", -1, "/", "", h.app.SecureCookies, true)
}
