package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/interfaces/middleware"
	"streamhub/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	Subscribers(c *gin.Context)
	SubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized())
		return
	}

	state, err := h.subscriptionUsecase.Toggle(c.Request.Context(), c.Param("channelId"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, state, "Subscription toggled successfully")
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	subscribers, err := h.subscriptionUsecase.Subscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionUsecase.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
