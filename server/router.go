package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"streamhub/domain/repository"
	"streamhub/infrastructure/token"
	httpHandler "streamhub/interfaces/http"
	"streamhub/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	tweetHandler httpHandler.ITweetHandler,
	commentHandler httpHandler.ICommentHandler,
	likeHandler httpHandler.ILikeHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	healthHandler httpHandler.IHealthHandler,
	tokens *token.Manager,
	userRepository repository.IUser,
	allowOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.Auth(tokens, userRepository)
	optionalAuth := middleware.OptionalAuth(tokens, userRepository)

	v1 := router.Group("/api/v1")

	v1.GET("/healthcheck", healthHandler.Check)

	users := v1.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/refresh-token", userHandler.RefreshToken)
		users.POST("/logout", auth, userHandler.Logout)
		users.POST("/change-password", auth, userHandler.ChangePassword)
		users.GET("/current-user", auth, userHandler.CurrentUser)
		users.PATCH("/update-account", auth, userHandler.UpdateAccount)
		users.PATCH("/avatar", auth, userHandler.UpdateAvatar)
		users.PATCH("/cover-image", auth, userHandler.UpdateCoverImage)
		users.GET("/c/:username", optionalAuth, userHandler.ChannelProfile)
		users.GET("/history", auth, userHandler.WatchHistory)
	}

	videos := v1.Group("/videos")
	{
		videos.GET("", optionalAuth, videoHandler.Feed)
		videos.POST("", auth, videoHandler.Publish)
		videos.GET("/:videoId", optionalAuth, videoHandler.Get)
		videos.PATCH("/:videoId", auth, videoHandler.Update)
		videos.DELETE("/:videoId", auth, videoHandler.Delete)
		videos.PATCH("/toggle/publish/:videoId", auth, videoHandler.TogglePublish)
	}

	tweets := v1.Group("/tweets")
	{
		tweets.POST("", auth, tweetHandler.Create)
		tweets.GET("/user/:userId", optionalAuth, tweetHandler.ListByUser)
		tweets.PATCH("/:tweetId", auth, tweetHandler.Update)
		tweets.DELETE("/:tweetId", auth, tweetHandler.Delete)
	}

	comments := v1.Group("/comments")
	{
		comments.GET("/:videoId", optionalAuth, commentHandler.ListByVideo)
		comments.POST("/:videoId", auth, commentHandler.Add)
		comments.PATCH("/c/:commentId", auth, commentHandler.Update)
		comments.DELETE("/c/:commentId", auth, commentHandler.Delete)
	}

	likes := v1.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideo)
		likes.POST("/toggle/c/:commentId", likeHandler.ToggleComment)
		likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweet)
		likes.GET("/videos", likeHandler.LikedVideos)
	}

	subscriptions := v1.Group("/subscriptions", auth)
	{
		subscriptions.POST("/c/:channelId", subscriptionHandler.Toggle)
		subscriptions.GET("/c/:channelId", subscriptionHandler.Subscribers)
		subscriptions.GET("/u/:subscriberId", subscriptionHandler.SubscribedChannels)
	}

	dashboard := v1.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/videos", dashboardHandler.Videos)
	}

	return router
}
