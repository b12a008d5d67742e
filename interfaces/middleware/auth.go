package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/token"
)

const userKey = "authUser"

type resUnauthorized struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	Errors     []any  `json:"errors"`
}

// Auth requires a valid access token, loads the user behind it and stores
// it on the request context.
func Auth(tokens *token.Manager, userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		credential := extractToken(ctx)
		if credential == "" {
			abort(ctx, "Unauthorized request")
			return
		}
		user, ok := resolveUser(ctx, tokens, userRepository, credential)
		if !ok {
			abort(ctx, "Invalid access token")
			return
		}
		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// OptionalAuth resolves the viewer when a credential is present but lets
// anonymous requests through. A presented credential must still be valid.
func OptionalAuth(tokens *token.Manager, userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		credential := extractToken(ctx)
		if credential == "" {
			ctx.Next()
			return
		}
		user, ok := resolveUser(ctx, tokens, userRepository, credential)
		if !ok {
			abort(ctx, "Invalid access token")
			return
		}
		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user stored by Auth or
// OptionalAuth.
func CurrentUser(ctx *gin.Context) (model.User, bool) {
	value, exists := ctx.Get(userKey)
	if !exists {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}

// ViewerID returns the authenticated user's id in hex, or the empty
// string for an anonymous viewer.
func ViewerID(ctx *gin.Context) string {
	user, ok := CurrentUser(ctx)
	if !ok {
		return ""
	}
	return user.ID.Hex()
}

func extractToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	authorization := ctx.Request.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func resolveUser(ctx *gin.Context, tokens *token.Manager, userRepository repository.IUser, credential string) (model.User, bool) {
	claims, err := tokens.VerifyAccess(credential)
	if err != nil {
		return model.User{}, false
	}
	id, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return model.User{}, false
	}
	user, err := userRepository.GetByID(ctx.Request.Context(), id)
	if err != nil {
		return model.User{}, false
	}
	return user, true
}

func abort(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, resUnauthorized{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Success:    false,
		Errors:     []any{},
	})
}
