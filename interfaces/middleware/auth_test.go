package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/model"
	"streamhub/infrastructure/token"
	"streamhub/interfaces/middleware"
)

type stubUserRepo struct {
	user model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	return model.User{}, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	if id == s.user.ID {
		return s.user, nil
	}
	return model.User{}, apperror.New(apperror.NotFound, "user not found")
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return model.User{}, nil
}

func (s *stubUserRepo) GetByLogin(ctx context.Context, username, email string) (model.User, error) {
	return model.User{}, nil
}

func (s *stubUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (model.User, error) {
	return model.User{}, nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	return nil
}

func (s *stubUserRepo) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.AssetRef) (model.User, error) {
	return model.User{}, nil
}

func (s *stubUserRepo) UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.AssetRef) (model.User, error) {
	return model.User{}, nil
}

func (s *stubUserRepo) AddWatchEntry(ctx context.Context, id, videoID bson.ObjectID) error {
	return nil
}

func setup(t *testing.T) (*token.Manager, *stubUserRepo, model.User, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := model.User{ID: bson.NewObjectID(), Username: "chai", Email: "chai@example.com"}
	tokens := token.NewManager("access", "refresh", 15*time.Minute, 240*time.Hour)
	access, err := tokens.IssueAccess(user)
	require.NoError(t, err)

	return tokens, &stubUserRepo{user: user}, user, access
}

func router(handler gin.HandlerFunc, mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/probe", mw, handler)
	return r
}

func probeHandler(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		c.JSON(http.StatusOK, gin.H{"viewer": user.Username})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewer": ""})
}

func TestAuth_BearerHeader(t *testing.T) {
	tokens, repo, _, access := setup(t)
	r := router(probeHandler, middleware.Auth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":"chai"`)
}

func TestAuth_Cookie(t *testing.T) {
	tokens, repo, _, access := setup(t)
	r := router(probeHandler, middleware.Auth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: access})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingCredential(t *testing.T) {
	tokens, repo, _, _ := setup(t)
	r := router(probeHandler, middleware.Auth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuth_BadCredential(t *testing.T) {
	tokens, repo, _, _ := setup(t)
	r := router(probeHandler, middleware.Auth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	tokens, repo, _, _ := setup(t)
	r := router(probeHandler, middleware.OptionalAuth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":""`)
}

func TestOptionalAuth_BadCredentialStillRejected(t *testing.T) {
	tokens, repo, _, _ := setup(t)
	r := router(probeHandler, middleware.OptionalAuth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_ResolvesViewer(t *testing.T) {
	tokens, repo, _, access := setup(t)
	r := router(probeHandler, middleware.OptionalAuth(tokens, repo))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":"chai"`)
}
