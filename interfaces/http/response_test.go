package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"streamhub/domain/apperror"
)

func perform(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w
}

func TestRespond_Envelope(t *testing.T) {
	w := perform(t, func(c *gin.Context) {
		respond(c, http.StatusCreated, gin.H{"id": "x"}, "created")
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"statusCode":201,"data":{"id":"x"},"message":"created","success":true}`, w.Body.String())
}

func TestRespondError_MapsKindToStatus(t *testing.T) {
	w := perform(t, func(c *gin.Context) {
		respondError(c, apperror.New(apperror.Forbidden, "not yours"))
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"statusCode":403,"message":"not yours","success":false,"errors":[]}`, w.Body.String())
}

func TestRespondError_HidesUnclassified(t *testing.T) {
	w := perform(t, func(c *gin.Context) {
		respondError(c, errors.New("dial tcp 10.0.0.5:27017: connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
