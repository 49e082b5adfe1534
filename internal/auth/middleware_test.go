package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procoat-sa/site-backend/internal/auth"
)

type stubVerifier struct {
	uid string
	err error
}

func (s stubVerifier) VerifyIDToken(context.Context, string) (*fbauth.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &fbauth.Token{UID: s.uid}, nil
}

func newProtectedRouter(verifier auth.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/mutate", auth.RequireUser(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": auth.UserID(c)})
	})
	return r
}

func do(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireUser_MissingToken(t *testing.T) {
	r := newProtectedRouter(stubVerifier{uid: "admin"})

	rr := do(r, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), auth.ErrMsgNotAuthenticated)
}

func TestRequireUser_MalformedHeader(t *testing.T) {
	r := newProtectedRouter(stubVerifier{uid: "admin"})

	rr := do(r, "Token abc123")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireUser_InvalidToken(t *testing.T) {
	r := newProtectedRouter(stubVerifier{err: errors.New("expired")})

	rr := do(r, "Bearer expired-token")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), auth.ErrMsgNotAuthenticated)
}

func TestRequireUser_NilVerifier(t *testing.T) {
	r := newProtectedRouter(nil)

	rr := do(r, "Bearer anything")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireUser_SetsUserID(t *testing.T) {
	r := newProtectedRouter(stubVerifier{uid: "admin-1"})

	rr := do(r, "Bearer good-token")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "admin-1")
}
