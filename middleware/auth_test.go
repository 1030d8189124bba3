package middleware

import (
	"Kudos/pkg/context"
	"Kudos/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap())
	r.GET("/me", Auth([]byte(secret)), func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestAuth(t *testing.T) {
	r := newEngine("secret")
	valid, err := jwt.GenerateToken([]byte("secret"), 7, jwt.TokenAccess, time.Hour)
	require.NoError(t, err)
	short, err := jwt.GenerateToken([]byte("secret"), 7, jwt.TokenAccess, time.Minute)
	require.NoError(t, err)
	forged, err := jwt.GenerateToken([]byte("other"), 7, jwt.TokenAccess, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		code    int
		refresh bool
	}{
		{"missing", "", http.StatusUnauthorized, false},
		{"not bearer", "Token " + valid, http.StatusUnauthorized, false},
		{"bad signature", "Bearer " + forged, http.StatusUnauthorized, false},
		{"valid", "Bearer " + valid, http.StatusOK, false},
		{"about to expire", "Bearer " + short, http.StatusOK, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
			}
			assert.Equal(t, tc.refresh, w.Header().Get("X-New-Access-Token") != "")
		})
	}
}

func TestGinZap_Recover(t *testing.T) {
	r := newEngine("secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
