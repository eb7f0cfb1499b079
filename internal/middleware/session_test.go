package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "tayta_session"

func newAuthRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(rdb, time.Hour)

	r := gin.New()
	r.GET("/api/user-info", SessionAuth(store, cookieName), func(c *gin.Context) {
		c.JSON(http.StatusOK, GetPrincipal(c))
	})
	return r, store
}

func getUserInfo(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/user-info", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuthSinCookie(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := getUserInfo(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No autorizado")
}

func TestSessionAuthCookieInvalida(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := getUserInfo(r, "no-existe")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthConSesionActiva(t *testing.T) {
	r, store := newAuthRouter(t)

	id, err := store.Create(context.Background(), dto.Principal{
		ID:             1,
		Usuario:        "admin",
		NombreCompleto: "Administrador General",
		Rol:            "administrador",
	})
	require.NoError(t, err)

	w := getUserInfo(r, id)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"usuario":"admin"`)
	assert.Contains(t, w.Body.String(), `"rol":"administrador"`)
}

func TestSessionAuthSesionDestruida(t *testing.T) {
	r, store := newAuthRouter(t)
	ctx := context.Background()

	id, err := store.Create(ctx, dto.Principal{ID: 1, Usuario: "admin"})
	require.NoError(t, err)
	require.NoError(t, store.Destroy(ctx, id))

	w := getUserInfo(r, id)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
