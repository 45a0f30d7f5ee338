package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapi/internal/domain"
	"todoapi/internal/repository"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

type singleUserStore struct {
	user *domain.User
}

func (s *singleUserStore) Create(ctx context.Context, u *domain.User) error {
	s.user = u
	return nil
}

func (s *singleUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.user == nil || s.user.Username != username {
		return nil, repository.ErrNotFound
	}
	return s.user, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := service.NewUserService(&singleUserStore{})
	if _, err := users.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	r := gin.New()
	r.GET("/protected", BasicAuth(users), func(c *gin.Context) {
		ident, _ := c.Get(IdentityKey)
		c.JSON(http.StatusOK, gin.H{"identity": ident})
	})
	return r
}

func TestBasicAuthMissingHeader(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); got != `Basic realm="todoapi"` {
		t.Fatalf("WWW-Authenticate = %q", got)
	}
}

func TestBasicAuthWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("alice", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestBasicAuthSuccessSetsIdentity(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("alice", "pw1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"identity":"alice"}` {
		t.Fatalf("body = %s", body)
	}
}
