package user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sushinaruto/backend/internal/types/user"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byUsername  map[string]*user.User
	byEmail     map[string]*user.User
	lastLogin   []int64
	errOnCreate error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byUsername: make(map[string]*user.User),
		byEmail:    make(map[string]*user.User),
	}
}

func (r *stubUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	if r.errOnCreate != nil {
		return r.errOnCreate
	}
	u.ID = int64(len(r.byUsername) + 1)
	r.byUsername[u.Username] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindUserByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) TouchLastLogin(ctx context.Context, id int64) error {
	r.lastLogin = append(r.lastLogin, id)
	return nil
}

func TestServiceRegister(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo, []byte("secret"), time.Hour)

	t.Run("successful registration", func(t *testing.T) {
		u, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123", "password123")
		if err != nil {
			t.Fatal(err)
		}
		if u.Username != "alice" {
			t.Errorf("expected username 'alice', got '%s'", u.Username)
		}
		if u.ID == 0 {
			t.Errorf("expected assigned ID, got 0")
		}
		if u.Role != user.RoleCustomer {
			t.Errorf("expected customer role, got %s", u.Role)
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) != nil {
			t.Error("password hash does not match original password")
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "bob", "bob@example.com", "password123", "password124")
		if !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("password too short", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "bob", "bob@example.com", "short", "short")
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("email already exists", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "alice2", "alice@example.com", "password123", "password123")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("username already exists", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "alice", "alice2@example.com", "password123", "password123")
		if !errors.Is(err, ErrUserExists) {
			t.Errorf("expected ErrUserExists, got %v", err)
		}
	})

	t.Run("repo create returns error", func(t *testing.T) {
		repo := newStubUserRepo()
		repo.errOnCreate = errors.New("db error")
		svc := NewService(repo, []byte("secret"), time.Hour)

		_, err := svc.Register(context.Background(), "carol", "carol@example.com", "password123", "password123")
		if err == nil || err.Error() != "db error" {
			t.Errorf("expected db error, got %v", err)
		}
	})
}

func TestServiceAuthenticate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo, []byte("secret"), time.Hour)

	password := "password123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	alice := &user.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash), IsActive: true}
	repo.byUsername["alice"] = alice
	repo.byEmail["alice@example.com"] = alice

	t.Run("by username", func(t *testing.T) {
		token, err := svc.Authenticate(context.Background(), "alice", password)
		if err != nil {
			t.Fatal(err)
		}
		if token == "" {
			t.Error("expected non-empty token")
		}

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			return []byte("secret"), nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if claims.Subject != "alice" {
			t.Errorf("expected subject 'alice', got '%s'", claims.Subject)
		}
	})

	t.Run("by email", func(t *testing.T) {
		token, err := svc.Authenticate(context.Background(), "alice@example.com", password)
		if err != nil {
			t.Fatal(err)
		}
		if token == "" {
			t.Error("expected non-empty token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "alice", "wrongpass")
		if !errors.Is(err, ErrInvalidCreds) {
			t.Errorf("expected ErrInvalidCreds, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody", password)
		if !errors.Is(err, ErrInvalidCreds) {
			t.Errorf("expected ErrInvalidCreds, got %v", err)
		}
	})

	t.Run("deactivated user", func(t *testing.T) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		repo.byUsername["bob"] = &user.User{ID: 2, Username: "bob", PasswordHash: string(hash), IsActive: false}

		_, err := svc.Authenticate(context.Background(), "bob", password)
		if !errors.Is(err, ErrInvalidCreds) {
			t.Errorf("expected ErrInvalidCreds, got %v", err)
		}
	})

	t.Run("last login recorded", func(t *testing.T) {
		if len(repo.lastLogin) == 0 {
			t.Error("expected last login to be touched")
		}
	})
}

func TestHandlerSignup(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo, []byte("secret"), time.Hour)
	handler := NewHandler(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"password123","confirm_password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Signup(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if auth := resp.Header.Get("Authorization"); !strings.HasPrefix(auth, "Bearer ") {
		t.Errorf("expected bearer token in Authorization header, got %q", auth)
	}
}

func TestHandlerLoginInvalidCreds(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo, []byte("secret"), time.Hour)
	handler := NewHandler(svc)

	body := `{"identifier":"nobody","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}
