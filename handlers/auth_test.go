package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

type fakeUserStore struct {
	email    string
	password string
	user     models.User
	calls    int
}

func (f *fakeUserStore) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	f.calls++
	if email == f.email && password == f.password {
		u := f.user
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func newAuthRouter(store *fakeUserStore) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth", NewAuthHandler(store).Login)
	return r
}

func TestLoginSuccess(t *testing.T) {
	store := &fakeUserStore{
		email:    "ivanov@school.ru",
		password: "secret",
		user: models.User{
			ID:        7,
			Email:     "ivanov@school.ru",
			Role:      "teacher",
			FirstName: "Иван",
			LastName:  "Иванов",
		},
	}
	r := newAuthRouter(store)

	w := performRequest(r, http.MethodPost, "/api/auth", `{"email":"ivanov@school.ru","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeObject(t, w)
	if body["id"] != float64(7) || body["role"] != "teacher" {
		t.Errorf("unexpected profile: %v", body)
	}
	if body["firstName"] != "Иван" || body["lastName"] != "Иванов" {
		t.Errorf("unexpected name fields: %v", body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := &fakeUserStore{email: "ivanov@school.ru", password: "secret"}
	r := newAuthRouter(store)

	w := performRequest(r, http.MethodPost, "/api/auth", `{"email":"ivanov@school.ru","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeObject(t, w); body["error"] != "Неверный email или пароль" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	cases := map[string]string{
		"empty body":     `{}`,
		"no password":    `{"email":"ivanov@school.ru"}`,
		"no email":       `{"password":"secret"}`,
		"malformed body": `not json`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeUserStore{}
			r := newAuthRouter(store)

			w := performRequest(r, http.MethodPost, "/api/auth", payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if body := decodeObject(t, w); body["error"] != "Email и пароль обязательны" {
				t.Errorf("unexpected error message: %v", body["error"])
			}
			if store.calls != 0 {
				t.Errorf("store was queried %d times before validation", store.calls)
			}
		})
	}
}
