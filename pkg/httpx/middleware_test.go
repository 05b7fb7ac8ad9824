package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskapi/pkg/httpx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) httpx.Response {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp httpx.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

type stubValidator map[string]string

func (s stubValidator) Validate(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func TestAuthnMiddleware(t *testing.T) {
	var called bool
	var seen string
	h := httpx.AuthnMiddleware(stubValidator{"good": "user-1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = httpx.UserIDFromContext(r.Context())
	}))

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic good", "Bearer bad", "good"} {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := serve(h, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, header)
		require.False(t, called, header)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
		resp := decode(t, rec)
		require.False(t, resp.Success)
		require.Equal(t, "Not authorized", resp.Message)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	require.Equal(t, "user-1", seen)
}

type loginBody struct {
	Email    string `json:"useremail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (b *loginBody) Normalize() { b.Email = validx.NormalizeEmail(b.Email) }

func TestValidateJSON(t *testing.T) {
	var got *loginBody
	h := httpx.ValidateJSON[loginBody](validx.New())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = httpx.ValidatedBody[loginBody](r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	post := func(body string) *httptest.ResponseRecorder {
		got = nil
		return serve(h, httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body)))
	}

	rec := post(`{"useremail":" Bob@Example.com","password":"pw"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	require.Equal(t, "bob@example.com", got.Email)

	rec = post(`{"useremail":"nope","password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, got)
	resp := decode(t, rec)
	require.Equal(t, "Validation errors", resp.Message)
	require.Len(t, resp.Errors, 2)

	for _, bad := range []string{`{"useremail":`, `[1,2]`, `{"a":1} {"b":2}`} {
		rec = post(bad)
		require.Equal(t, http.StatusBadRequest, rec.Code, bad)
		require.Nil(t, got)
		require.Equal(t, "Invalid JSON in request body", decode(t, rec).Message)
	}

	rec = post(``)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Validation errors", decode(t, rec).Message)
}

func TestRecoverer(t *testing.T) {
	boom := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("kaboom") })

	rec := serve(httpx.Recoverer(false)(boom), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	require.Equal(t, "Server error", resp.Message)
	require.Empty(t, resp.Error)

	rec = serve(httpx.Recoverer(true)(boom), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "kaboom", decode(t, rec).Error)
}

func TestWriteList(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteList[string](rec, nil)

	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}
