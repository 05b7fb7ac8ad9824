package tasksdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T, h http.HandlerFunc) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL + "/")
}

func writeEnvelope(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRegister_DecodesEnvelope(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.com", body["useremail"])

		writeEnvelope(w, http.StatusCreated, map[string]any{
			"success": true,
			"data": map[string]string{
				"id": "01J8Z3Q4V7K2M9N5P6R8S0T1W3", "username": "alice",
				"useremail": "alice@example.com", "token": "tok",
			},
		})
	})

	s, err := c.RegisterAndAuthenticate(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "01J8Z3Q4V7K2M9N5P6R8S0T1W3", s.UserID())
	require.Equal(t, "tok", s.Token())
}

func TestSession_SendsBearerToken(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   1,
			"data":    []map[string]string{{"id": "t1", "title": "Write report"}},
		})
	})

	tasks, err := c.NewSession("u1", "tok").ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Write report", tasks[0].Title)
}

func TestErrors_ValidationEnvelope(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Validation errors",
			"errors":  []map[string]string{{"field": "title", "message": "Title is required"}},
		})
	})

	_, err := c.NewSession("u1", "tok").CreateTask(context.Background(), CreateTaskRequest{})
	require.Error(t, err)
	require.True(t, IsBadRequest(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Validation errors", apiErr.Message)
	msg, ok := apiErr.FieldMessage("title")
	require.True(t, ok)
	require.Equal(t, "Title is required", msg)
}

func TestErrors_NonEnvelopeBody(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := c.NewSession("u1", "tok").GetTask(context.Background(), "t1")
	require.Error(t, err)
	require.Equal(t, http.StatusBadGateway, StatusCode(err))
	require.False(t, IsNotFound(err))
	require.Contains(t, err.Error(), "Bad Gateway")
}

func TestErrors_NotFoundAndUnauthorized(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
			return
		}
		writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false, "message": "Task not found with this ID"})
	})

	err := c.NewSession("u1", "tok").DeleteTask(context.Background(), "t1")
	require.True(t, IsNotFound(err))

	_, err = c.NewSession("u1", "expired").ListTasks(context.Background())
	require.True(t, IsUnauthorized(err))
}

func TestSession_RequiresToken(t *testing.T) {
	c := NewSDKClient("http://127.0.0.1:0")
	_, err := c.NewSession("u1", "").ListUsers(context.Background())
	require.Error(t, err)
	require.Zero(t, StatusCode(err))
}
