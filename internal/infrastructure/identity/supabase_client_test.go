package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseAdmin_UpdateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/u-1", r.URL.Path)
		assert.Equal(t, "svc", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer svc", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nuevo@bapesu.co", body["email"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewSupabaseAdmin(srv.URL+"/", "svc").UpdateEmail(context.Background(), "u-1", "nuevo@bapesu.co"))
}

func TestSupabaseAdmin_DeleteUser(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		if calls == 1 {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewSupabaseAdmin(srv.URL, "svc")
	require.NoError(t, c.DeleteUser(context.Background(), "u-1"))
	require.NoError(t, c.DeleteUser(context.Background(), "u-1"))
}

func TestSupabaseAdmin_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"invalid key"}`))
	}))
	defer srv.Close()

	err := NewSupabaseAdmin(srv.URL, "svc").UpdateEmail(context.Background(), "u-1", "a@b.co")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	assert.Error(t, NewSupabaseAdmin("", "").DeleteUser(context.Background(), "u-1"))
}
