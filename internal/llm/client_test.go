package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateSendsOptions(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"response":"  hello  ","done":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", zap.NewNop())
	text, err := c.Generate(context.Background(), "hi", Options{
		Model: "phi", JSON: true, Temperature: Temperature(0.7), NumPredict: 150, Site: "test",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	assert.Equal(t, "phi", got["model"])
	assert.Equal(t, false, got["stream"])
	assert.Equal(t, "json", got["format"])
	opts := got["options"].(map[string]any)
	assert.Equal(t, 0.7, opts["temperature"])
	assert.Equal(t, float64(150), opts["num_predict"])
}

func TestGenerateOmitsEmptyOptions(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"response":"ok"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, zap.NewNop()).Generate(context.Background(), "hi", Options{Model: "phi"})
	require.NoError(t, err)
	assert.NotContains(t, got, "format")
	assert.NotContains(t, got, "options")
}

func TestGenerateErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		_, err := NewClient(srv.URL, zap.NewNop()).Generate(context.Background(), "x", Options{})
		assert.ErrorIs(t, err, ErrBadStatus)
	})

	t.Run("empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":"   "}`))
		}))
		defer srv.Close()
		_, err := NewClient(srv.URL, zap.NewNop()).Generate(context.Background(), "x", Options{})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		_, err := NewClient(url, zap.NewNop()).Generate(context.Background(), "x", Options{})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()
		_, err := NewClient(srv.URL, zap.NewNop()).Generate(context.Background(), "x", Options{Timeout: 50 * time.Millisecond})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
