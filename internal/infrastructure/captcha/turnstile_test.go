package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/joanpuche05/fisioterapiavilassar/internal/shared/config"
)

func newVerifier(secret, verifyURL string) *TurnstileVerifier {
	return NewTurnstileVerifier(sharedConfig.CaptchaConfig{
		SecretKey: secret,
		VerifyURL: verifyURL,
	})
}

func TestVerify(t *testing.T) {
	t.Run("accepts a valid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "secret-key", r.PostForm.Get("secret"))
			assert.Equal(t, "the-token", r.PostForm.Get("response"))
			assert.Equal(t, "203.0.113.9", r.PostForm.Get("remoteip"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "hostname": "example.com"}`))
		}))
		defer server.Close()

		v := newVerifier("secret-key", server.URL)

		ok, err := v.Verify(context.Background(), "the-token", "203.0.113.9")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects when endpoint reports failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
		}))
		defer server.Close()

		v := newVerifier("secret-key", server.URL)

		ok, err := v.Verify(context.Background(), "bad-token", "")
		assert.False(t, ok)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid-input-response")
	})

	t.Run("fails closed on network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		v := newVerifier("secret-key", server.URL)

		ok, err := v.Verify(context.Background(), "the-token", "")
		assert.False(t, ok)
		assert.Error(t, err)
	})

	t.Run("fails closed on malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		v := newVerifier("secret-key", server.URL)

		ok, err := v.Verify(context.Background(), "the-token", "")
		assert.False(t, ok)
		assert.Error(t, err)
	})

	t.Run("fails closed without a configured secret", func(t *testing.T) {
		v := newVerifier("", "http://127.0.0.1:0")

		ok, err := v.Verify(context.Background(), "the-token", "")
		assert.False(t, ok)
		assert.Error(t, err)
	})

	t.Run("rejects an empty token locally", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		v := newVerifier("secret-key", server.URL)

		ok, err := v.Verify(context.Background(), "", "")
		assert.False(t, ok)
		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestNewTurnstileVerifier(t *testing.T) {
	v := NewTurnstileVerifier(sharedConfig.CaptchaConfig{SecretKey: "s"})
	assert.Equal(t, defaultVerifyURL, v.verifyURL)
	assert.NotNil(t, v.client)
}
