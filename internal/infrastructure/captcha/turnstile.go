// Package captcha verifies Cloudflare Turnstile tokens against the
// siteverify endpoint. Any failure, network or otherwise, counts as an
// invalid token: the verifier fails closed.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	sharedConfig "github.com/joanpuche05/fisioterapiavilassar/internal/shared/config"
)

const defaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// TurnstileVerifier handles Turnstile token verification
type TurnstileVerifier struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

// NewTurnstileVerifier creates a new Turnstile verifier from config
func NewTurnstileVerifier(cfg sharedConfig.CaptchaConfig) *TurnstileVerifier {
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}
	return &TurnstileVerifier{
		secretKey: cfg.SecretKey,
		verifyURL: verifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// siteverifyResponse represents the response from the Turnstile API
type siteverifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify checks a Turnstile token. remoteIP is optional and forwarded to the
// endpoint when present.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if v.secretKey == "" {
		return false, fmt.Errorf("turnstile secret key not configured")
	}

	if token == "" {
		return false, fmt.Errorf("turnstile token is required")
	}

	data := url.Values{}
	data.Set("secret", v.secretKey)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to verify turnstile token: %w", err)
	}
	defer resp.Body.Close()

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to parse siteverify response: %w", err)
	}

	if !result.Success {
		return false, fmt.Errorf("turnstile verification failed: %v", result.ErrorCodes)
	}

	return true, nil
}
