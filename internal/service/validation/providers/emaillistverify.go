package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/amarasa/lead-shield/internal/domain/errors"
	"github.com/amarasa/lead-shield/internal/metrics"
)

const emailProviderName = "EmailListVerify"

// EmailListVerifyClient implements EmailVerificationClient against the
// EmailListVerify HTTP API.
type EmailListVerifyClient struct {
	config EmailListVerifyConfig
	client *http.Client
	logger *zap.Logger
}

// EmailListVerifyConfig contains configuration for the email provider client
type EmailListVerifyConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

// NewEmailListVerifyClient creates a new EmailListVerify client instance
func NewEmailListVerifyClient(config EmailListVerifyConfig, logger *zap.Logger) *EmailListVerifyClient {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.emaillistverify.com"
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}

	httpClient := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &EmailListVerifyClient{
		config: config,
		client: httpClient,
		logger: logger,
	}
}

// verifyResponse is the provider's verification payload
type verifyResponse struct {
	Data struct {
		Status string `json:"status"`
	} `json:"data"`
}

// creditsResponse is the provider's quota payload
type creditsResponse struct {
	CreditsLeft *int `json:"creditsLeft"`
}

// VerifyEmail submits an email address and returns the raw status code
func (c *EmailListVerifyClient) VerifyEmail(ctx context.Context, apiKey, email string) (string, error) {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return "", errors.NewInternalError(ErrCodeInvalidRequest,
			fmt.Sprintf("%s: failed to marshal request", emailProviderName)).WithCause(err)
	}

	verifyURL := fmt.Sprintf("%s/v1/verify", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.NewInternalError(ErrCodeInvalidRequest,
			fmt.Sprintf("%s: failed to create request", emailProviderName)).WithCause(err)
	}
	c.addHeaders(req, apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "verify", "transport_error").Inc()
		c.logger.Warn("email verification request failed",
			zap.String("operation", "verify"),
			zap.Error(err))
		return "", errors.NewTransportError(ErrCodeConnectionFailed,
			fmt.Sprintf("%s: request failed", emailProviderName)).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "verify", "http_error").Inc()
		c.logger.Warn("email verification returned HTTP error",
			zap.String("operation", "verify"),
			zap.Int("status_code", resp.StatusCode))
		return "", c.handleHTTPError(resp)
	}

	var payload verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "verify", "invalid_response").Inc()
		c.logger.Warn("email verification response unparseable",
			zap.String("operation", "verify"),
			zap.Error(err))
		return "", errors.NewExternalError(ErrCodeInvalidResponse,
			fmt.Sprintf("%s: failed to parse response", emailProviderName)).WithCause(err)
	}

	// A payload without the status field is a verification failure, never
	// a silent pass.
	if payload.Data.Status == "" {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "verify", "invalid_response").Inc()
		return "", errors.NewExternalError(ErrCodeInvalidResponse,
			fmt.Sprintf("%s: response is missing the status field", emailProviderName))
	}

	metrics.ProviderRequests.WithLabelValues(emailProviderName, "verify", "ok").Inc()
	return payload.Data.Status, nil
}

// Credits returns the remaining verification credits on the account
func (c *EmailListVerifyClient) Credits(ctx context.Context, apiKey string) (int, error) {
	creditsURL := fmt.Sprintf("%s/v1/credits", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, creditsURL, nil)
	if err != nil {
		return 0, errors.NewInternalError(ErrCodeInvalidRequest,
			fmt.Sprintf("%s: failed to create request", emailProviderName)).WithCause(err)
	}
	c.addHeaders(req, apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "credits", "transport_error").Inc()
		c.logger.Warn("credit check request failed",
			zap.String("operation", "credits"),
			zap.Error(err))
		return 0, errors.NewTransportError(ErrCodeConnectionFailed,
			fmt.Sprintf("%s: request failed", emailProviderName)).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "credits", "http_error").Inc()
		c.logger.Warn("credit check returned HTTP error",
			zap.String("operation", "credits"),
			zap.Int("status_code", resp.StatusCode))
		return 0, c.handleHTTPError(resp)
	}

	var payload creditsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "credits", "invalid_response").Inc()
		return 0, errors.NewExternalError(ErrCodeInvalidResponse,
			fmt.Sprintf("%s: failed to parse response", emailProviderName)).WithCause(err)
	}

	if payload.CreditsLeft == nil || *payload.CreditsLeft < 0 {
		metrics.ProviderRequests.WithLabelValues(emailProviderName, "credits", "invalid_response").Inc()
		return 0, errors.NewExternalError(ErrCodeInvalidResponse,
			fmt.Sprintf("%s: response is missing the creditsLeft field", emailProviderName))
	}

	metrics.ProviderRequests.WithLabelValues(emailProviderName, "credits", "ok").Inc()
	return *payload.CreditsLeft, nil
}

func (c *EmailListVerifyClient) addHeaders(req *http.Request, apiKey string) {
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lead-shield/1.0")
}

func (c *EmailListVerifyClient) handleHTTPError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.NewExternalError(ErrCodeAuthenticationFailed,
			fmt.Sprintf("%s: authentication failed", emailProviderName))
	case http.StatusBadRequest:
		return errors.NewExternalError(ErrCodeInvalidRequest,
			fmt.Sprintf("%s: bad request", emailProviderName))
	default:
		e := errors.NewExternalError(ErrCodeProviderUnavailable,
			fmt.Sprintf("%s: HTTP %d", emailProviderName, resp.StatusCode))
		e.Retryable = resp.StatusCode >= 500
		return e
	}
}
