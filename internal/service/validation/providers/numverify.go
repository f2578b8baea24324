package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/amarasa/lead-shield/internal/domain/errors"
	"github.com/amarasa/lead-shield/internal/metrics"
)

const phoneProviderName = "NumVerify"

// NumVerifyClient implements PhoneVerificationClient against the NumVerify
// (apilayer) HTTP API.
type NumVerifyClient struct {
	config NumVerifyConfig
	client *http.Client
	logger *zap.Logger
}

// NumVerifyConfig contains configuration for the phone provider client
type NumVerifyConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

// NewNumVerifyClient creates a new NumVerify client instance
func NewNumVerifyClient(config NumVerifyConfig, logger *zap.Logger) *NumVerifyClient {
	if config.BaseURL == "" {
		config.BaseURL = "https://apilayer.net"
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

	return &NumVerifyClient{
		config: config,
		client: httpClient,
		logger: logger,
	}
}

// lookupResponse is the provider's validation payload. The provider signals
// its own errors inside a 200 response, so both shapes live here.
type lookupResponse struct {
	Valid    bool     `json:"valid"`
	LineType LineType `json:"line_type"`
	Error    *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// ValidateNumber looks up a phone number already in provider wire format
func (c *NumVerifyClient) ValidateNumber(ctx context.Context, apiKey, number string) (PhoneLookupResult, error) {
	params := url.Values{}
	params.Add("access_key", apiKey)
	params.Add("number", number)

	lookupURL := fmt.Sprintf("%s/api/validate?%s", c.config.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return PhoneLookupResult{}, errors.NewInternalError(ErrCodeInvalidRequest,
			fmt.Sprintf("%s: failed to create request", phoneProviderName)).WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lead-shield/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(phoneProviderName, "validate", "transport_error").Inc()
		c.logger.Warn("phone lookup request failed",
			zap.String("operation", "validate"),
			zap.Error(err))
		return PhoneLookupResult{}, errors.NewTransportError(ErrCodeConnectionFailed,
			fmt.Sprintf("%s: request failed", phoneProviderName)).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues(phoneProviderName, "validate", "http_error").Inc()
		c.logger.Warn("phone lookup returned HTTP error",
			zap.String("operation", "validate"),
			zap.Int("status_code", resp.StatusCode))
		e := errors.NewExternalError(ErrCodeProviderUnavailable,
			fmt.Sprintf("%s: HTTP %d", phoneProviderName, resp.StatusCode))
		e.Retryable = resp.StatusCode >= 500
		return PhoneLookupResult{}, e
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequests.WithLabelValues(phoneProviderName, "validate", "invalid_response").Inc()
		c.logger.Warn("phone lookup response unparseable",
			zap.String("operation", "validate"),
			zap.Error(err))
		return PhoneLookupResult{}, errors.NewExternalError(ErrCodeInvalidResponse,
			fmt.Sprintf("%s: failed to parse response", phoneProviderName)).WithCause(err)
	}

	result := PhoneLookupResult{
		Valid:    payload.Valid,
		LineType: string(payload.LineType),
	}
	if payload.Error != nil {
		result.ErrorInfo = payload.Error.Info
	}

	metrics.ProviderRequests.WithLabelValues(phoneProviderName, "validate", "ok").Inc()
	return result, nil
}
