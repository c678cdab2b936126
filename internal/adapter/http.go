package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const (
	decryptPath   = "/api/decrypt-from-clipboard"
	sanitizePath  = "/api/sanitize-clipboard"
	statusPath    = "/api/status"
	generatePath  = "/api/generate-password"
	encryptPath   = "/api/encrypt-password"
	copyPath      = "/api/copy-to-clipboard"
	contentTypeJS = "application/json"
)

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs a resty-based [BackendAdapter].
// It normalises the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPBackendAdapter(cfg config.Adapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithBaseURL(baseURL).
		WithTimeout(cfg.RequestTimeout)

	return &httpBackendAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Address implements [BackendAdapter].
func (h *httpBackendAdapter) Address() string {
	return h.baseURL
}

// Decrypt implements [BackendAdapter].
func (h *httpBackendAdapter) Decrypt(ctx context.Context, payload string) (models.DecryptResponse, error) {
	var out models.DecryptResponse

	err := h.do(ctx, http.MethodPost, decryptPath, models.DecryptRequest{Data: payload}, &out)
	if err != nil {
		var backendErr *BackendError
		if errors.As(err, &backendErr) && backendErr.Message != "" {
			return models.DecryptResponse{Success: false, Error: backendErr.Message}, nil
		}
		return models.DecryptResponse{}, fmt.Errorf("decrypt: %w", err)
	}

	return out, nil
}

// Sanitize implements [BackendAdapter].
func (h *httpBackendAdapter) Sanitize(ctx context.Context) (models.SanitizeResponse, error) {
	var out models.SanitizeResponse
	if err := h.do(ctx, http.MethodPost, sanitizePath, nil, &out); err != nil {
		return models.SanitizeResponse{}, fmt.Errorf("sanitize: %w", err)
	}
	return out, nil
}

// Status implements [BackendAdapter].
func (h *httpBackendAdapter) Status(ctx context.Context) (models.BackendStatus, error) {
	var out models.BackendStatus
	if err := h.do(ctx, http.MethodGet, statusPath, nil, &out); err != nil {
		return models.BackendStatus{}, fmt.Errorf("status: %w", err)
	}
	return out, nil
}

// GeneratePassword implements [BackendAdapter].
func (h *httpBackendAdapter) GeneratePassword(ctx context.Context, length int) (models.GenerateResponse, error) {
	var out models.GenerateResponse
	if err := h.do(ctx, http.MethodPost, generatePath, models.GenerateRequest{Length: length}, &out); err != nil {
		return models.GenerateResponse{}, fmt.Errorf("generate password: %w", err)
	}
	return out, nil
}

// EncryptPassword implements [BackendAdapter].
func (h *httpBackendAdapter) EncryptPassword(ctx context.Context) (models.EncryptResponse, error) {
	var out models.EncryptResponse
	if err := h.do(ctx, http.MethodPost, encryptPath, nil, &out); err != nil {
		return models.EncryptResponse{}, fmt.Errorf("encrypt password: %w", err)
	}
	return out, nil
}

// EncryptedPayload implements [BackendAdapter].
func (h *httpBackendAdapter) EncryptedPayload(ctx context.Context) (models.EncryptedPayload, error) {
	var out models.EncryptedPayload
	if err := h.do(ctx, http.MethodGet, copyPath, nil, &out); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("copy to clipboard: %w", err)
	}
	return out, nil
}

// do performs a single request and decodes a 2xx JSON body into out.
func (h *httpBackendAdapter) do(ctx context.Context, method, path string, body, out any) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", contentTypeJS)
	if body != nil {
		req.SetHeader("Content-Type", contentTypeJS).SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
