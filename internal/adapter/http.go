package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	registerPath = "/api/Auth/register"
	loginPath    = "/api/Auth/login"
	expensesPath = "/api/Expenses"
	expensePath  = "/api/Expenses/{id}"
	versionPath  = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying resty client with the resolved base URL, request timeout
// and retry count.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.RetryCount)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// /api/Auth/register and stores the token taken from the response.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (string, error) {
	return h.authenticate(ctx, registerPath, request)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/Auth/login and stores the token taken from the response.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (string, error) {
	return h.authenticate(ctx, loginPath, request)
}

// authenticate posts body to path and extracts the token from the
// Authorization header, falling back to the plain-text body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.authenticate").Str("path", path).Msg("request failed")
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAdapter.authenticate").Int("status", resp.StatusCode()).Msg("server rejected credentials")
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = strings.TrimSpace(string(resp.Body()))
	}
	if token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(token)
	return token, nil
}

// ListExpenses implements [ServerAdapter].
func (h *httpServerAdapter) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense

	request, err := h.authorizedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := request.SetResult(&expenses).Get(expensesPath)
	if err != nil {
		return nil, fmt.Errorf("list expenses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return expenses, nil
}

// GetExpense implements [ServerAdapter].
func (h *httpServerAdapter) GetExpense(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	request, err := h.authorizedRequest(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	resp, err := request.
		SetPathParam("id", id.String()).
		SetResult(&expense).
		Get(expensePath)
	if err != nil {
		return models.Expense{}, fmt.Errorf("get expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// CreateExpense implements [ServerAdapter].
func (h *httpServerAdapter) CreateExpense(ctx context.Context, createRequest models.CreateExpenseRequest) (models.Expense, error) {
	var expense models.Expense

	request, err := h.authorizedRequest(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetBody(createRequest).
		SetResult(&expense).
		Post(expensesPath)
	if err != nil {
		return models.Expense{}, fmt.Errorf("create expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// UpdateExpense implements [ServerAdapter].
func (h *httpServerAdapter) UpdateExpense(ctx context.Context, id uuid.UUID, updateRequest models.UpdateExpenseRequest) error {
	request, err := h.authorizedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id.String()).
		SetBody(updateRequest).
		Put(expensePath)
	if err != nil {
		return fmt.Errorf("update expense request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteExpense implements [ServerAdapter].
func (h *httpServerAdapter) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	request, err := h.authorizedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := request.
		SetPathParam("id", id.String()).
		Delete(expensePath)
	if err != nil {
		return fmt.Errorf("delete expense request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// authorizedRequest returns a request carrying the stored bearer token, or
// ErrNotAuthenticated when there is none.
func (h *httpServerAdapter) authorizedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
