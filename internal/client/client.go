package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrNotLoggedIn is returned before any request is sent when the session is empty
var ErrNotLoggedIn = errors.New("not logged in")

// APIError non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

// CreateTenantInput tenant fields plus exactly one of LeaseID or Lease
type CreateTenantInput struct {
	Tenant  domain.TenantInput
	LeaseID *uint
	Lease   *domain.LeaseInput
}

type createTenantBody struct {
	domain.TenantInput
	Lease *domain.LeaseInput `json:"lease,omitempty"`
}

// Client typed access to the REST API with a per-entity query cache
type Client struct {
	http           *resty.Client
	session        *Session
	identityHeader string
	cache          *queryCache
	logger         *zap.Logger
}

// New builds a client for baseURL. The cache is cleared whenever the session logs out.
func New(baseURL, identityHeader string, session *Session, logger *zap.Logger) *Client {
	if identityHeader == "" {
		identityHeader = "X-User-Id"
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json"),
		session:        session,
		identityHeader: identityHeader,
		cache:          newQueryCache(),
		logger:         logger,
	}
	session.OnLogout(c.cache.clear)
	return c
}

func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	user, ok := c.session.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return c.http.R().
		SetContext(ctx).
		SetHeader(c.identityHeader, strconv.FormatUint(uint64(user.ID), 10)).
		SetError(&errorBody{}), nil
}

func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if body, ok := resp.Error().(*errorBody); ok && body.Message != "" {
			msg = body.Message
		}
		c.logger.Debug("api error",
			zap.String("url", resp.Request.URL),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("message", msg),
		)
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	return nil
}

// query runs a cached GET decoding the data envelope into T
func query[T any](ctx context.Context, c *Client, entity, path string) (T, error) {
	var zero T
	if v, ok := c.cache.get(entity, path); ok {
		return v.(T), nil
	}
	req, err := c.request(ctx)
	if err != nil {
		return zero, err
	}
	var out envelope[T]
	if err := c.check(req.SetResult(&out).Get(path)); err != nil {
		return zero, err
	}
	c.cache.put(entity, path, out.Data)
	return out.Data, nil
}

func (c *Client) GetUser(ctx context.Context) (*domain.User, error) {
	return query[*domain.User](ctx, c, entityUser, "/user")
}

func (c *Client) GetUnits(ctx context.Context) ([]domain.Unit, error) {
	return query[[]domain.Unit](ctx, c, entityUnits, "/units")
}

func (c *Client) GetProperties(ctx context.Context) ([]domain.Property, error) {
	return query[[]domain.Property](ctx, c, entityProperties, "/properties")
}

func (c *Client) GetTenants(ctx context.Context) ([]domain.Tenant, error) {
	return query[[]domain.Tenant](ctx, c, entityTenants, "/tenants")
}

func (c *Client) GetTenant(ctx context.Context, id uint) (*domain.Tenant, error) {
	return query[*domain.Tenant](ctx, c, entityTenants, fmt.Sprintf("/tenants/%d", id))
}

func (c *Client) GetLeases(ctx context.Context) ([]domain.Lease, error) {
	return query[[]domain.Lease](ctx, c, entityLeases, "/leases")
}

// DeleteProperty removes a property and drops cached properties and units
func (c *Client) DeleteProperty(ctx context.Context, id uint) error {
	req, err := c.request(ctx)
	if err != nil {
		return err
	}
	if err := c.check(req.Delete(fmt.Sprintf("/properties/%d", id))); err != nil {
		return err
	}
	c.cache.invalidate(entityProperties, entityUnits)
	return nil
}

// CreateTenant posts the tenant. LeaseID goes into the query string; otherwise
// Lease is embedded in the body. Cached tenants and leases are dropped on success.
func (c *Client) CreateTenant(ctx context.Context, in CreateTenantInput) (*domain.Tenant, error) {
	if (in.LeaseID == nil) == (in.Lease == nil) {
		return nil, errors.New("exactly one of LeaseID or Lease must be set")
	}
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	body := createTenantBody{TenantInput: in.Tenant}
	if in.LeaseID != nil {
		req.SetQueryParam("leaseId", strconv.FormatUint(uint64(*in.LeaseID), 10))
	} else {
		body.Lease = in.Lease
	}

	var out envelope[*domain.Tenant]
	if err := c.check(req.SetBody(body).SetResult(&out).Post("/tenants")); err != nil {
		return nil, err
	}
	c.cache.invalidate(entityTenants, entityLeases)
	return out.Data, nil
}
