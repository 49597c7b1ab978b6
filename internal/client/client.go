// Package client is the Go face of the browser client: an API client with
// bearer-token auth, the checkout flow, and identity-keyed fetch helpers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

// APIError carries a server-reported failure; Message is surfaced to the
// user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// OrderRequest is the checkout payload: the cart normalized into
// (foodId, quantity) pairs plus the rounded total and delivery address.
type OrderRequest struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	Address     string             `json:"address"`
}

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	var resp struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", false,
		map[string]string{"username": username, "password": password}, &resp)
}

// Login authenticates and stores the bearer token in the session, which
// also invalidates any fetches keyed to the previous identity.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", false,
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.session.SetToken(resp.Token)
	return nil
}

// Logout drops the stored token.
func (c *Client) Logout() {
	c.session.Clear()
}

func (c *Client) Foods(ctx context.Context) ([]domain.Food, error) {
	var foods []domain.Food
	err := c.do(ctx, http.MethodGet, "/api/foods", false, nil, &foods)
	return foods, err
}

func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", true, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]domain.PopulatedOrder, error) {
	var orders []domain.PopulatedOrder
	err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", true, nil, &orders)
	return orders, err
}

func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", true, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.UserStats, error) {
	var st domain.UserStats
	if err := c.do(ctx, http.MethodGet, "/api/users/stats", true, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) do(ctx context.Context, method, path string, authed bool, body, out any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
