package desk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Client is the helpdesk API client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	tokenMu sync.RWMutex
	token   string
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithToken sets an access token obtained elsewhere, skipping Login.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// NewClient creates a new helpdesk API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Login verifies credentials and stores the returned token on the
// client for all subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := c.doRequest(ctx, http.MethodPost, "/api/login", body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.tokenMu.Lock()
	c.token = result.Token
	c.tokenMu.Unlock()

	return &result, nil
}

// CreateTicket opens a new ticket.
func (c *Client) CreateTicket(ctx context.Context, name, severity, description string) (*Ticket, error) {
	body := map[string]string{
		"name":        name,
		"severity":    severity,
		"description": description,
	}

	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPost, "/api/tickets", body, &ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &ticket, nil
}

// ListTickets lists every ticket with the given status. Technicians only.
func (c *Client) ListTickets(ctx context.Context, status string) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.doRequest(ctx, http.MethodGet, "/api/tickets?status="+status, nil, &tickets); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// ListOwnTickets lists the caller's tickets with the given status.
func (c *Client) ListOwnTickets(ctx context.Context, status string) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.doRequest(ctx, http.MethodGet, "/api/user/tickets?status="+status, nil, &tickets); err != nil {
		return nil, fmt.Errorf("list own tickets: %w", err)
	}
	return tickets, nil
}

// GetTicket fetches a single ticket by id.
func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tickets/%d", ticketID), nil, &ticket); err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

// CompleteTicket closes a ticket. Closing an already-closed ticket
// succeeds.
func (c *Client) CompleteTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/tickets/%d/complete", ticketID), nil, &ticket); err != nil {
		return nil, fmt.Errorf("complete ticket: %w", err)
	}
	return &ticket, nil
}

// RequestOnSiteHelp flags a ticket for in-person assistance.
func (c *Client) RequestOnSiteHelp(ctx context.Context, ticketID uint) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/tickets/%d/help", ticketID), nil, &ticket); err != nil {
		return nil, fmt.Errorf("request on-site help: %w", err)
	}
	return &ticket, nil
}

// ListMessages fetches the full message log for a ticket.
func (c *Client) ListMessages(ctx context.Context, ticketID uint) ([]Message, error) {
	var messages []Message
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tickets/%d/messages", ticketID), nil, &messages); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// SendMessage appends a message to a ticket's log.
func (c *Client) SendMessage(ctx context.Context, ticketID uint, content string) (*Message, error) {
	body := map[string]string{"content": content}

	var message Message
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/tickets/%d/messages", ticketID), body, &message); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	return &message, nil
}

// MarkRead flips the caller's read flag on every message of the ticket.
func (c *Client) MarkRead(ctx context.Context, ticketID uint) error {
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/tickets/%d/read", ticketID), nil, nil); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// GetUnread fetches the server-computed unread count for a ticket.
func (c *Client) GetUnread(ctx context.Context, ticketID uint) (*Unread, error) {
	var unread Unread
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tickets/%d/unread", ticketID), nil, &unread); err != nil {
		return nil, fmt.Errorf("get unread: %w", err)
	}
	return &unread, nil
}

// Token returns the current access token.
func (c *Client) Token() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token
}

// doRequest performs an HTTP request and decodes the envelope.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if !apiResp.OK {
		return fmt.Errorf("api error: %s", apiResp.Error)
	}

	if result == nil || apiResp.Data == nil {
		return nil
	}

	if err := json.Unmarshal(apiResp.Data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
