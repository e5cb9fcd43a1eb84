// Package solver is the HTTP client for the external solving service.
//
// The service owns cube state. This client only moves JSON across the wire;
// it never mutates local state, so its calls may run off the frame thread.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// StateResponse is the reply of GET get-state.
type StateResponse struct {
	Current []int `json:"current"`
}

// MovesResponse is the reply of POST apply-moves and POST scramble.
// Moves is only set by scramble.
type MovesResponse struct {
	Current []int    `json:"current"`
	History [][]int  `json:"history"`
	Moves   []string `json:"moves,omitempty"`
}

// SolveResponse is the reply of GET solve.
type SolveResponse struct {
	Solution string `json:"solution"`
}

type applyRequest struct {
	Moves []string `json:"moves"`
}

// StatusError reports a non-2xx reply.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("solver %s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("solver %s: HTTP %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client talks to one solving service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetState fetches the full sticker state.
func (c *Client) GetState(ctx context.Context) (StateResponse, error) {
	var out StateResponse
	err := c.do(ctx, "get-state", http.MethodGet, nil, &out)
	return out, err
}

// ApplyMoves submits moves and returns the final and intermediate states.
func (c *Client) ApplyMoves(ctx context.Context, moves []types.Move) (MovesResponse, error) {
	var out MovesResponse
	body := applyRequest{Moves: types.WireMoves(moves)}
	err := c.do(ctx, "apply-moves", http.MethodPost, body, &out)
	return out, err
}

// Scramble asks the service to scramble the cube.
func (c *Client) Scramble(ctx context.Context) (MovesResponse, error) {
	var out MovesResponse
	err := c.do(ctx, "scramble", http.MethodPost, struct{}{}, &out)
	return out, err
}

// Solve returns the solution for the current state. An empty solution
// means the cube is already solved.
func (c *Client) Solve(ctx context.Context) (SolveResponse, error) {
	var out SolveResponse
	err := c.do(ctx, "solve", http.MethodGet, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, op, method string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("solver %s: failed to encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+op, body)
	if err != nil {
		return fmt.Errorf("solver %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("solver %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("solver %s: failed to decode response: %w", op, err)
	}
	return nil
}
