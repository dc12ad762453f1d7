// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Client calls the Quickly Vote API as one identity.
type Client struct {
	baseURL  string
	identity string
	key      string
	http     *http.Client
}

type Option func(*Client)

// WithIdentity authenticates requests as identity using key.
func WithIdentity(identity, key string) Option {
	return func(c *Client) {
		c.identity = identity
		c.key = key
	}
}

// WithSalt authenticates requests as identity, deriving the key from salt.
func WithSalt(identity, salt string) Option {
	return WithIdentity(identity, auth.GenerateIdentityKey(identity, salt))
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Identity returns the identity requests are sent as, or "" if anonymous.
func (c *Client) Identity() string { return c.identity }

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.identity != "" {
		req.Header.Set(auth.HeaderIdentity, c.identity)
		req.Header.Set(auth.HeaderIdentityKey, c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var er models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
			apiErr.Code, apiErr.Message = er.Code, er.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) Status(ctx context.Context) (models.SessionStatus, error) {
	var out models.SessionStatus
	err := c.do(ctx, http.MethodGet, "/phase", nil, &out)
	return out, err
}

func (c *Client) AdvancePhase(ctx context.Context) (models.AdvancePhaseResponse, error) {
	var out models.AdvancePhaseResponse
	err := c.do(ctx, http.MethodPost, "/phase/advance", nil, &out)
	return out, err
}

func (c *Client) Pause(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/pause", nil, nil)
}

func (c *Client) Unpause(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/unpause", nil, nil)
}

// RegisterVoter registers identity and returns the key it authenticates with.
func (c *Client) RegisterVoter(ctx context.Context, identity string) (models.RegisterVoterResponse, error) {
	var out models.RegisterVoterResponse
	err := c.do(ctx, http.MethodPost, "/voters", models.RegisterVoterRequest{Identity: identity}, &out)
	return out, err
}

func (c *Client) Voter(ctx context.Context, identity string) (models.VoterStatus, error) {
	var out models.VoterStatus
	err := c.do(ctx, http.MethodGet, "/voters/"+url.PathEscape(identity), nil, &out)
	return out, err
}

func (c *Client) SubmitProposal(ctx context.Context, description string) (int, error) {
	var out models.SubmitProposalResponse
	err := c.do(ctx, http.MethodPost, "/proposals", models.SubmitProposalRequest{Description: description}, &out)
	return out.ProposalID, err
}

func (c *Client) Proposals(ctx context.Context) ([]models.Proposal, error) {
	var out models.ProposalList
	err := c.do(ctx, http.MethodGet, "/proposals", nil, &out)
	return out.Proposals, err
}

func (c *Client) Proposal(ctx context.Context, id int) (models.Proposal, error) {
	var out models.Proposal
	err := c.do(ctx, http.MethodGet, "/proposals/"+strconv.Itoa(id), nil, &out)
	return out, err
}

func (c *Client) VoteCount(ctx context.Context, id int) (uint64, error) {
	var out models.VoteCountResponse
	err := c.do(ctx, http.MethodGet, "/proposals/"+strconv.Itoa(id)+"/votes", nil, &out)
	return out.VoteCount, err
}

func (c *Client) CastVote(ctx context.Context, proposalID int) error {
	return c.do(ctx, http.MethodPost, "/votes", models.CastVoteRequest{ProposalID: &proposalID}, nil)
}

func (c *Client) ResolveWinner(ctx context.Context) (int, error) {
	var out models.WinnerResponse
	err := c.do(ctx, http.MethodPost, "/winner/resolve", nil, &out)
	return out.ProposalID, err
}

func (c *Client) Winner(ctx context.Context) (models.WinnerResponse, error) {
	var out models.WinnerResponse
	err := c.do(ctx, http.MethodGet, "/winner", nil, &out)
	return out, err
}

func (c *Client) Deposit(ctx context.Context, amount uint64) error {
	return c.do(ctx, http.MethodPost, "/funds/deposit", models.DepositRequest{Amount: amount}, nil)
}

// Withdraw sweeps the held balance to the administrator and returns the amount.
func (c *Client) Withdraw(ctx context.Context) (uint64, error) {
	var out models.AmountResponse
	err := c.do(ctx, http.MethodPost, "/funds/withdraw", nil, &out)
	return out.Amount, err
}

func (c *Client) Funds(ctx context.Context) (models.FundsResponse, error) {
	var out models.FundsResponse
	err := c.do(ctx, http.MethodGet, "/funds", nil, &out)
	return out, err
}

// Events returns up to limit notifications after the given sequence number.
func (c *Client) Events(ctx context.Context, after int64, limit int) (models.EventsResponse, error) {
	q := url.Values{}
	q.Set("after", strconv.FormatInt(after, 10))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out models.EventsResponse
	err := c.do(ctx, http.MethodGet, "/events?"+q.Encode(), nil, &out)
	return out, err
}
