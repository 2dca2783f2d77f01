// Package ghapi is a minimal GitHub issue-comment client.
//
// A Client is a plain value constructed by the caller and passed
// where it is needed; the package keeps no state of its own.
package ghapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.github.com"

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type Comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

type commentBody struct {
	Body string `json:"body"`
}

// ListComments returns the comments on an issue or pull request.
// repo is "owner/name".
func (c *Client) ListComments(ctx context.Context, repo string, number int) ([]Comment, error) {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments?per_page=100", repo, number)
	var res []Comment
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) CreateComment(ctx context.Context, repo string, number int, body string) (*Comment, error) {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number)
	res := &Comment{}
	if err := c.do(ctx, http.MethodPost, path, &commentBody{Body: body}, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) UpdateComment(ctx context.Context, repo string, id int64, body string) (*Comment, error) {
	path := fmt.Sprintf("/repos/%s/issues/comments/%d", repo, id)
	res := &Comment{}
	if err := c.do(ctx, http.MethodPatch, path, &commentBody{Body: body}, res); err != nil {
		return nil, err
	}
	return res, nil
}

// UpsertByMarker updates the first existing comment containing
// marker, or creates a new one, so repeated runs keep a single
// report comment on the pull request.
func (c *Client) UpsertByMarker(ctx context.Context, repo string, number int, marker, body string) (*Comment, error) {
	comments, err := c.ListComments(ctx, repo, number)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if strings.Contains(comments[i].Body, marker) {
			return c.UpdateComment(ctx, repo, comments[i].ID, body)
		}
	}
	return c.CreateComment(ctx, repo, number, body)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		d, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(d)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		d, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, d)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s %s response: %w", method, path, err)
	}
	return nil
}
