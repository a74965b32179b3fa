// Package services contains the typed API clients the views talk to. All
// traffic flows through Client, which attaches the bearer token, decodes the
// backend's response envelope once, and enforces the global 401 logout.
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionStore is the slice of the session service the HTTP layer needs.
type SessionStore interface {
	Token() string
	Logout() error
}

// Client wraps resty with the cross-cutting request policy: bearer token when
// one is stored, request correlation ids, and unconditional session teardown
// on any 401. It never blocks a request for a missing token; the server's
// rejection is authoritative.
type Client struct {
	rest     *resty.Client
	sessions SessionStore

	mu       sync.Mutex
	onUnauth func()
}

func NewClient(baseURL string, timeout time.Duration, sessions SessionStore) *Client {
	c := &Client{sessions: sessions}

	c.rest = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	c.rest.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := c.sessions.Token(); token != "" {
			req.SetAuthToken(token)
		}
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	c.rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logrus.WithFields(logrus.Fields{
			"method":     resp.Request.Method,
			"path":       resp.Request.URL,
			"status":     resp.StatusCode(),
			"request_id": resp.Request.Header.Get("X-Request-ID"),
		}).Debug("api call")

		if resp.StatusCode() == http.StatusUnauthorized {
			if err := c.sessions.Logout(); err != nil {
				logrus.WithError(err).Error("clearing session after 401")
			}
			c.mu.Lock()
			handler := c.onUnauth
			c.mu.Unlock()
			if handler != nil {
				handler()
			}
			return ErrUnauthorized
		}
		return nil
	})

	return c
}

// OnUnauthorized registers the handler invoked after any 401, once the
// session has been cleared. The UI uses it to force navigation to login.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauth = fn
}

func (c *Client) Get(path string) (*Payload, error) {
	return c.do(http.MethodGet, path, nil)
}

func (c *Client) Post(path string, body any) (*Payload, error) {
	return c.do(http.MethodPost, path, body)
}

func (c *Client) Put(path string, body any) (*Payload, error) {
	return c.do(http.MethodPut, path, body)
}

func (c *Client) Patch(path string, body any) (*Payload, error) {
	return c.do(http.MethodPatch, path, body)
}

func (c *Client) Delete(path string) (*Payload, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *Client) do(method, path string, body any) (*Payload, error) {
	req := c.rest.R()
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": method, "path": path,
		}).Warn("api call failed")
		return nil, &APIError{Message: err.Error()}
	}

	if resp.IsError() {
		return nil, &APIError{
			Status:  resp.StatusCode(),
			Message: serverMessage(resp.Body()),
		}
	}

	p := newPayload(resp.Body())
	// Some endpoints report business-rule rejections inside a 2xx envelope.
	if p.Success != nil && !*p.Success {
		return nil, &BusinessError{Message: p.Message}
	}
	return p, nil
}

// serverMessage pulls the human-readable message out of an error body, if
// the body is a decodable envelope.
func serverMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

// Payload is one decoded response body. The backend is inconsistent about
// how it wraps data — sometimes a {success,message,data} envelope, sometimes
// a named key, sometimes a bare array — so extraction happens here, once,
// instead of per view.
type Payload struct {
	Success *bool
	Message string

	raw    json.RawMessage
	fields map[string]json.RawMessage
}

func newPayload(raw []byte) *Payload {
	p := &Payload{raw: bytes.TrimSpace(raw)}

	if len(p.raw) > 0 && p.raw[0] == '{' {
		_ = json.Unmarshal(p.raw, &p.fields)
		var env struct {
			Success *bool  `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(p.raw, &env); err == nil {
			p.Success = env.Success
			p.Message = env.Message
		}
	}
	return p
}

// Collection decodes the response's collection into out (a pointer to a
// slice), trying each known wrapper shape in priority order: data.<plural>,
// data.items, data.content, data as an array, <plural>, content, then the
// raw body as an array. A body matching none of them leaves out empty; shape
// mismatch is never an error.
func (p *Payload) Collection(plural string, out any) {
	var candidates []json.RawMessage

	if data, ok := p.fields["data"]; ok {
		var inner map[string]json.RawMessage
		if json.Unmarshal(data, &inner) == nil {
			candidates = append(candidates, inner[plural], inner["items"], inner["content"])
		}
		candidates = append(candidates, data)
	}
	candidates = append(candidates, p.fields[plural], p.fields["content"], p.raw)

	for _, c := range candidates {
		if !isJSONArray(c) {
			continue
		}
		if err := json.Unmarshal(c, out); err == nil {
			return
		}
	}
}

// Object decodes the response's single entity into out, trying
// data.<singular>, <singular>, data as an object, then the raw body.
func (p *Payload) Object(singular string, out any) error {
	var candidates []json.RawMessage

	if data, ok := p.fields["data"]; ok {
		var inner map[string]json.RawMessage
		if json.Unmarshal(data, &inner) == nil {
			candidates = append(candidates, inner[singular])
		}
	}
	candidates = append(candidates, p.fields[singular])
	if data, ok := p.fields["data"]; ok {
		candidates = append(candidates, data)
	}
	candidates = append(candidates, p.raw)

	for _, c := range candidates {
		if !isJSONObject(c) {
			continue
		}
		if err := json.Unmarshal(c, out); err == nil {
			return nil
		}
	}
	return errors.New("unexpected response shape")
}

func isJSONArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
