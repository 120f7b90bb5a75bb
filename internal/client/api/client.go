package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/google/uuid"
)

// Request describes one backend call. Path is relative to the versioned
// prefix. Body, when set, is sent as JSON; Multipart takes precedence.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Multipart *Multipart
}

// Multipart is a form body with plain fields and file parts.
type Multipart struct {
	Fields map[string]string
	Files  []FilePart
}

// FilePart is one file of a multipart body.
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Response is a successful backend reply with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if v == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &Error{StatusCode: r.StatusCode, Message: fmt.Sprintf("malformed response: %v", err), Err: err}
	}
	return nil
}

// File is a binary download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Client struct {
	httpClient   *http.Client
	tokens       TokenSource
	rootURL      string
	baseURL      string
	logger       logging.Logger
	newRequestID func() string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.httpClient = &cp
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client for baseURL (e.g. http://127.0.0.1:5000/api) and
// version (e.g. v1). tokens may be nil.
func New(baseURL, version string, tokens TokenSource, opts ...Option) *Client {
	root := strings.TrimRight(baseURL, "/")
	base := root
	if v := strings.Trim(version, "/"); v != "" {
		base += "/" + v
	}

	c := &Client{
		httpClient:   &http.Client{},
		tokens:       tokens,
		rootURL:      root,
		baseURL:      base,
		logger:       logging.Discard(),
		newRequestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Unversioned returns a client sharing c's transport and token source
// whose paths resolve directly under the base URL, without the version.
func (c *Client) Unversioned() *Client {
	cp := *c
	cp.baseURL = c.rootURL
	return &cp
}

// URL returns the absolute URL for a relative resource path.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do issues req and returns the response of a 2xx reply. Anything else is
// returned as *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("cannot encode request: %v", err), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(req.Path, req.Query), body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("cannot build request: %v", err), Err: err}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	// Set on the request itself so net/http drops it on cross-host redirects.
	if tok := token(ctx, c.tokens); tok != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}
	reqID := c.newRequestID()
	httpReq.Header.Set(common.RequestIDHeaderName, reqID)
	logCtx := logging.WithRequestID(ctx, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug(logCtx, "api request failed", "method", method, "path", req.Path, "error", err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	c.logger.Debug(logCtx, "api request",
		"method", method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, data)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func encodeBody(req Request) (io.Reader, string, error) {
	if req.Multipart != nil {
		return encodeMultipart(req.Multipart)
	}
	if req.Body == nil {
		return nil, "", nil
	}
	b, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(b), "application/json", nil
}

func encodeMultipart(m *Multipart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.Files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("read %s: %w", f.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) doJSON(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// GetJSON issues a GET and decodes the reply into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// PostJSON sends body as JSON and decodes the reply into out; out may be nil.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

// Upload posts a multipart body and decodes the reply into out.
func (c *Client) Upload(ctx context.Context, path string, body *Multipart, out any) error {
	return c.doJSON(ctx, Request{Method: http.MethodPost, Path: path, Multipart: body}, out)
}

// Download fetches a binary body. The file name comes from
// Content-Disposition, else fallback.
func (c *Client) Download(ctx context.Context, path string, query url.Values, fallback string) (*File, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}

	name := attachmentName(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = fallback
	}
	return &File{
		Name:        name,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}, nil
}

func attachmentName(cd string) string {
	if cd == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return ""
	}
	return params["filename"]
}
