package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

func newServer(t *testing.T, status int, reply string, headers map[string]string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.Query()
		c.header = r.Header.Clone()
		c.body, _ = io.ReadAll(r.Body)
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func TestClient_URL(t *testing.T) {
	c := New("http://host/api/", "/v1/", nil)
	assert.Equal(t, "http://host/api/v1/assets", c.URL("assets", nil))
	assert.Equal(t, "http://host/api/v1/assets/3", c.URL("/assets/3", nil))
	assert.Equal(t, "http://host/api/v1/assets?page=2&search=a+b", c.URL("assets", url.Values{"page": {"2"}, "search": {"a b"}}))

	noVersion := New("http://host/api", "", nil)
	assert.Equal(t, "http://host/api/trash", noVersion.URL("trash", nil))
}

func TestClient_Unversioned(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`, nil)
	c := New(srv.URL+"/api", "v1", TokenFunc(func() string { return "tok-1" }))

	root := c.Unversioned()
	assert.Equal(t, srv.URL+"/api/trash?module=all", root.URL("trash", url.Values{"module": {"all"}}))

	require.NoError(t, root.PostJSON(context.Background(), "trash/restore", map[string]any{"module": "asset", "id": 1}, nil))
	assert.Equal(t, "/api/trash/restore", got.path)
	assert.Equal(t, "Bearer tok-1", got.header.Get("Authorization"))

	assert.Equal(t, srv.URL+"/api/v1/assets", c.URL("assets", nil), "original client keeps its version")
}

func TestClient_TokenReadAtCallTime(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`, nil)

	token := "tok-1"
	c := New(srv.URL, "v1", TokenFunc(func() string { return token }))

	require.NoError(t, c.GetJSON(context.Background(), "assets", nil, nil))
	assert.Equal(t, "Bearer tok-1", got.header.Get("Authorization"))

	token = "tok-2"
	require.NoError(t, c.GetJSON(context.Background(), "assets", nil, nil))
	assert.Equal(t, "Bearer tok-2", got.header.Get("Authorization"))

	token = ""
	require.NoError(t, c.GetJSON(context.Background(), "assets", nil, nil))
	assert.Empty(t, got.header.Get("Authorization"))
}

func TestClient_ContextTokenWins(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`, nil)
	c := New(srv.URL, "v1", TokenFunc(func() string { return "stored" }))

	ctx := WithToken(context.Background(), "fresh")
	require.NoError(t, c.GetJSON(ctx, "auth/me", nil, nil))
	assert.Equal(t, "Bearer fresh", got.header.Get("Authorization"))

	ctx = WithToken(context.Background(), "")
	require.NoError(t, c.GetJSON(ctx, "auth/me", nil, nil))
	assert.Empty(t, got.header.Get("Authorization"))
}

func TestClient_NilTokenSource(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`, nil)
	c := New(srv.URL, "v1", nil)

	require.NoError(t, c.GetJSON(context.Background(), "assets", nil, nil))
	assert.Empty(t, got.header.Get("Authorization"))
	assert.NotEmpty(t, got.header.Get("X-Request-ID"))
}

func TestClient_PostJSON(t *testing.T) {
	srv, got := newServer(t, http.StatusCreated, `{"id":7,"name":"Laptop"}`, nil)
	c := New(srv.URL, "v1", nil)

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := c.PostJSON(context.Background(), "assets", map[string]any{"name": "Laptop"}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/v1/assets", got.path)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Laptop"}`, string(got.body))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Laptop", out.Name)
}

func TestClient_PutAndDelete(t *testing.T) {
	srv, got := newServer(t, http.StatusNoContent, ``, nil)
	c := New(srv.URL, "v1", nil)

	require.NoError(t, c.PutJSON(context.Background(), "users/2", map[string]string{"email": "a@b.c"}, nil))
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/v1/users/2", got.path)

	var out map[string]any
	require.NoError(t, c.Delete(context.Background(), "users/2", &out))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Nil(t, out)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		reply       string
		wantMessage string
		wantCode    string
		is          []error
		isNot       []error
	}{
		{
			name:        "backend message",
			status:      http.StatusBadRequest,
			reply:       `{"message":"Tên tài sản là bắt buộc","error":"validation_error"}`,
			wantMessage: "Tên tài sản là bắt buộc",
			wantCode:    "validation_error",
			is:          []error{ErrRequest},
			isNot:       []error{ErrUnauthorized, ErrUnavailable, ErrNotFound, ErrServer},
		},
		{
			name:        "jwt msg field",
			status:      http.StatusUnauthorized,
			reply:       `{"msg":"Token has expired"}`,
			wantMessage: "Token has expired",
			is:          []error{ErrRequest, ErrUnauthorized},
		},
		{
			name:        "error field only",
			status:      http.StatusForbidden,
			reply:       `{"error":"forbidden"}`,
			wantMessage: "forbidden",
			wantCode:    "forbidden",
			is:          []error{ErrRequest, ErrUnauthorized},
		},
		{
			name:        "html body",
			status:      http.StatusNotFound,
			reply:       `<html>nope</html>`,
			wantMessage: "request failed: 404 Not Found",
			is:          []error{ErrRequest, ErrNotFound},
			isNot:       []error{ErrUnauthorized},
		},
		{
			name:        "gateway",
			status:      http.StatusBadGateway,
			reply:       ``,
			wantMessage: "request failed: 502 Bad Gateway",
			is:          []error{ErrRequest, ErrUnavailable, ErrServer},
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			reply:       `{"message":"Lỗi hệ thống"}`,
			wantMessage: "Lỗi hệ thống",
			is:          []error{ErrRequest, ErrServer},
			isNot:       []error{ErrUnavailable, ErrNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.reply, nil)
			c := New(srv.URL, "v1", nil)

			err := c.GetJSON(context.Background(), "assets", nil, nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
			assert.Equal(t, tt.wantCode, apiErr.Code)
			for _, target := range tt.is {
				assert.ErrorIs(t, err, target)
			}
			for _, target := range tt.isNot {
				assert.False(t, errors.Is(err, target), "unexpected match %v", target)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := New(addr, "v1", nil)
	_, err := c.Do(context.Background(), Request{Path: "assets"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrRequest)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.NotNil(t, apiErr.Unwrap())
}

func TestClient_MalformedJSON(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"id":`, nil)
	c := New(srv.URL, "v1", nil)

	var out map[string]any
	err := c.GetJSON(context.Background(), "assets/1", nil, &out)
	require.ErrorIs(t, err, ErrRequest)
	assert.Contains(t, err.Error(), "malformed response")
}

func TestClient_Download(t *testing.T) {
	t.Run("content disposition", func(t *testing.T) {
		srv, got := newServer(t, http.StatusOK, "PK\x03\x04", map[string]string{
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"Content-Disposition": `attachment; filename="assets_2024.xlsx"`,
		})
		c := New(srv.URL, "v1", nil)

		f, err := c.Download(context.Background(), "assets/export", url.Values{"status": {"active"}}, "fallback.xlsx")
		require.NoError(t, err)
		assert.Equal(t, "assets_2024.xlsx", f.Name)
		assert.Equal(t, []byte("PK\x03\x04"), f.Data)
		assert.True(t, strings.HasPrefix(f.ContentType, "application/vnd.openxmlformats"))
		assert.Equal(t, "active", got.query.Get("status"))
	})

	t.Run("fallback", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, "data", nil)
		c := New(srv.URL, "v1", nil)

		f, err := c.Download(context.Background(), "maintenance/export", nil, "bao_tri_2024-05-01.xlsx")
		require.NoError(t, err)
		assert.Equal(t, "bao_tri_2024-05-01.xlsx", f.Name)
	})

	t.Run("failure", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, `{"message":"export failed"}`, nil)
		c := New(srv.URL, "v1", nil)

		_, err := c.Download(context.Background(), "assets/export", nil, "x.xlsx")
		require.EqualError(t, err, "export failed")
	})
}

func TestClient_Upload(t *testing.T) {
	var (
		fileType string
		content  string
		name     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		fileType = r.FormValue("file_type")
		f, hdr, err := r.FormFile("invoice")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		content = string(b)
		name = hdr.Filename
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "v1", nil)
	var out map[string]string
	err := c.Upload(context.Background(), "maintenance/4/upload", &Multipart{
		Fields: map[string]string{"file_type": "invoice"},
		Files:  []FilePart{{Field: "invoice", FileName: "inv.pdf", Content: strings.NewReader("%PDF")}},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "invoice", fileType)
	assert.Equal(t, "%PDF", content)
	assert.Equal(t, "inv.pdf", name)
	assert.Equal(t, "ok", out["message"])
}

func TestClient_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "v1", nil)
	_, err := c.Do(context.Background(), Request{Path: "assets"})
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "a.xlsx", attachmentName(`attachment; filename=a.xlsx`))
	assert.Equal(t, "tài sản.xlsx", attachmentName(`attachment; filename*=UTF-8''t%C3%A0i%20s%E1%BA%A3n.xlsx`))
	assert.Empty(t, attachmentName(""))
	assert.Empty(t, attachmentName(`;;;`))
	assert.Empty(t, attachmentName(`inline`))
}

func TestClient_RedirectToOtherHostDropsToken(t *testing.T) {
	var (
		reached atomic.Bool
		leaked  atomic.Value
	)
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached.Store(true)
		leaked.Store(r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(other.Close)
	_, port, err := net.SplitHostPort(other.Listener.Addr().String())
	require.NoError(t, err)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://localhost:"+port+"/landing", http.StatusFound)
	}))
	t.Cleanup(backend.Close)

	c := New(backend.URL, "v1", TokenFunc(func() string { return "secret" }))
	require.NoError(t, c.GetJSON(context.Background(), "assets", nil, nil))

	require.True(t, reached.Load(), "redirect target not reached")
	assert.Equal(t, "", leaked.Load())
}

func TestClient_RedirectOnSameHostKeepsToken(t *testing.T) {
	var auth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/v1/new", http.StatusFound)
	})
	mux.HandleFunc("/v1/new", func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := New(srv.URL, "v1", TokenFunc(func() string { return "secret" }))
	require.NoError(t, c.GetJSON(context.Background(), "old", nil, nil))
	assert.Equal(t, "Bearer secret", auth.Load())
}
