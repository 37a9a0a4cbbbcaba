package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"
)

// 上游失败响应体最多保留的字节数
const maxFailureBody = 64 << 10

// upstreamFailure 记录一次调用中最后一个失败响应的状态码和响应体。
// SDK 解析错误时会丢掉部分内容（例如 Gemini 数组包裹的错误体），分类时以这里为准。
type upstreamFailure struct {
	mu     sync.Mutex
	status int
	body   string
}

func (f *upstreamFailure) set(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.body = body
}

func (f *upstreamFailure) get() (int, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.body
}

type failureKey struct{}

func withFailureCapture(ctx context.Context) (context.Context, *upstreamFailure) {
	f := &upstreamFailure{}
	return context.WithValue(ctx, failureKey{}, f), f
}

// captureTransport 状态码 >= 400 时读出响应体再放回去
type captureTransport struct {
	base http.RoundTripper
}

func (t captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}
	f, ok := req.Context().Value(failureKey{}).(*upstreamFailure)
	if !ok {
		return resp, nil
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxFailureBody))
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if readErr == nil {
		f.set(resp.StatusCode, string(body))
	} else {
		f.set(resp.StatusCode, "")
	}
	return resp, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: captureTransport{base: http.DefaultTransport},
	}
}
