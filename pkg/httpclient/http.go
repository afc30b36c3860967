package httpclient

import (
	"context"
	"net/http"
)

type BaseResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func (r *BaseResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type HTTPClient interface {
	Get(ctx context.Context, endpoint string, queryParams map[string]string, result interface{}) (*BaseResponse, error)
	Post(ctx context.Context, endpoint string, body interface{}, result interface{}) (*BaseResponse, error)
	PostForm(ctx context.Context, endpoint string, form map[string]string, result interface{}) (*BaseResponse, error)
}
