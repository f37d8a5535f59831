// Package adapter maps each repository operation to exactly one upstream REST endpoint.
package adapter

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/Guyuepp/social-feed/internal/adapter/httpclient"
)

// APIClient is the subset of httpclient.Client the adapters need
type APIClient interface {
	Get(ctx context.Context, path string, query url.Values) (*httpclient.Response, error)
	Post(ctx context.Context, path string, body any) (*httpclient.Response, error)
	Put(ctx context.Context, path string, body any) (*httpclient.Response, error)
	Patch(ctx context.Context, path string, body any) (*httpclient.Response, error)
	Delete(ctx context.Context, path string) (*httpclient.Response, error)
}

var _ APIClient = (*httpclient.Client)(nil)

// decode returns (nil, nil) when the upstream answered without usable data
func decode[T any](res *httpclient.Response, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if !res.HasData() {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(res.Data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func succeeded(res *httpclient.Response, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return res.OK, nil
}
