package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/cofund-lab/backend/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	Body(body Body) Client
	GET(ctx context.Context) (*Response, error)
	POST(ctx context.Context) (*Response, error)
	PUT(ctx context.Context) (*Response, error)
	DELETE(ctx context.Context) (*Response, error)
}

// Interceptor inspects every response before it reaches the caller. Returning
// an error replaces the response, e.g. to turn any 401 into a global
// authorization-expiry signal.
type Interceptor func(ctx context.Context, resp *Response) error

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	domains      []string
	interceptors []Interceptor
}

func NewGenerator(domains ...string) *defaultGenerator {
	return &defaultGenerator{domains: domains}
}

func (g *defaultGenerator) Intercept(interceptors ...Interceptor) *defaultGenerator {
	g.interceptors = append(g.interceptors, interceptors...)
	return g
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		domains:      g.domains,
		interceptors: g.interceptors,
		path:         fmt.Sprintf(path, args...),
		headers:      make(http.Header),
	}
}

type defaultClient struct {
	domains      []string
	interceptors []Interceptor
	method       string
	path         string
	headers      http.Header
	query        Parameter
	body         Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) GET(ctx context.Context) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx)
}

func (c *defaultClient) POST(ctx context.Context) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx)
}

func (c *defaultClient) PUT(ctx context.Context) (*Response, error) {
	c.method = http.MethodPut
	return c.call(ctx)
}

func (c *defaultClient) DELETE(ctx context.Context) (*Response, error) {
	c.method = http.MethodDelete
	return c.call(ctx)
}

type Response struct {
	Code    int
	Header  http.Header
	RawBody []byte
}

func (c *defaultClient) call(ctx context.Context) (*Response, error) {
	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, err
		}
	}

	perm := rand.Perm(len(c.domains))

	for _, index := range perm {
		url := c.domains[index] + c.path
		if c.query != nil {
			url = url + "?" + c.query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
		if err != nil {
			return nil, err
		}

		if contentType != "" {
			req.Header.Add("Content-Type", contentType)
		}

		for h, values := range c.headers {
			for _, v := range values {
				req.Header.Add(h, v)
			}
		}

		result, err := xcontext.HTTPClient(ctx).Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			xcontext.Logger(ctx).Warnf("An error occurred when calling to %s: %v", url, err)
			continue
		}

		body, err := io.ReadAll(result.Body)
		result.Body.Close()
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occurred when reading body of %s: %v", url, err)
			continue
		}

		response := &Response{
			Code:    result.StatusCode,
			Header:  result.Header,
			RawBody: body,
		}

		for _, interceptor := range c.interceptors {
			if err := interceptor(ctx, response); err != nil {
				return nil, err
			}
		}

		return response, nil
	}

	return nil, errors.New("all endpoints got errors")
}
