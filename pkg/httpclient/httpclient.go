package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Enable debug mode
	Debug bool

	// Timeout applied to requests whose context has no deadline. Zero means no timeout.
	Timeout time.Duration

	// Default headers
	Headers map[string]string
}

type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", baseURL)
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	return &Client{
		baseURL: parsedBaseURL,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	Query  url.Values
	Header map[string]string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// UnmarshalBody decodes a JSON body into out.
func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	mediaType, _, _ := mime.ParseMediaType(string(r.Header.ContentType()))
	if mediaType != "application/json" {
		return errors.Errorf("unsupported content type %q from %s, contents: %q", r.Header.ContentType(), r.URL, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal json body from %s, %q", r.URL, body)
	}
	return nil
}

// IsSuccess reports whether the response has a 2xx status code.
func (r *HttpResponse) IsSuccess() bool {
	return r.StatusCode() >= fasthttp.StatusOK && r.StatusCode() < fasthttp.StatusMultipleChoices
}

// URL resolves path against the base url, merging query into the base query.
func (h *Client) URL(reqPath string, query url.Values) string {
	u := *h.baseURL
	u.Path = path.Join(u.Path, reqPath)
	merged := u.Query()
	for key, values := range query {
		for _, value := range values {
			merged.Add(key, value)
		}
	}
	u.RawQuery = merged.Encode()
	return u.String()
}

func (h *Client) Get(ctx context.Context, reqPath string, reqOptions RequestOptions) (*HttpResponse, error) {
	return h.request(ctx, fasthttp.MethodGet, reqPath, reqOptions)
}

func (h *Client) request(ctx context.Context, method, reqPath string, reqOptions RequestOptions) (*HttpResponse, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}
	target := h.URL(reqPath, reqOptions.Query)
	req.SetRequestURI(target)

	start := time.Now()
	err := h.do(ctx, req, resp)
	if h.Debug {
		logger.FromContext(ctx).DebugContext(ctx, "Finished http request",
			slog.String("package", "httpclient"),
			slog.String("method", method),
			slog.String("url", target),
			slog.Duration("latency", time.Since(start)),
			slog.Int("status_code", resp.StatusCode()),
			slog.Int("resp_content_length", len(resp.Body())),
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "url: %s", target)
	}

	httpResponse := &HttpResponse{URL: target}
	resp.CopyTo(&httpResponse.Response)
	return httpResponse, nil
}

func (h *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		return errors.WithStack(fasthttp.DoDeadline(req, resp, deadline))
	}
	if h.Timeout > 0 {
		return errors.WithStack(fasthttp.DoTimeout(req, resp, h.Timeout))
	}
	return errors.WithStack(fasthttp.Do(req, resp))
}
