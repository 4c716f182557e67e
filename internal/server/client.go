package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/pkg/httpx"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client struct {
	host   string
	client *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		host: host,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) post(ctx context.Context, path string, body, resp interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/%s",
		strings.TrimSuffix(c.host, "/"),
		strings.TrimPrefix(path, "/"),
	)
	err = httpx.Request(ctx, c.client, http.MethodPost, url, "application/json", bytes.NewBuffer(b), resp)
	var he httpx.ErrHTTPResponse
	if !errors.As(err, &he) {
		return err
	}
	var er errorResponse
	if json.Unmarshal(he.Body(), &er) != nil {
		return err
	}
	switch er.Kind {
	case kindDivisionByZero:
		return errs.ErrDivisionByZero
	case kindMalformedExpression:
		return errs.ErrMalformedExpression{Reason: strings.TrimPrefix(er.Error, "malformed expression: ")}
	}
	return errors.New(er.Error)
}

// Convert returns the space separated postfix form of expression.
func (c *Client) Convert(ctx context.Context, expression string) (postfix string, err error) {
	var resp ConvertResponse
	err = c.post(ctx, "/convert", ExpressionRequest{Expression: expression}, &resp)
	return resp.Postfix, err
}

// Evaluate returns the formatted result of expression. Domain errors come
// back as their errs values.
func (c *Client) Evaluate(ctx context.Context, expression string) (result string, err error) {
	var resp EvaluateResponse
	err = c.post(ctx, "/evaluate", ExpressionRequest{Expression: expression}, &resp)
	return resp.Result, err
}

func (c *Client) Keys(ctx context.Context, keys []string) (resp KeysResponse, err error) {
	err = c.post(ctx, "/keys", KeysRequest{Keys: keys}, &resp)
	return resp, err
}
