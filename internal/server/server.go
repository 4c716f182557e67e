// Package server exposes the calculator over HTTP. Every request gets its
// own calculator state, nothing is kept between requests.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/maxmcd/calc/internal/calculator"
	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/internal/expr"
	"github.com/maxmcd/calc/internal/logger"
	"github.com/maxmcd/calc/internal/tracing"
	"github.com/maxmcd/calc/pkg/httpx"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer

func init() {
	tracer = tracing.Tracer("server")
}

const (
	kindDivisionByZero      = "division_by_zero"
	kindMalformedExpression = "malformed_expression"
)

type ExpressionRequest struct {
	Expression string `json:"expression"`
}

type ConvertResponse struct {
	Postfix string `json:"postfix"`
}

type EvaluateResponse struct {
	Result string `json:"result"`
}

type KeysRequest struct {
	Keys []string `json:"keys"`
}

type KeysResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Notice     string `json:"notice,omitempty"`
	Error      string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// evaluationError keeps the domain error kind so that the client can map it
// back to the matching errs value.
type evaluationError struct {
	err  error
	kind string
}

func (e evaluationError) Error() string { return e.err.Error() }

func classify(err error) error {
	switch {
	case errors.Is(err, errs.ErrDivisionByZero):
		return httpx.ErrUnprocessableEntity(evaluationError{err: err, kind: kindDivisionByZero})
	case errors.Is(err, errs.ErrMalformedExpression{}):
		return httpx.ErrUnprocessableEntity(evaluationError{err: err, kind: kindMalformedExpression})
	}
	return err
}

func writeError(rw http.ResponseWriter, err error, code int) {
	resp := errorResponse{Error: err.Error()}
	var ee evaluationError
	if errors.As(err, &ee) {
		resp.Kind = ee.kind
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_ = json.NewEncoder(rw).Encode(resp)
}

// Handler returns the calculator http handler. Results are formatted with
// precision, see expr.FormatResult.
func Handler(precision int) http.Handler {
	router := httpx.New()
	router.ErrHandler(writeError)

	router.GET("/healthz", func(c httpx.Context) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	router.POST("/convert", func(c httpx.Context) error {
		var req ExpressionRequest
		if err := c.DecodeJSON(&req); err != nil {
			return err
		}
		_, span := tracer.Start(c.Request.Context(), "convert")
		defer span.End()
		postfix := expr.Convert(req.Expression)
		span.SetAttributes(
			attribute.String("expression", req.Expression),
			attribute.String("postfix", postfix.String()),
		)
		return c.JSON(ConvertResponse{Postfix: postfix.String()})
	})

	router.POST("/evaluate", func(c httpx.Context) error {
		var req ExpressionRequest
		if err := c.DecodeJSON(&req); err != nil {
			return err
		}
		_, span := tracer.Start(c.Request.Context(), "evaluate")
		defer span.End()
		span.SetAttributes(attribute.String("expression", req.Expression))
		value, err := expr.Eval(req.Expression)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Debugw("evaluate failed", "expression", req.Expression, "err", err)
			return classify(err)
		}
		return c.JSON(EvaluateResponse{Result: expr.FormatResult(value, precision)})
	})

	router.POST("/keys", func(c httpx.Context) error {
		var req KeysRequest
		if err := c.DecodeJSON(&req); err != nil {
			return err
		}
		_, span := tracer.Start(c.Request.Context(), "keys")
		defer span.End()
		span.SetAttributes(attribute.Int("keys", len(req.Keys)))

		state := calculator.New()
		state.Precision = precision
		var resp KeysResponse
		if err := state.Feed(req.Keys); err != nil {
			span.RecordError(err)
			resp.Error = err.Error()
		}
		resp.Expression, resp.Result = state.Display()
		resp.Notice = state.Notice
		return c.JSON(resp)
	})

	return otelhttp.NewHandler(router, "calc")
}
