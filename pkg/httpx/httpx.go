// Package httpx is a thin layer over httprouter where handlers return errors
// and JSON bodies are decoded and encoded for them.
package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

type Context struct {
	ResponseWriter http.ResponseWriter
	Request        *http.Request
	Params         httprouter.Params
}

// DecodeJSON decodes the request body into v, a decode failure is a 400.
func (c Context) DecodeJSON(v interface{}) error {
	if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
		return ErrBadRequest(errors.Wrap(err, "decoding request body"))
	}
	return nil
}

func (c Context) JSON(v interface{}) error {
	c.ResponseWriter.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(c.ResponseWriter).Encode(v)
}

type Router struct {
	*httprouter.Router
	errHandler func(http.ResponseWriter, error, int)
}

type ErrHTTPResponse struct {
	err  error
	code int
	body []byte
}

func (err ErrHTTPResponse) Error() string { return err.err.Error() }
func (err ErrHTTPResponse) Body() []byte  { return err.body }
func (err ErrHTTPResponse) Unwrap() error { return err.err }
func ErrBadRequest(err error) error       { return ErrHTTPResponse{err: err, code: http.StatusBadRequest} }
func ErrUnprocessableEntity(err error) error {
	return ErrHTTPResponse{err: err, code: http.StatusUnprocessableEntity}
}

func (r *Router) h(handler func(c Context) (err error)) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(rw http.ResponseWriter, req *http.Request, p httprouter.Params) {
		err := handler(Context{ResponseWriter: rw, Request: req, Params: p})
		if err != nil {
			code := http.StatusInternalServerError
			if v, ok := err.(ErrHTTPResponse); ok {
				code = v.code
			}
			if r.errHandler != nil {
				r.errHandler(rw, err, code)
				return
			}
			http.Error(rw, err.Error(), code)
		}
	}
}

// ErrHandler replaces http.Error as the writer of error responses
func (r *Router) ErrHandler(handle func(http.ResponseWriter, error, int)) {
	r.errHandler = handle
}

func (r *Router) GET(path string, handle func(Context) error)  { r.Router.GET(path, r.h(handle)) }
func (r *Router) POST(path string, handle func(Context) error) { r.Router.POST(path, r.h(handle)) }

func New() *Router {
	return &Router{
		Router: httprouter.New(),
	}
}

// Request sends a request and decodes a JSON response into resp, if resp is
// non-nil. Non-2xx responses are returned as an ErrHTTPResponse carrying the
// body as the message.
func Request(ctx context.Context, client *http.Client, method, url, contentType string, body io.Reader, resp interface{}) (err error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := ioutil.ReadAll(res.Body)
		return ErrHTTPResponse{
			err:  fmt.Errorf("%s %s: %s", method, url, strings.TrimRight(string(msg), "\r\n")),
			code: res.StatusCode,
			body: msg,
		}
	}
	if resp == nil {
		return nil
	}
	return errors.Wrap(json.NewDecoder(res.Body).Decode(resp), "decoding response body")
}

