package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
)

// why 7? I don't know. There's no theory behind this number nor researches.
const preallocRespHeaders = 7

// Response is a builder for the response value. Its With* methods mutate the
// receiver and return it back, so call sites read as a fluent chain. A Response
// is not safe for concurrent use, but it is never shared: every handler builds
// its own.
type Response struct {
	Code    status.Code
	Status  status.Status
	Headers Headers
	Body    []byte
}

// New returns a response with the given code, its standard status text and
// pre-allocated space for headers.
func New(code status.Code) *Response {
	return &Response{
		Code:    code,
		Status:  status.Text(code),
		Headers: kv.NewPrealloc(preallocRespHeaders),
	}
}

func OK() *Response {
	return New(status.OK)
}

func BadRequest() *Response {
	return New(status.BadRequest)
}

func NotFound() *Response {
	return New(status.NotFound)
}

func InternalServerError() *Response {
	return New(status.InternalServerError)
}

// WithCode sets a response code and the corresponding status text. In case of
// unknown code, "Unknown Status Code" will be set as the text. In this case you
// should call WithStatus explicitly
func (r *Response) WithCode(code status.Code) *Response {
	r.Code = code
	r.Status = status.Text(code)
	return r
}

// WithStatus sets a custom status text. This text does not matter at all, and
// usually is totally ignored by clients, so there's actually no reason to use
// it except rare cases when the text must be presented somewhere
func (r *Response) WithStatus(s status.Status) *Response {
	r.Status = s
	return r
}

// WithHeader sets the header, overwriting the value of an already existing one.
func (r *Response) WithHeader(key, value string) *Response {
	r.Headers.Set(key, value)
	return r
}

// WithBody sets the response's body to the passed slice WITHOUT COPYING.
// Changing the passed slice later will affect the response by itself
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

// WithText sets a plain text body.
func (r *Response) WithText(body string) *Response {
	r.Body = uf.S2B(body)
	return r.WithHeader("Content-Type", mime.TextPlain)
}

// WithHTML sets an HTML body.
func (r *Response) WithHTML(body string) *Response {
	r.Body = uf.S2B(body)
	return r.WithHeader("Content-Type", mime.HTML)
}

// Write implements io.Writer. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.Body = append(r.Body, b...)
	return len(b), nil
}

// TryJSON receives a model (must be a pointer to the structure), encodes it
// into the body and returns an error if encoding failed.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.Body = r.Body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.WithHeader("Content-Type", mime.JSON), err
}

// JSON does the same as TryJSON does, except a returned error is implicitly
// turned into a 500 via WithError
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.WithError(err)
	}

	return resp
}

// WithError sets the response to 500 Internal Server Error carrying the error
// message as a plain text body. If passed err is nil, nothing happens.
func (r *Response) WithError(err error) *Response {
	if err == nil {
		return r
	}

	return r.
		WithCode(status.InternalServerError).
		WithText(err.Error())
}
