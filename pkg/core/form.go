package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joeydtaylor/steeze-api/pkg/codec"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

// requestError carries the status a malformed request should be answered with.
type requestError struct {
	status int
	err    error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return &requestError{status: http.StatusRequestEntityTooLarge, err: err}
	}
	return &requestError{status: http.StatusBadRequest, err: err}
}

// parseForm collects form data from the query string and the body. Urlencoded,
// multipart and JSON object bodies are understood; body values come before
// query values for the same key.
func parseForm(w http.ResponseWriter, r *http.Request, maxBody int64) (endpoint.Form, error) {
	if r.Body != nil && maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	}

	mt := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		var err error
		if mt, _, err = mime.ParseMediaType(ct); err != nil {
			return endpoint.Form{}, badRequest(fmt.Errorf("content-type: %w", err))
		}
	}

	switch mt {
	case "application/json":
		vals, err := jsonFormValues(r.Body)
		if err != nil {
			return endpoint.Form{}, badRequest(err)
		}
		for k, vs := range r.URL.Query() {
			vals[k] = append(vals[k], vs...)
		}
		return endpoint.NewForm(vals), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBody); err != nil {
			return endpoint.Form{}, badRequest(err)
		}
		return endpoint.NewForm(r.Form), nil

	default:
		if err := r.ParseForm(); err != nil {
			return endpoint.Form{}, badRequest(err)
		}
		return endpoint.NewForm(r.Form), nil
	}
}

// jsonFormValues flattens a JSON object body into form values. Scalars become
// strings, arrays of scalars become repeated values and nested objects are
// kept as their JSON text.
func jsonFormValues(body io.Reader) (url.Values, error) {
	vals := url.Values{}
	if body == nil {
		return vals, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return vals, nil
	}

	var obj map[string]any
	if err := codec.JSONLoose.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("body must be a JSON object: %w", err)
	}
	for k, v := range obj {
		if arr, ok := v.([]any); ok {
			for _, x := range arr {
				s, err := scalarString(x)
				if err != nil {
					return nil, err
				}
				vals.Add(k, s)
			}
			continue
		}
		s, err := scalarString(v)
		if err != nil {
			return nil, err
		}
		vals.Set(k, s)
	}
	return vals, nil
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	default:
		b, err := codec.JSONLoose.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
