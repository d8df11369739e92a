// Package example is the reference endpoint, served at /example.
package example

import (
	"context"
	"net/http"

	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

const textReply = "This is an example string"

var Module = endpoint.Module{
	Name:     "example",
	Register: Register,
}

func Register(*endpoint.State) endpoint.Endpoint {
	return endpoint.Endpoint{
		Handler:     Process,
		Description: "Generic endpoint; format=text switches to a plain string",
	}
}

// Process answers with plain text when format=text and JSON otherwise.
func Process(_ context.Context, _ *endpoint.State, _ *http.Request, form endpoint.Form) (endpoint.Response, error) {
	if form.Get("format") == "text" {
		return endpoint.Text(textReply), nil
	}
	return endpoint.JSON{"some": "json_response"}, nil
}
