package core

import (
	"fmt"
	"net/http"

	"github.com/joeydtaylor/steeze-api/pkg/codec"
	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

func writeJSON(w http.ResponseWriter, payload []byte, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if len(payload) > 0 {
		_, _ = w.Write(payload)
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

func writeText(w http.ResponseWriter, s string, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	out, err := codec.JSONStrict.Marshal(map[string]string{"error": msg})
	if err != nil {
		out = nil
	}
	writeJSON(w, out, status)
}

// render writes a handler's Response and reports which variant it was.
func render(w http.ResponseWriter, res endpoint.Response) (string, error) {
	switch v := res.(type) {
	case endpoint.Text:
		writeText(w, string(v), http.StatusOK)
		return "text", nil
	case endpoint.JSON:
		if v == nil {
			writeJSON(w, nil, http.StatusOK)
			return "json", nil
		}
		out, err := codec.JSONStrict.Marshal(map[string]any(v))
		if err != nil {
			return "json", fmt.Errorf("encode response: %w", err)
		}
		writeJSON(w, out, http.StatusOK)
		return "json", nil
	case nil:
		return "", fmt.Errorf("handler returned no response")
	default:
		return "", fmt.Errorf("unsupported response type %T", res)
	}
}
