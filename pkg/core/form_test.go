package core

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/example?format=text", nil)
	f, err := parseForm(httptest.NewRecorder(), req, 1024)
	require.NoError(t, err)
	assert.Equal(t, "text", f.Get("format"))
}

func TestParseFormURLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/example?format=json", strings.NewReader("format=text"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	f, err := parseForm(httptest.NewRecorder(), req, 1024)
	require.NoError(t, err)
	assert.Equal(t, "text", f.Get("format"))
	assert.Equal(t, []string{"text", "json"}, f.All("format"))
}

func TestParseFormMultipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("format", "text"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/example", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	f, err := parseForm(httptest.NewRecorder(), req, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "text", f.Get("format"))
}

func TestParseFormJSON(t *testing.T) {
	body := `{"format":"text","n":3,"ok":true,"none":null,"tags":["a",1],"nested":{"k":"v"}}`
	req := httptest.NewRequest(http.MethodPost, "/example?extra=1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	f, err := parseForm(httptest.NewRecorder(), req, 1024)
	require.NoError(t, err)

	assert.Equal(t, "text", f.Get("format"))
	assert.Equal(t, "3", f.Get("n"))
	assert.Equal(t, "true", f.Get("ok"))
	assert.True(t, f.Has("none"))
	assert.Equal(t, "", f.Get("none"))
	assert.Equal(t, []string{"a", "1"}, f.All("tags"))
	assert.Equal(t, `{"k":"v"}`, f.Get("nested"))
	assert.Equal(t, "1", f.Get("extra"))
}

func TestParseFormJSONEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	f, err := parseForm(httptest.NewRecorder(), req, 1024)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
}

func TestParseFormErrors(t *testing.T) {
	t.Run("json not an object", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader(`["format"]`))
		req.Header.Set("Content-Type", "application/json")
		_, err := parseForm(httptest.NewRecorder(), req, 1024)
		var re *requestError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, http.StatusBadRequest, re.status)
	})

	t.Run("too large", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader(`{"format":"`+strings.Repeat("x", 64)+`"}`))
		req.Header.Set("Content-Type", "application/json")
		_, err := parseForm(httptest.NewRecorder(), req, 16)
		var re *requestError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, http.StatusRequestEntityTooLarge, re.status)
	})

	t.Run("bad content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader("x"))
		req.Header.Set("Content-Type", "text/;;")
		_, err := parseForm(httptest.NewRecorder(), req, 1024)
		require.Error(t, err)
	})
}
