package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/pennyflow/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// Request makes an HTTP request against a freshly built router and
// returns the recorded response.
//
// The body can be a string (sent verbatim), a struct, map or slice
// (marshalled to JSON), or nil for an empty body.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	buf := &bytes.Buffer{}

	if body != nil {
		switch reflect.TypeOf(body).Kind() {
		case reflect.String:
			buf = bytes.NewBufferString(body.(string))
		case reflect.Struct, reflect.Map, reflect.Slice:
			marshalled, err := json.Marshal(body)
			require.Nil(t, err, "request body could not be marshalled from struct input")
			buf = bytes.NewBuffer(marshalled)
		default:
			buf = body.(*bytes.Buffer)
		}
	}

	r, err := router.Router()
	require.Nil(t, err, "router could not be initialized")
	defer router.Teardown()

	router.AttachRoutes(r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, buf)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		require.FailNow(t, "parsing error", "unable to parse response from server %q into %v, '%v', request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the response has one of the expected
// HTTP statuses.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
