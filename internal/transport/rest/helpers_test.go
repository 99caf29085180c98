package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

//go:generate moq -out request_service_mock_test.go -pkg rest . requestService
//go:generate moq -out letter_service_mock_test.go -pkg rest . letterService
//go:generate moq -out ai_service_mock_test.go -pkg rest . aiService
//go:generate moq -out mailer_service_mock_test.go -pkg rest . mailerService
//go:generate moq -out intake_service_mock_test.go -pkg rest . intakeService

type routable interface {
	Routes(mux *http.ServeMux, g Guards)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve routes one request through a mux with open guards.
func serve(t *testing.T, h routable, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	h.Routes(mux, OpenGuards())

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

type testEnvelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   string           `json:"error"`
	Code    string           `json:"code"`
	Fields  []fieldErrorJSON `json:"fields"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}
