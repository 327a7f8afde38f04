package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"LFront/internal/config"
)

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sourceBody(t *testing.T, source string) string {
	t.Helper()

	data, err := json.Marshal(parseRequest{Source: source})
	if err != nil {
		t.Fatalf("Failed to encode request: %v", err)
	}
	return string(data)
}

func TestHealth(t *testing.T) {
	h := New(config.Default()).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestParse(t *testing.T) {
	h := New(config.Default()).Handler()
	rec := post(t, h, "/parse", sourceBody(t, "let x : int = 5;\nlet label : string \"hi\""))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ParseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.Success || resp.Session == "" {
		t.Errorf("Expected success with a session id, got %+v", resp)
	}
	if resp.AST == nil || len(resp.AST.Statements) != 2 {
		t.Fatalf("Expected two statements, got %+v", resp.AST)
	}
	if resp.AST.Statements[0].Name != "x" {
		t.Errorf("Expected first declaration of x, got %+v", resp.AST.Statements[0])
	}
	if !strings.Contains(resp.Outline, "StringLiteral \"hi\"") {
		t.Errorf("Unexpected outline:\n%s", resp.Outline)
	}
}

func TestParseFailure(t *testing.T) {
	h := New(config.Default()).Handler()
	rec := post(t, h, "/parse", sourceBody(t, "let : int"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}

	var resp ParseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success || resp.AST != nil || !strings.Contains(resp.Error, "syntax error") {
		t.Errorf("Expected syntax failure without AST, got %+v", resp)
	}
}

func TestTokens(t *testing.T) {
	h := New(config.Default()).Handler()
	rec := post(t, h, "/tokens", sourceBody(t, "let x : int"))

	var resp TokensResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Count != 5 {
		t.Errorf("Expected 5 tokens, got %+v", resp)
	}
	if !strings.Contains(resp.Table, "KEYWORD") {
		t.Errorf("Expected token table, got:\n%s", resp.Table)
	}
}

func TestRejectsBadRequests(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxSourceBytes = 32
	h := New(cfg).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parse", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", rec.Code)
	}

	if rec := post(t, h, "/parse", "{not json"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad json, got %d", rec.Code)
	}

	big := sourceBody(t, strings.Repeat("let a : int\n", 20))
	if rec := post(t, h, "/parse", big); rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for oversized source, got %d", rec.Code)
	}
}

func TestNewSessionPerRequest(t *testing.T) {
	h := New(config.Default()).Handler()

	var ids []string
	for _, src := range []string{"let first : int", "let second : int"} {
		rec := post(t, h, "/parse", sourceBody(t, src))

		var resp ParseResponse
		if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, resp.Session)
	}

	if ids[0] == ids[1] {
		t.Error("Expected a new session per request")
	}
}
