package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"LFront/internal/ast"
	"LFront/internal/config"
	"LFront/internal/frontend"
	l "LFront/internal/logger"
	"LFront/internal/repl"
)

type parseRequest struct {
	Source string `json:"source"`
}

// ParseResponse is the body of a /parse reply.
type ParseResponse struct {
	Session string    `json:"session"`
	Success bool      `json:"success"`
	AST     *ast.View `json:"ast,omitempty"`
	Outline string    `json:"outline,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// TokensResponse is the body of a /tokens reply.
type TokensResponse struct {
	Session string `json:"session"`
	Success bool   `json:"success"`
	Table   string `json:"table"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

// Server parses request bodies. Every request gets its own session and
// symbol table.
type Server struct {
	cfg    *config.Config
	logger *l.Logger
	http   *http.Server
}

func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		logger: l.Get("server"),
	}

	s.http = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health & readiness
	mux.HandleFunc("/health", health)

	// POST /parse  -> AST for the whole source
	// POST /tokens -> token table for the whole source
	mux.HandleFunc("/parse", s.parseHandler)
	mux.HandleFunc("/tokens", s.tokensHandler)

	return mux
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", s.cfg.Server.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		return s.http.Shutdown(context.Background())
	}
}

// health returns 200 OK for liveness checks
func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) parseHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	session := s.session(req.Source)
	response := ParseResponse{Session: session.ID}

	program, err := session.Parse()
	if err != nil {
		s.logger.Error("Session %s failed to parse: %v", session.ID, err)
		response.Error = err.Error()
		writeJSON(w, http.StatusUnprocessableEntity, response, s.logger)
		return
	}

	response.Success = true
	response.AST = ast.NewView(program, session.Symbols())
	response.Outline = ast.Format(program, session.Symbols())
	writeJSON(w, http.StatusOK, response, s.logger)
}

func (s *Server) tokensHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	session := s.session(req.Source)
	response := TokensResponse{Session: session.ID}

	tokens, err := session.Tokens()
	response.Count = len(tokens)
	response.Table = repl.FormatTokens(tokens, session.Symbols())
	if err != nil {
		s.logger.Error("Session %s failed to lex: %v", session.ID, err)
		response.Error = err.Error()
		writeJSON(w, http.StatusUnprocessableEntity, response, s.logger)
		return
	}

	response.Success = true
	writeJSON(w, http.StatusOK, response, s.logger)
}

func (s *Server) session(source string) *frontend.Session {
	return frontend.NewSession(strings.NewReader(source), frontend.Options{
		MaxRunes: s.cfg.Lexer.MaxRunes,
		Logger:   l.Get("frontend"),
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (parseRequest, bool) {
	var req parseRequest

	if r.Method != http.MethodPost {
		s.logger.Error("Invalid method used: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxSourceBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Source too large", http.StatusRequestEntityTooLarge)
			return req, false
		}
		s.logger.Error("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}

	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *l.Logger) {
	responseBytes, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to marshal response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(responseBytes)
}
