package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"LFront/internal/server"
)

type parseRequest struct {
	Source string `json:"source"`
}

// parseSource posts source to the /parse endpoint and returns the outline,
// or the parse error the server reported.
func parseSource(client *http.Client, addr, source string) (string, error) {
	reqBody, err := json.Marshal(parseRequest{Source: source})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := client.Post(addr+"/parse", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnprocessableEntity:
	default:
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
	}

	var pr server.ParseResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !pr.Success {
		return "", fmt.Errorf("%s", pr.Error)
	}
	if pr.Outline == "" {
		return "(nothing to parse)", nil
	}
	return pr.Outline, nil
}
