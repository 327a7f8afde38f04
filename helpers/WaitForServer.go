package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// BaseURL adds a scheme to bare host:port addresses.
func BaseURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimRight(addr, "/")
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + strings.TrimRight(addr, "/")
}

// WaitForServer polls /health until it answers 200 or attempts run out.
func WaitForServer(addr string, attempts int) error {
	url := BaseURL(addr) + "/health"
	for i := 0; i < attempts; i++ {
		resp, err := http.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server at %s not healthy after %d attempts", addr, attempts)
}
