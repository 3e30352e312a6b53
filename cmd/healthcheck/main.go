package main

import (
	"net/http"
	"os"
	"time"
)

// Container healthcheck probe. Exits 0 when the server answers.
func main() {
	addr := os.Getenv("TRIVIARENA_HEALTH_ADDR")
	if addr == "" {
		addr = "http://127.0.0.1:8080"
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(addr + "/version")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
