package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgtm-migrator/mecj-demo/internal/bootstrap"
	"github.com/lgtm-migrator/mecj-demo/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.PublicDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(cfg.PublicDir, "index.html"), []byte("<html>mecjd</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.ShutdownTimeoutSeconds = 1
	return cfg
}

func listen(t *testing.T) (net.Listener, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return ln, "http://" + ln.Addr().String()
}

func waitStatus(t *testing.T, url string, want int) *http.Response {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			if resp.StatusCode == want {
				return resp
			}
			resp.Body.Close()
		}
		if time.Now().After(deadline) {
			t.Fatalf("%s never returned %d", url, want)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestServe_TrainsAndServes(t *testing.T) {
	ln, base := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, testConfig(t), zerolog.Nop(), ln) }()

	waitStatus(t, base+"/readyz", http.StatusOK).Body.Close()

	resp := waitStatus(t, base+"/predict?preg=6&plas=148&pres=72&skin=35&insu=0&mass=33.6&pedi=0.627&age=50", http.StatusOK)
	var body struct {
		Result int `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if body.Result != 0 && body.Result != 1 {
		t.Fatalf("unexpected label %d", body.Result)
	}

	resp = waitStatus(t, base+"/public/index.html", http.StatusOK)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(b) != "<html>mecjd</html>" || resp.Header.Get("Content-Type") != "text/html" {
		t.Fatalf("static: %q %s", b, resp.Header.Get("Content-Type"))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop")
	}
}

func TestServe_DatasetFailureStopsServer(t *testing.T) {
	ln, _ := listen(t)
	cfg := testConfig(t)
	cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.csv")

	done := make(chan error, 1)
	go func() { done <- serve(context.Background(), cfg, zerolog.Nop(), ln) }()
	select {
	case err := <-done:
		if !bootstrap.IsDatasetLoad(err) {
			t.Fatalf("expected dataset load error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop after training failure")
	}
}
