package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/internal/httpapi"
	"github.com/lgtm-migrator/mecj-demo/internal/registry"
	"github.com/lgtm-migrator/mecj-demo/internal/static"
)

const tabularQuery = "preg=6&plas=148&pres=72&skin=35&insu=0&mass=33.6&pedi=0.627&age=50"

// gatedTrainer blocks Fit until release is closed.
type gatedTrainer struct {
	next    classifier.Trainer
	release chan struct{}
}

func (g gatedTrainer) Fit(x [][]float64, y []int) (classifier.Classifier, error) {
	<-g.release
	return g.next.Fit(x, y)
}

// newServer wires the real registry, static resolver and mux behind httptest.
// publicFiles maps names relative to the static root to their contents.
func newServer(t *testing.T, publicFiles map[string]string) (*httptest.Server, *registry.Registry) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range publicFiles {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	assets, err := static.New(dir)
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	reg := registry.New(classifier.NewStaticRules())
	srv := httptest.NewServer(httpapi.NewMux(reg, httpapi.Options{Assets: assets}))
	t.Cleanup(srv.Close)
	return srv, reg
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
