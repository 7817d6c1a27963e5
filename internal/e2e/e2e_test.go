package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgtm-migrator/mecj-demo/internal/bootstrap"
	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/internal/dataset"
)

// TestE2E_ReadinessTransition checks that /predict answers "not ready" while
// training runs, then flips to results exactly once and never flips back.
func TestE2E_ReadinessTransition(t *testing.T) {
	srv, reg := newServer(t, nil)
	url := srv.URL + "/predict?" + tabularQuery

	resp, body := httpGet(t, url)
	if resp.StatusCode != http.StatusInternalServerError || string(body) != "Classifier not ready" {
		t.Fatalf("before training: %d %q", resp.StatusCode, body)
	}

	release := make(chan struct{})
	events := bootstrap.NewMemoryPublisher()
	trainDone := make(chan error, 1)
	go func() {
		trainDone <- bootstrap.Run(context.Background(), bootstrap.Options{
			Source:    dataset.Embedded(),
			Trainer:   gatedTrainer{next: classifier.KNNTrainer{}, release: release},
			Registry:  reg,
			CacheSize: 64,
			Events:    events,
			Logger:    zerolog.Nop(),
		})
	}()

	// Pollers record the status sequence each one observes.
	const pollers = 8
	stop := make(chan struct{})
	var wg sync.WaitGroup
	errs := make(chan error, pollers)
	for i := 0; i < pollers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sawReady := false
			for {
				select {
				case <-stop:
					return
				default:
				}
				resp, err := http.Get(url)
				if err != nil {
					errs <- err
					return
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				switch resp.StatusCode {
				case http.StatusOK:
					sawReady = true
				case http.StatusInternalServerError:
					if sawReady {
						errs <- errors.New("readiness went backwards")
						return
					}
				default:
					errs <- fmt.Errorf("unexpected status %d", resp.StatusCode)
					return
				}
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	select {
	case err := <-trainDone:
		if err != nil {
			t.Fatalf("training: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("training did not finish")
	}
	time.Sleep(50 * time.Millisecond)
	close(stop)
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("poller: %v", err)
	}

	resp, body = httpGet(t, url)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("after training: %d %q", resp.StatusCode, body)
	}
	var pr struct {
		Result int `json:"result"`
	}
	if err := json.Unmarshal(body, &pr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pr.Result != 0 && pr.Result != 1 {
		t.Fatalf("label %d outside the dataset classes", pr.Result)
	}

	names := events.Names()
	if len(names) == 0 || names[len(names)-1] != bootstrap.EventModelPublished {
		t.Fatalf("events=%v", names)
	}
}

func TestE2E_SequenceReadyImmediately(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := httpGet(t, srv.URL+"/predict-ps?seq=MKCCCCCAAA")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
	if string(body) != "{\"result\":2}\n" {
		t.Fatalf("body=%q", body)
	}

	resp, body = httpGet(t, srv.URL+"/predict-ps?sequence=MKV")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing seq: %d %q", resp.StatusCode, body)
	}
}

func TestE2E_StaticAssets(t *testing.T) {
	srv, _ := newServer(t, map[string]string{
		"index.html":  "<html>demo</html>",
		"js/app.js":   "console.log(1)",
		"favicon.ico": "ico",
	})

	resp, body := httpGet(t, srv.URL+"/public/index.html")
	if resp.StatusCode != http.StatusOK || string(body) != "<html>demo</html>" {
		t.Fatalf("index: %d %q", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html" {
		t.Fatalf("index content-type=%q", ct)
	}

	resp, _ = httpGet(t, srv.URL+"/public/js/app.js")
	if ct := resp.Header.Get("Content-Type"); ct != "application/javascript" {
		t.Fatalf("js content-type=%q", ct)
	}

	resp, body = httpGet(t, srv.URL+"/public/nope.css")
	if resp.StatusCode != http.StatusNotFound || string(body) != "/nope.css" {
		t.Fatalf("missing: %d %q", resp.StatusCode, body)
	}
}

func TestE2E_StatusReflectsRegistry(t *testing.T) {
	srv, reg := newServer(t, nil)
	resp, body := httpGet(t, srv.URL+"/status")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var st struct {
		Ready bool `json:"ready"`
	}
	if err := json.Unmarshal(body, &st); err != nil || st.Ready {
		t.Fatalf("before publish: %s (%v)", body, err)
	}

	if err := bootstrap.Run(context.Background(), bootstrap.Options{
		Source:   dataset.Embedded(),
		Trainer:  classifier.KNNTrainer{},
		Registry: reg,
		Logger:   zerolog.Nop(),
	}); err != nil {
		t.Fatalf("train: %v", err)
	}
	_, body = httpGet(t, srv.URL+"/status")
	if err := json.Unmarshal(body, &st); err != nil || !st.Ready {
		t.Fatalf("after publish: %s (%v)", body, err)
	}
}
