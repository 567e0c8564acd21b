package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	referenceout "hazepito/internal/modules/reference/adapter/out"
	"hazepito/internal/modules/reference/domain"
)

func TestHTTPImageProbe(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/photo.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
	})
	mux.HandleFunc("/get-only.png", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "image/png; charset=binary")
		_, _ = w.Write([]byte("png"))
	})
	mux.HandleFunc("/page.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
	})
	mux.HandleFunc("/slow.jpg", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.Header().Set("Content-Type", "image/jpeg")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	probe := referenceout.NewHTTPImageProbeWithClient(srv.Client())
	ctx := context.Background()

	if err := probe.Probe(ctx, srv.URL+"/photo.jpg"); err != nil {
		t.Fatalf("photo: %v", err)
	}
	if err := probe.Probe(ctx, srv.URL+"/get-only.png"); err != nil {
		t.Fatalf("get fallback: %v", err)
	}
	if err := probe.Probe(ctx, srv.URL+"/page.html"); !errors.Is(err, domain.ErrNotImage) {
		t.Fatalf("expected not image, got %v", err)
	}
	if err := probe.Probe(ctx, srv.URL+"/missing.jpg"); !errors.Is(err, domain.ErrUnreachable) {
		t.Fatalf("expected unreachable, got %v", err)
	}

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if err := probe.Probe(short, srv.URL+"/slow.jpg"); !errors.Is(err, domain.ErrUnreachable) {
		t.Fatalf("expected timeout to be unreachable, got %v", err)
	}
}
