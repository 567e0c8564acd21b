package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hazepito/internal/platform/config"
	apperrors "hazepito/internal/platform/errors"
)

func TestNewWithEmbeddedContent(t *testing.T) {
	t.Parallel()
	app, err := New(config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tax, err := app.CatalogCLI.Taxonomy(context.Background())
	if err != nil {
		t.Fatalf("Taxonomy: %v", err)
	}
	if tax.DefaultTopic != "permits" || len(tax.Groups) == 0 {
		t.Fatalf("taxonomy = %+v", tax)
	}
	plugins, err := app.PluginCLI.List(context.Background())
	if err != nil || len(plugins) != 0 {
		t.Fatalf("plugins = %v, %v", plugins, err)
	}
}

func TestExportThenLoadFromContentDB(t *testing.T) {
	t.Parallel()
	app, err := New(config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	db := filepath.Join(t.TempDir(), "content.db")
	out, err := app.CatalogCLI.Export(context.Background(), "sqlite", db)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	cfg := config.Default()
	cfg.ContentDB = db
	fromDB, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New from db: %v", err)
	}
	topic, err := fromDB.CatalogCLI.Topic(context.Background(), "foundation")
	if err != nil {
		t.Fatalf("Topic: %v", err)
	}
	if topic.DefaultSubTab != "layers" {
		t.Fatalf("default sub-tab = %q", topic.DefaultSubTab)
	}
	tax, err := fromDB.CatalogCLI.Taxonomy(context.Background())
	if err != nil {
		t.Fatalf("Taxonomy: %v", err)
	}
	n := 0
	for _, g := range tax.Groups {
		n += len(g.Topics)
	}
	if n != out.Topics {
		t.Fatalf("loaded %d topics, exported %d", n, out.Topics)
	}
}

func TestContentDirMustExist(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.ContentDir = filepath.Join(t.TempDir(), "missing")
	if _, err := New(cfg, nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestEmptyContentDirHasNoContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "taxonomy.yaml"), []byte("schema_version: 1\ngroups: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.ContentDir = dir
	app, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := app.CatalogCLI.Taxonomy(context.Background()); !errors.Is(err, apperrors.ErrNoContent) {
		t.Fatalf("err = %v", err)
	}
}
