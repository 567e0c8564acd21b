package service_test

import (
	"context"
	"errors"
	"testing"

	"hazepito/internal/modules/catalog/domain"
	catalogout "hazepito/internal/modules/catalog/port/out"
	"hazepito/internal/modules/catalog/service"
	apperrors "hazepito/internal/platform/errors"
)

type fakeSource struct {
	pack  domain.Pack
	err   error
	loads int
}

func (s *fakeSource) Name() string { return "fake" }

func (s *fakeSource) Load(context.Context) (domain.Pack, error) {
	s.loads++
	return s.pack, s.err
}

type fakeProvider struct {
	topics []domain.Topic
	err    error
}

func (p fakeProvider) Name() string { return "fake-plugins" }

func (p fakeProvider) Topics(context.Context) ([]domain.Topic, error) { return p.topics, p.err }

type recordingWriter struct {
	packs []domain.Pack
}

func (w *recordingWriter) Write(_ context.Context, pack domain.Pack) error {
	w.packs = append(w.packs, pack)
	return nil
}

type fakeFactory struct {
	writer *recordingWriter
}

func (f fakeFactory) Writer(format, _ string) (catalogout.ContentWriter, error) {
	if format != "sqlite" {
		return nil, apperrors.ErrInvalidInput
	}
	return f.writer, nil
}

func topic(id, group string) domain.Topic {
	return domain.Topic{
		ID:            id,
		Label:         id,
		Group:         group,
		DefaultSubTab: "main",
		SubTabs: []domain.SubTab{{
			ID:    "main",
			Label: "Main",
			Diagram: domain.Diagram{Width: 10, Height: 4, Shapes: []domain.Shape{
				{Hotspot: "a", X: 0, Y: 0, W: 2, H: 2},
			}},
			Records: map[string]domain.HotspotRecord{
				"a": {ID: "a", Title: "A", Accent: "#112233", Body: "body"},
			},
		}},
	}
}

func basePack() domain.Pack {
	return domain.Pack{
		Groups:       []domain.TopicGroup{{ID: "structure", Label: "Structure"}},
		Topics:       []domain.Topic{topic("foundation", "structure"), topic("walls", "structure")},
		DefaultTopic: "foundation",
	}
}

func TestCatalogLoadsOnce(t *testing.T) {
	t.Parallel()
	src := &fakeSource{pack: basePack()}
	svc := service.NewCatalogService(src, nil, nil, nil)
	for i := 0; i < 3; i++ {
		c, err := svc.Catalog(context.Background())
		if err != nil {
			t.Fatalf("catalog: %v", err)
		}
		if c.Len() != 2 {
			t.Fatalf("expected two topics, got %d", c.Len())
		}
	}
	if src.loads != 1 {
		t.Fatalf("expected one load, got %d", src.loads)
	}
}

func TestCatalogMergesProviderTopics(t *testing.T) {
	t.Parallel()
	provider := fakeProvider{topics: []domain.Topic{
		topic("garden", "outdoor"),
		topic("walls", "structure"),
		{ID: "broken", Label: "Broken", Group: "structure", SubTabs: []domain.SubTab{{ID: "x"}, {ID: "x"}}},
	}}
	svc := service.NewCatalogService(&fakeSource{pack: basePack()}, []catalogout.TopicProvider{provider, fakeProvider{err: errors.New("down")}}, nil, nil)
	c, err := svc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected duplicate and broken topics to be skipped, got %d topics", c.Len())
	}
	garden, ok := c.Topic("garden")
	if !ok {
		t.Fatalf("expected garden topic")
	}
	if garden.Group != service.PluginGroup.ID {
		t.Fatalf("expected plugin group, got %s", garden.Group)
	}
}

func TestCatalogErrors(t *testing.T) {
	t.Parallel()
	empty := service.NewCatalogService(&fakeSource{pack: domain.Pack{Groups: []domain.TopicGroup{{ID: "g", Label: "G"}}}}, nil, nil, nil)
	if _, err := empty.Catalog(context.Background()); !errors.Is(err, apperrors.ErrNoContent) {
		t.Fatalf("expected no content, got %v", err)
	}
	failing := service.NewCatalogService(&fakeSource{err: errors.New("io")}, nil, nil, nil)
	if _, err := failing.Catalog(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	svc := service.NewCatalogService(&fakeSource{pack: basePack()}, nil, nil, nil)
	if _, err := svc.Topic(context.Background(), "ghost"); !errors.Is(err, apperrors.ErrTopicNotFound) {
		t.Fatalf("expected topic not found, got %v", err)
	}
}

func TestExportWritesCatalogPack(t *testing.T) {
	t.Parallel()
	w := &recordingWriter{}
	svc := service.NewCatalogService(&fakeSource{pack: basePack()}, nil, fakeFactory{writer: w}, nil)
	n, err := svc.Export(context.Background(), "sqlite", "/tmp/x.db")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 2 || len(w.packs) != 1 || len(w.packs[0].Topics) != 2 {
		t.Fatalf("unexpected export: n=%d packs=%d", n, len(w.packs))
	}
	if _, err := svc.Export(context.Background(), "pdf", "/tmp/x"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	noWriters := service.NewCatalogService(&fakeSource{pack: basePack()}, nil, nil, nil)
	if _, err := noWriters.Export(context.Background(), "sqlite", "/tmp/x.db"); err == nil {
		t.Fatalf("expected error without writers")
	}
}
