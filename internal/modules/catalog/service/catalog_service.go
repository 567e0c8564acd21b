package service

import (
	"context"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"hazepito/internal/modules/catalog/domain"
	catalogout "hazepito/internal/modules/catalog/port/out"
	apperrors "hazepito/internal/platform/errors"
)

// PluginGroup collects provider topics whose group is not in the primary pack.
var PluginGroup = domain.TopicGroup{ID: "plugins", Label: "Bővítmények"}

type CatalogService struct {
	source    catalogout.ContentSource
	providers []catalogout.TopicProvider
	writers   catalogout.WriterFactory
	logger    hclog.Logger

	mu      sync.Mutex
	catalog *domain.Catalog
}

func NewCatalogService(source catalogout.ContentSource, providers []catalogout.TopicProvider, writers catalogout.WriterFactory, logger hclog.Logger) *CatalogService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &CatalogService{source: source, providers: providers, writers: writers, logger: logger.Named("catalog")}
}

// Catalog loads and merges content once; later calls return the cached value.
func (s *CatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return *s.catalog, nil
	}
	c, err := s.load(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	s.catalog = &c
	return c, nil
}

func (s *CatalogService) Topic(ctx context.Context, id string) (domain.Topic, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return domain.Topic{}, err
	}
	t, ok := c.Topic(id)
	if !ok {
		return domain.Topic{}, fmt.Errorf("%w: %s", apperrors.ErrTopicNotFound, id)
	}
	return t, nil
}

func (s *CatalogService) Lint(ctx context.Context) ([]domain.Finding, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Lint(), nil
}

func (s *CatalogService) Export(ctx context.Context, format, path string) (int, error) {
	if s.writers == nil {
		return 0, fmt.Errorf("%w: no content writers configured", apperrors.ErrInvalidInput)
	}
	c, err := s.Catalog(ctx)
	if err != nil {
		return 0, err
	}
	w, err := s.writers.Writer(format, path)
	if err != nil {
		return 0, err
	}
	if err := w.Write(ctx, c.Pack()); err != nil {
		return 0, fmt.Errorf("export %s: %w", format, err)
	}
	s.logger.Info("content exported", "format", format, "path", path, "topics", c.Len())
	return c.Len(), nil
}

func (s *CatalogService) load(ctx context.Context) (domain.Catalog, error) {
	if s.source == nil {
		return domain.Catalog{}, fmt.Errorf("content source is not configured")
	}
	pack, err := s.source.Load(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load %s: %w", s.source.Name(), err)
	}
	s.logger.Debug("content loaded", "source", s.source.Name(), "topics", len(pack.Topics))

	for _, p := range s.providers {
		topics, err := p.Topics(ctx)
		if err != nil {
			s.logger.Warn("topic provider failed", "provider", p.Name(), "error", err)
			continue
		}
		pack = s.merge(pack, p.Name(), topics)
	}

	c, err := domain.NewCatalog(pack)
	if err != nil {
		return domain.Catalog{}, err
	}
	if c.Len() == 0 {
		return domain.Catalog{}, apperrors.ErrNoContent
	}
	for _, f := range c.Lint() {
		s.logger.Warn("content lint", "finding", f.String())
	}
	return c, nil
}

func (s *CatalogService) merge(pack domain.Pack, provider string, topics []domain.Topic) domain.Pack {
	ids := map[string]struct{}{}
	for _, t := range pack.Topics {
		ids[t.ID] = struct{}{}
	}
	groups := map[string]struct{}{}
	for _, g := range pack.Groups {
		groups[g.ID] = struct{}{}
	}
	for _, t := range topics {
		if _, dup := ids[t.ID]; dup {
			s.logger.Warn("skipping provider topic", "provider", provider, "topic", t.ID, "error", apperrors.ErrDuplicateTopic)
			continue
		}
		if _, ok := groups[t.Group]; !ok {
			t.Group = PluginGroup.ID
			if _, ok := groups[PluginGroup.ID]; !ok {
				pack.Groups = append(pack.Groups, PluginGroup)
				groups[PluginGroup.ID] = struct{}{}
			}
		}
		if err := t.Validate(); err != nil {
			s.logger.Warn("skipping provider topic", "provider", provider, "topic", t.ID, "error", err)
			continue
		}
		ids[t.ID] = struct{}{}
		pack.Topics = append(pack.Topics, t)
	}
	return pack
}
