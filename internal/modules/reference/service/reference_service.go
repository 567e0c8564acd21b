package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"hazepito/internal/modules/reference/domain"
	"hazepito/internal/modules/reference/dto"
	referenceout "hazepito/internal/modules/reference/port/out"
	apperrors "hazepito/internal/platform/errors"
)

type ReferenceService struct {
	probe        referenceout.ImageProbe
	launcher     referenceout.ExternalLauncher
	searchEngine string
	probeTimeout time.Duration
	logger       hclog.Logger
}

func NewReferenceService(probe referenceout.ImageProbe, launcher referenceout.ExternalLauncher, searchEngine string, probeTimeout time.Duration, logger hclog.Logger) *ReferenceService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ReferenceService{
		probe:        probe,
		launcher:     launcher,
		searchEngine: searchEngine,
		probeTimeout: probeTimeout,
		logger:       logger.Named("reference"),
	}
}

// Probe never fails for an unreachable image; the outcome is reported in the
// result so that each photo fails on its own.
func (s *ReferenceService) Probe(ctx context.Context, url string) (dto.ProbeOutput, error) {
	url = strings.TrimSpace(url)
	if err := domain.ValidateTarget(url); err != nil {
		return dto.ProbeOutput{URL: url, Reason: err.Error()}, nil
	}
	if s.probe == nil {
		return dto.ProbeOutput{}, fmt.Errorf("image probe is not configured")
	}
	if s.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.probeTimeout)
		defer cancel()
	}
	if err := s.probe.Probe(ctx, url); err != nil {
		s.logger.Debug("photo probe failed", "url", url, "error", err)
		return dto.ProbeOutput{URL: url, Reason: err.Error()}, nil
	}
	return dto.ProbeOutput{URL: url, Loaded: true}, nil
}

func (s *ReferenceService) SearchLink(_ context.Context, query string) (dto.SearchLinkOutput, error) {
	link, err := domain.SearchURL(s.searchEngine, query)
	if err != nil {
		return dto.SearchLinkOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return dto.SearchLinkOutput{Query: strings.TrimSpace(query), URL: link}, nil
}

func (s *ReferenceService) OpenSearch(ctx context.Context, query string) (dto.SearchLinkOutput, error) {
	out, err := s.SearchLink(ctx, query)
	if err != nil {
		return dto.SearchLinkOutput{}, err
	}
	if err := s.Open(ctx, out.URL); err != nil {
		return dto.SearchLinkOutput{}, err
	}
	return out, nil
}

func (s *ReferenceService) Open(ctx context.Context, url string) error {
	if err := domain.ValidateTarget(url); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if s.launcher == nil {
		return fmt.Errorf("external launcher is not configured")
	}
	if err := s.launcher.Open(ctx, url); err != nil {
		s.logger.Warn("external open failed", "url", url, "error", err)
		return err
	}
	s.logger.Info("opened external link", "url", url)
	return nil
}
