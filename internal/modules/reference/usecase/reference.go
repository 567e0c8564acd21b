package usecase

import (
	"context"

	"hazepito/internal/modules/reference/dto"
	referencein "hazepito/internal/modules/reference/port/in"
	"hazepito/internal/modules/reference/service"
)

type Interactor struct {
	svc *service.ReferenceService
}

func NewInteractor(svc *service.ReferenceService) referencein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Probe(ctx context.Context, url string) (dto.ProbeOutput, error) {
	return i.svc.Probe(ctx, url)
}

func (i *Interactor) SearchLink(ctx context.Context, query string) (dto.SearchLinkOutput, error) {
	return i.svc.SearchLink(ctx, query)
}

func (i *Interactor) OpenSearch(ctx context.Context, query string) (dto.SearchLinkOutput, error) {
	return i.svc.OpenSearch(ctx, query)
}

func (i *Interactor) Open(ctx context.Context, url string) error {
	return i.svc.Open(ctx, url)
}
