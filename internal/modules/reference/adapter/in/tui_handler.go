package in

import (
	"context"

	"hazepito/internal/modules/reference/dto"
	referencein "hazepito/internal/modules/reference/port/in"
)

type TUIHandler struct {
	usecase referencein.Usecase
}

func NewTUIHandler(usecase referencein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Probe(ctx context.Context, url string) (dto.ProbeOutput, error) {
	return h.usecase.Probe(ctx, url)
}

func (h TUIHandler) OpenSearch(ctx context.Context, query string) (dto.SearchLinkOutput, error) {
	return h.usecase.OpenSearch(ctx, query)
}

func (h TUIHandler) SearchLink(ctx context.Context, query string) (dto.SearchLinkOutput, error) {
	return h.usecase.SearchLink(ctx, query)
}
