package in

import (
	"context"

	"hazepito/internal/modules/reference/dto"
	referencein "hazepito/internal/modules/reference/port/in"
)

type CLIHandler struct {
	usecase referencein.Usecase
}

func NewCLIHandler(usecase referencein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Probe(ctx context.Context, url string) (dto.ProbeOutput, error) {
	return h.usecase.Probe(ctx, url)
}

func (h CLIHandler) SearchLink(ctx context.Context, query string) (dto.SearchLinkOutput, error) {
	return h.usecase.SearchLink(ctx, query)
}

func (h CLIHandler) Open(ctx context.Context, url string) error {
	return h.usecase.Open(ctx, url)
}
