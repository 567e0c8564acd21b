package in

import (
	"context"

	"hazepito/internal/modules/reference/dto"
)

type Usecase interface {
	Probe(ctx context.Context, url string) (dto.ProbeOutput, error)
	SearchLink(ctx context.Context, query string) (dto.SearchLinkOutput, error)
	OpenSearch(ctx context.Context, query string) (dto.SearchLinkOutput, error)
	Open(ctx context.Context, url string) error
}
