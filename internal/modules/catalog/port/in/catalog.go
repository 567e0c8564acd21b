package in

import (
	"context"

	"hazepito/internal/modules/catalog/dto"
)

type Usecase interface {
	Taxonomy(ctx context.Context) (dto.TaxonomyOutput, error)
	Topic(ctx context.Context, id string) (dto.TopicOutput, error)
	Lint(ctx context.Context) ([]dto.FindingOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
