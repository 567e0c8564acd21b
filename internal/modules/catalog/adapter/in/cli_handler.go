package in

import (
	"context"

	"hazepito/internal/modules/catalog/dto"
	catalogin "hazepito/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Taxonomy(ctx context.Context) (dto.TaxonomyOutput, error) {
	return h.usecase.Taxonomy(ctx)
}

func (h CLIHandler) Topic(ctx context.Context, id string) (dto.TopicOutput, error) {
	return h.usecase.Topic(ctx, id)
}

func (h CLIHandler) Lint(ctx context.Context) ([]dto.FindingOutput, error) {
	return h.usecase.Lint(ctx)
}

func (h CLIHandler) Export(ctx context.Context, format, path string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Format: format, Path: path})
}
