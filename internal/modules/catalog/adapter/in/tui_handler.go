package in

import (
	"context"

	"hazepito/internal/modules/catalog/dto"
	catalogin "hazepito/internal/modules/catalog/port/in"
)

type TUIHandler struct {
	usecase catalogin.Usecase
}

func NewTUIHandler(usecase catalogin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Taxonomy(ctx context.Context) (dto.TaxonomyOutput, error) {
	return h.usecase.Taxonomy(ctx)
}

func (h TUIHandler) Topic(ctx context.Context, id string) (dto.TopicOutput, error) {
	return h.usecase.Topic(ctx, id)
}
