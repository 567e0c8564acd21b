package in

import (
	"context"

	"hazepito/internal/modules/plugin/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Topics(ctx context.Context) ([]dto.TopicDocumentOutput, error)
}
