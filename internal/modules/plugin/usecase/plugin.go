package usecase

import (
	"context"

	"hazepito/internal/modules/plugin/dto"
	pluginin "hazepito/internal/modules/plugin/port/in"
	"hazepito/internal/modules/plugin/service"
)

type Interactor struct {
	svc *service.PluginService
}

func NewInteractor(svc *service.PluginService) pluginin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Topics(ctx context.Context) ([]dto.TopicDocumentOutput, error) {
	return i.svc.Topics(ctx)
}
