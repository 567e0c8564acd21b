package usecase

import (
	"context"
	"strings"

	"hazepito/internal/modules/catalog/domain"
	"hazepito/internal/modules/catalog/dto"
	catalogin "hazepito/internal/modules/catalog/port/in"
	"hazepito/internal/modules/catalog/service"
	apperrors "hazepito/internal/platform/errors"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Taxonomy(ctx context.Context) (dto.TaxonomyOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.TaxonomyOutput{}, err
	}
	out := dto.TaxonomyOutput{DefaultTopic: c.DefaultTopic()}
	for _, g := range c.Groups() {
		group := dto.GroupOutput{ID: g.ID, Label: g.Label}
		for _, t := range c.InGroup(g.ID) {
			group.Topics = append(group.Topics, dto.TopicSummaryOutput{
				ID:       t.ID,
				Label:    t.Label,
				Subtitle: t.Subtitle,
				Group:    t.Group,
				Source:   t.Source,
			})
		}
		if len(group.Topics) > 0 {
			out.Groups = append(out.Groups, group)
		}
	}
	return out, nil
}

func (i *Interactor) Topic(ctx context.Context, id string) (dto.TopicOutput, error) {
	t, err := i.svc.Topic(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.TopicOutput{}, err
	}
	return toTopicOutput(t), nil
}

func (i *Interactor) Lint(ctx context.Context) ([]dto.FindingOutput, error) {
	findings, err := i.svc.Lint(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FindingOutput, 0, len(findings))
	for _, f := range findings {
		out = append(out, dto.FindingOutput{Topic: f.Topic, SubTab: f.SubTab, Hotspot: f.Hotspot, Message: f.Message})
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = "sqlite"
	}
	if strings.TrimSpace(input.Path) == "" {
		return dto.ExportOutput{}, apperrors.ErrInvalidInput
	}
	n, err := i.svc.Export(ctx, format, input.Path)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Format: format, Path: input.Path, Topics: n}, nil
}

func toTopicOutput(t domain.Topic) dto.TopicOutput {
	out := dto.TopicOutput{
		ID:            t.ID,
		Label:         t.Label,
		Subtitle:      t.Subtitle,
		Group:         t.Group,
		DefaultSubTab: t.DefaultSubTab,
		Intro:         t.Intro,
		SearchQuery:   t.SearchQuery,
		Source:        t.Source,
	}
	for _, s := range t.SubTabs {
		sub := dto.SubTabOutput{
			ID:    s.ID,
			Label: s.Label,
			Diagram: dto.DiagramOutput{
				Width:  s.Diagram.Width,
				Height: s.Diagram.Height,
				Art:    append([]string(nil), s.Diagram.Art...),
			},
			Records: make(map[string]dto.RecordOutput, len(s.Records)),
		}
		for _, sh := range s.Diagram.Shapes {
			sub.Diagram.Shapes = append(sub.Diagram.Shapes, dto.ShapeOutput(sh))
		}
		for id, r := range s.Records {
			sub.Records[id] = dto.RecordOutput(r)
		}
		out.SubTabs = append(out.SubTabs, sub)
	}
	for _, p := range t.Photos {
		out.Photos = append(out.Photos, dto.PhotoOutput(p))
	}
	return out
}
