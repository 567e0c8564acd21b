package out_test

import (
	"context"
	"testing"

	catalogout "hazepito/internal/modules/catalog/adapter/out"
	"hazepito/internal/modules/plugin/dto"
)

type fakePlugins struct {
	docs []dto.TopicDocumentOutput
}

func (f fakePlugins) List(context.Context) ([]dto.PluginInfo, error)     { return nil, nil }
func (f fakePlugins) Doctor(context.Context) ([]dto.DoctorResult, error) { return nil, nil }
func (f fakePlugins) Topics(context.Context) ([]dto.TopicDocumentOutput, error) {
	return f.docs, nil
}

func TestPluginTopicProviderDecodesAndSkipsBroken(t *testing.T) {
	t.Parallel()
	provider := catalogout.NewPluginTopicProvider(fakePlugins{docs: []dto.TopicDocumentOutput{
		{PluginName: "extra", Name: "roof.md", Content: roofDoc},
		{PluginName: "extra", Name: "broken.md", Content: "---\nlabel: [\n---\n"},
	}}, nil)
	topics, err := provider.Topics(context.Background())
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != "roof" {
		t.Fatalf("unexpected topics: %+v", topics)
	}
	if topics[0].Source != "plugin:extra" {
		t.Fatalf("unexpected source: %s", topics[0].Source)
	}
}
