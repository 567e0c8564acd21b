package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"hazepito/internal/modules/catalog/domain"
	catalogout "hazepito/internal/modules/catalog/port/out"
	pluginin "hazepito/internal/modules/plugin/port/in"
)

// PluginTopicProvider decodes topic documents served by content plugins.
type PluginTopicProvider struct {
	plugins pluginin.Usecase
	logger  hclog.Logger
}

func NewPluginTopicProvider(plugins pluginin.Usecase, logger hclog.Logger) catalogout.TopicProvider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &PluginTopicProvider{plugins: plugins, logger: logger}
}

func (p *PluginTopicProvider) Name() string { return "plugins" }

func (p *PluginTopicProvider) Topics(ctx context.Context) ([]domain.Topic, error) {
	docs, err := p.plugins.Topics(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Topic, 0, len(docs))
	for _, doc := range docs {
		topic, err := DecodeTopicDocument(doc.Name, doc.Content)
		if err != nil {
			p.logger.Warn("plugin topic not decoded", "plugin", doc.PluginName, "document", doc.Name, "error", err)
			continue
		}
		topic.Source = "plugin:" + doc.PluginName
		out = append(out, topic)
	}
	return out, nil
}
