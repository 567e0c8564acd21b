package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"hazepito/internal/modules/catalog/domain"
	catalogout "hazepito/internal/modules/catalog/port/out"
)

const (
	TaxonomyFile = "taxonomy.yaml"
	TopicsDir    = "topics"
)

type taxonomyDocument struct {
	SchemaVersion int             `yaml:"schema_version"`
	DefaultTopic  string          `yaml:"default_topic"`
	Groups        []groupDocument `yaml:"groups"`
}

type groupDocument struct {
	ID     string   `yaml:"id"`
	Label  string   `yaml:"label"`
	Topics []string `yaml:"topics,omitempty"`
}

// FSContentSource reads a content pack laid out as taxonomy.yaml plus
// topics/*.md. It serves both the embedded pack and a directory on disk.
type FSContentSource struct {
	name string
	fsys fs.FS
}

func NewFSContentSource(name string, fsys fs.FS) catalogout.ContentSource {
	return &FSContentSource{name: name, fsys: fsys}
}

func (s *FSContentSource) Name() string { return s.name }

func (s *FSContentSource) Load(ctx context.Context) (domain.Pack, error) {
	raw, err := fs.ReadFile(s.fsys, TaxonomyFile)
	if err != nil {
		return domain.Pack{}, fmt.Errorf("read %s: %w", TaxonomyFile, err)
	}
	tax := taxonomyDocument{}
	if err := yaml.Unmarshal(raw, &tax); err != nil {
		return domain.Pack{}, fmt.Errorf("parse %s: %w", TaxonomyFile, err)
	}
	if tax.SchemaVersion != 0 && tax.SchemaVersion != domain.SchemaVersion {
		return domain.Pack{}, fmt.Errorf("unsupported schema_version %d", tax.SchemaVersion)
	}

	entries, err := fs.ReadDir(s.fsys, TopicsDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.Pack{}, fmt.Errorf("read %s: %w", TopicsDir, err)
	}
	byID := map[string]domain.Topic{}
	var fileOrder []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return domain.Pack{}, err
		}
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".md") {
			continue
		}
		content, err := fs.ReadFile(s.fsys, path.Join(TopicsDir, entry.Name()))
		if err != nil {
			return domain.Pack{}, fmt.Errorf("read topic %s: %w", entry.Name(), err)
		}
		topic, err := DecodeTopicDocument(entry.Name(), string(content))
		if err != nil {
			return domain.Pack{}, err
		}
		if _, dup := byID[topic.ID]; dup {
			return domain.Pack{}, fmt.Errorf("topic %s declared twice", topic.ID)
		}
		topic.Source = s.name
		byID[topic.ID] = topic
		fileOrder = append(fileOrder, topic.ID)
	}

	pack := domain.Pack{DefaultTopic: strings.TrimSpace(tax.DefaultTopic)}
	placed := map[string]struct{}{}
	for _, g := range tax.Groups {
		pack.Groups = append(pack.Groups, domain.TopicGroup{ID: g.ID, Label: g.Label})
		for _, id := range g.Topics {
			topic, ok := byID[id]
			if !ok {
				return domain.Pack{}, fmt.Errorf("group %s lists unknown topic %s", g.ID, id)
			}
			if _, ok := placed[id]; ok {
				return domain.Pack{}, fmt.Errorf("topic %s listed in more than one group", id)
			}
			topic.Group = g.ID
			placed[id] = struct{}{}
			pack.Topics = append(pack.Topics, topic)
		}
	}
	// Topics not listed in any group keep the group from their own file.
	for _, id := range fileOrder {
		if _, ok := placed[id]; ok {
			continue
		}
		pack.Topics = append(pack.Topics, byID[id])
	}
	return pack, nil
}
