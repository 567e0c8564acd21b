package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hazepito/internal/modules/catalog/domain"
	catalogout "hazepito/internal/modules/catalog/port/out"
	apperrors "hazepito/internal/platform/errors"
)

// MarkdownDirWriter writes a pack in the layout FSContentSource reads.
type MarkdownDirWriter struct {
	root string
}

func NewMarkdownDirWriter(root string) catalogout.ContentWriter {
	return &MarkdownDirWriter{root: root}
}

func (w *MarkdownDirWriter) Write(ctx context.Context, pack domain.Pack) error {
	for _, t := range pack.Topics {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	topicsDir := filepath.Join(w.root, TopicsDir)
	if err := os.MkdirAll(topicsDir, 0o755); err != nil {
		return fmt.Errorf("create topics dir: %w", err)
	}
	tax := taxonomyDocument{SchemaVersion: domain.SchemaVersion, DefaultTopic: pack.DefaultTopic}
	for _, g := range pack.Groups {
		group := groupDocument{ID: g.ID, Label: g.Label}
		for _, t := range pack.Topics {
			if t.Group == g.ID {
				group.Topics = append(group.Topics, t.ID)
			}
		}
		tax.Groups = append(tax.Groups, group)
	}
	raw, err := yaml.Marshal(tax)
	if err != nil {
		return fmt.Errorf("marshal taxonomy: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.root, TaxonomyFile), raw, 0o644); err != nil {
		return fmt.Errorf("write taxonomy: %w", err)
	}
	for _, t := range pack.Topics {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := EncodeTopicDocument(t)
		if err != nil {
			return fmt.Errorf("encode topic %s: %w", t.ID, err)
		}
		if err := os.WriteFile(filepath.Join(topicsDir, t.ID+".md"), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write topic %s: %w", t.ID, err)
		}
	}
	return nil
}
