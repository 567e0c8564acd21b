package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hazepito/internal/modules/plugin/domain"
	pluginout "hazepito/internal/modules/plugin/port/out"
)

const ManifestFile = "plugins.json"

type FileManifestStore struct {
	pluginsDir string
	path       string
}

// NewFileManifestStore reads <pluginsDir>/plugins.json. Relative binaries
// resolve against pluginsDir.
func NewFileManifestStore(pluginsDir string) pluginout.ManifestStore {
	return &FileManifestStore{pluginsDir: pluginsDir, path: filepath.Join(pluginsDir, ManifestFile)}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	if s.pluginsDir == "" {
		return []domain.Manifest{}, nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read plugin manifest store: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugin manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.pluginsDir, manifests[i].Binary))
		}
	}
	return manifests, nil
}
