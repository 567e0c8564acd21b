package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"

	"hazepito/internal/modules/plugin/domain"
	"hazepito/internal/modules/plugin/dto"
	pluginout "hazepito/internal/modules/plugin/port/out"
)

type PluginService struct {
	store  pluginout.ManifestStore
	host   pluginout.Host
	logger hclog.Logger
}

func NewPluginService(store pluginout.ManifestStore, host pluginout.Host, logger hclog.Logger) *PluginService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &PluginService{store: store, host: host, logger: logger.Named("plugins")}
}

func (s *PluginService) List(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		caps := make([]string, 0, len(m.Capabilities))
		for _, c := range m.Capabilities {
			caps = append(caps, string(c))
		}
		out = append(out, dto.PluginInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Capabilities: caps})
	}
	return out, nil
}

func (s *PluginService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

// Topics collects topic documents from every enabled plugin with the topics
// capability. A failing plugin is logged and skipped.
func (s *PluginService) Topics(ctx context.Context) ([]dto.TopicDocumentOutput, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.TopicDocumentOutput
	for _, m := range manifests {
		if !m.Enabled {
			s.logger.Debug("plugin skipped", "plugin", m.Name, "error", domain.ErrPluginDisabled)
			continue
		}
		if !m.HasCapability(domain.CapabilityTopics) {
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			s.logger.Warn("plugin skipped", "plugin", m.Name, "error", err)
			continue
		}
		if s.host == nil {
			continue
		}
		docs, err := s.host.ListTopics(ctx, m)
		if err != nil {
			s.logger.Warn("plugin topics failed", "plugin", m.Name, "error", err)
			continue
		}
		for _, doc := range docs {
			if err := doc.Validate(); err != nil {
				s.logger.Warn("plugin topic rejected", "plugin", m.Name, "error", err)
				continue
			}
			out = append(out, dto.TopicDocumentOutput{PluginName: m.Name, Name: doc.Name, Content: doc.Content})
		}
	}
	return out, nil
}

func (s *PluginService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate plugin name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
