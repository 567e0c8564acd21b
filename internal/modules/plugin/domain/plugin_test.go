package domain

import (
	"strings"
	"testing"
)

func validManifest() Manifest {
	return Manifest{
		Name:         "extra",
		Version:      "0.1.0",
		Binary:       "./extra",
		SHA256:       strings.Repeat("a", 64),
		Enabled:      true,
		Capabilities: []Capability{CapabilityTopics},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest: %v", err)
	}

	cases := map[string]func(*Manifest){
		"missing name":       func(m *Manifest) { m.Name = "" },
		"missing version":    func(m *Manifest) { m.Version = "" },
		"missing binary":     func(m *Manifest) { m.Binary = "" },
		"bad checksum":       func(m *Manifest) { m.SHA256 = "ABC" },
		"no capabilities":    func(m *Manifest) { m.Capabilities = nil },
		"unknown capability": func(m *Manifest) { m.Capabilities = []Capability{"command"} },
		"duplicate capability": func(m *Manifest) {
			m.Capabilities = []Capability{CapabilityTopics, CapabilityTopics}
		},
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := validManifest()
			mutate(&m)
			if err := m.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestHasCapability(t *testing.T) {
	t.Parallel()
	m := validManifest()
	if !m.HasCapability(CapabilityTopics) {
		t.Fatalf("expected topics capability")
	}
	m.Capabilities = nil
	if m.HasCapability(CapabilityTopics) {
		t.Fatalf("expected no capability")
	}
}

func TestTopicDocumentValidate(t *testing.T) {
	t.Parallel()
	if err := (TopicDocument{Name: "a.md", Content: "---\nid: a\n---\n"}).Validate(); err != nil {
		t.Fatalf("valid document: %v", err)
	}
	if err := (TopicDocument{Content: "x"}).Validate(); err == nil {
		t.Fatalf("expected missing name error")
	}
	if err := (TopicDocument{Name: "a.md"}).Validate(); err == nil {
		t.Fatalf("expected empty content error")
	}
}
