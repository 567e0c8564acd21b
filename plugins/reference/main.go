package main

import (
	"context"

	pluginrpc "hazepito/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

const gardenTopic = `---
id: garden
label: Kert
subtitle: Kerttervezés az építkezés után
group: outdoor
search_query: kertépítés családi ház
subtabs:
  - id: layout
    label: Elrendezés
    diagram:
      width: 40
      height: 8
      art: |-
        ........................................
        .                                      .
        .                                      .
        .                                      .
        .                                      .
        .                                      .
        .                                      .
        ........................................
      shapes:
        - hotspot: terrace
          label: Terasz
          x: 2
          y: 1
          w: 14
          h: 3
        - hotspot: lawn
          label: Gyep
          x: 18
          y: 2
          w: 18
          h: 5
    records:
      terrace:
        title: Terasz
        accent: "#d97706"
        body: A ház felől 2% lejtéssel, fagyálló burkolattal készüljön.
      lawn:
        title: Gyep
        accent: "#16a34a"
        body: Legalább 20 cm termőföld és automata öntözés javasolt.
---
Ez a téma bővítményből érkezik: a kert a ház befejezése után következik.
`

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"topics"},
	}, nil
}

func (s *server) ListTopics(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.ListTopicsResponse, error) {
	return &pluginrpc.ListTopicsResponse{Topics: []pluginrpc.TopicDocument{
		{Name: "garden.md", Content: gardenTopic},
	}}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
