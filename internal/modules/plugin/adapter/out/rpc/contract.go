package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "hazepito"
	serviceName       = "hazepito.plugin.v1.TopicPlugin"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodListTopics  = "/" + serviceName + "/ListTopics"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "HAZEPITO_PLUGIN",
	MagicCookieValue: "hazepito",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

// TopicDocument carries one topic file, frontmatter and body included.
type TopicDocument struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type ListTopicsResponse struct {
	Topics []TopicDocument `json:"topics"`
}

type TopicPluginServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ListTopics(ctx context.Context, in *Empty) (*ListTopicsResponse, error)
}

type TopicPluginClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ListTopics(ctx context.Context) (*ListTopicsResponse, error)
}

type topicPluginClient struct {
	conn *grpc.ClientConn
}

func NewTopicPluginClient(conn *grpc.ClientConn) TopicPluginClient {
	return &topicPluginClient{conn: conn}
}

func (c *topicPluginClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *topicPluginClient) ListTopics(ctx context.Context) (*ListTopicsResponse, error) {
	out := &ListTopicsResponse{}
	if err := c.conn.Invoke(ctx, methodListTopics, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func emptyHandler(fullMethod string, call func(context.Context, *Empty) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := &Empty{}
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			empty, ok := req.(*Empty)
			if !ok {
				return nil, fmt.Errorf("invalid request type")
			}
			return call(ctx, empty)
		}
		return interceptor(ctx, in, info, handler)
	}
}

func RegisterTopicPluginServer(server grpc.ServiceRegistrar, impl TopicPluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*TopicPluginServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: emptyHandler(methodGetMetadata, func(ctx context.Context, in *Empty) (any, error) {
					return impl.GetMetadata(ctx, in)
				}),
			},
			{
				MethodName: "ListTopics",
				Handler: emptyHandler(methodListTopics, func(ctx context.Context, in *Empty) (any, error) {
					return impl.ListTopics(ctx, in)
				}),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/topic-plugin-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl TopicPluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterTopicPluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewTopicPluginClient(conn), nil
}

func PluginMap(impl TopicPluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
