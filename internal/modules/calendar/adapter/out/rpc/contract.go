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
	PluginMapKey      = "studykit"
	serviceName       = "studykit.calendar.v1.CalendarProvider"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodPushEvent   = "/" + serviceName + "/PushEvent"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "STUDYKIT_PLUGIN",
	MagicCookieValue: "studykit",
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

type PushEventRequest struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int32  `json:"duration_minutes"`
	Description     string `json:"description"`
}

type PushEventResponse struct {
	EventID string `json:"event_id"`
	Message string `json:"message"`
}

type CalendarProviderServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	PushEvent(ctx context.Context, in *PushEventRequest) (*PushEventResponse, error)
}

type CalendarProviderClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	PushEvent(ctx context.Context, in *PushEventRequest) (*PushEventResponse, error)
}

type calendarProviderClient struct {
	conn *grpc.ClientConn
}

func NewCalendarProviderClient(conn *grpc.ClientConn) CalendarProviderClient {
	return &calendarProviderClient{conn: conn}
}

func (c *calendarProviderClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarProviderClient) PushEvent(ctx context.Context, in *PushEventRequest) (*PushEventResponse, error) {
	out := &PushEventResponse{}
	if err := c.conn.Invoke(ctx, methodPushEvent, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterCalendarProviderServer(server grpc.ServiceRegistrar, impl CalendarProviderServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*CalendarProviderServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "PushEvent",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &PushEventRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.PushEvent(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodPushEvent}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*PushEventRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.PushEvent(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/calendar-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl CalendarProviderServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterCalendarProviderServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewCalendarProviderClient(conn), nil
}

func PluginMap(impl CalendarProviderServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
