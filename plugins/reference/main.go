package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/hashicorp/go-plugin"

	calendarrpc "studykit/internal/modules/calendar/adapter/out/rpc"
)

// server is a reference calendar provider. It accepts every event and
// answers with a deterministic event id, which makes it usable as a test
// double for the provider host.
type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *calendarrpc.Empty) (*calendarrpc.Metadata, error) {
	return &calendarrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"push_event"},
	}, nil
}

func (s *server) PushEvent(_ context.Context, in *calendarrpc.PushEventRequest) (*calendarrpc.PushEventResponse, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("event title is required")
	}
	hash := sha256.Sum256([]byte(in.Date + in.Time + in.Title))
	return &calendarrpc.PushEventResponse{
		EventID: hex.EncodeToString(hash[:8]),
		Message: fmt.Sprintf("accepted %q at %s %s", in.Title, in.Date, in.Time),
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: calendarrpc.HandshakeConfig,
		Plugins:         calendarrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
