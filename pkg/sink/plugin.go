package sink

import (
	"context"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"
)

// PluginSink collects output as protoc CodeGeneratorResponse files. The
// template becomes a whole file; every append becomes an insertion into it,
// which protoc applies in order.
type PluginSink struct {
	name  string
	point string

	mu    sync.Mutex
	files []*pluginpb.CodeGeneratorResponse_File
}

// NewPluginSink creates a sink for the generated file name using the named
// insertion point
func NewPluginSink(name, point string) *PluginSink {
	return &PluginSink{name: name, point: point}
}

// WriteTemplate implements Sink.WriteTemplate
func (s *PluginSink) WriteTemplate(ctx context.Context, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = append(s.files, &pluginpb.CodeGeneratorResponse_File{
		Name:    proto.String(s.name),
		Content: proto.String(content),
	})
	return nil
}

// Append implements Sink.Append
func (s *PluginSink) Append(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = append(s.files, &pluginpb.CodeGeneratorResponse_File{
		Name:           proto.String(s.name),
		InsertionPoint: proto.String(s.point),
		Content:        proto.String(text),
	})
	return nil
}

// Response returns the response to hand back to protoc
func (s *PluginSink) Response() *pluginpb.CodeGeneratorResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]*pluginpb.CodeGeneratorResponse_File, len(s.files))
	copy(files, s.files)

	return &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
		File:              files,
	}
}

// ErrorResponse returns a response reporting err to protoc
func ErrorResponse(err error) *pluginpb.CodeGeneratorResponse {
	return &pluginpb.CodeGeneratorResponse{
		Error: proto.String(err.Error()),
	}
}
