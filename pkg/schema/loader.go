package schema

import (
	"context"
	"fmt"

	"github.com/bufbuild/protocompile"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

// Loader compiles .proto files into render units
type Loader struct {
	importPaths []string
	log         *logrus.Logger
}

// NewLoader creates a loader resolving imports against importPaths. The
// well-known google/protobuf imports are always available.
func NewLoader(importPaths []string, log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
	}
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}

	return &Loader{
		importPaths: importPaths,
		log:         log,
	}
}

// Load compiles the named files from disk and returns one Unit per file, in
// argument order
func (l *Loader) Load(ctx context.Context, files ...string) ([]*Unit, error) {
	return l.compile(ctx, &protocompile.SourceResolver{ImportPaths: l.importPaths}, files)
}

// LoadSources compiles the named files from in-memory sources keyed by path
func (l *Loader) LoadSources(ctx context.Context, sources map[string]string, files ...string) ([]*Unit, error) {
	return l.compile(ctx, &protocompile.SourceResolver{
		Accessor: protocompile.SourceAccessorFromMap(sources),
	}, files)
}

func (l *Loader) compile(ctx context.Context, resolver protocompile.Resolver, files []string) ([]*Unit, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no proto files to compile")
	}

	compiler := protocompile.Compiler{
		Resolver:       protocompile.WithStandardImports(resolver),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}

	result, err := compiler.Compile(ctx, files...)
	if err != nil {
		return nil, fmt.Errorf("protocompile failed: %w", err)
	}

	units := make([]*Unit, 0, len(result))
	for _, file := range result {
		unit := FromFileDescriptor(file)
		l.log.WithFields(logrus.Fields{
			"file":     unit.Name,
			"messages": len(unit.Messages),
			"enums":    len(unit.Enums),
		}).Debug("Compiled proto file")
		units = append(units, unit)
	}

	return units, nil
}

// UnitsFromRequest builds one Unit per file protoc asked the plugin to
// generate, in request order
func UnitsFromRequest(req *pluginpb.CodeGeneratorRequest) ([]*Unit, error) {
	files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: req.GetProtoFile()})
	if err != nil {
		return nil, fmt.Errorf("failed to build file registry: %w", err)
	}

	units := make([]*Unit, 0, len(req.GetFileToGenerate()))
	for _, name := range req.GetFileToGenerate() {
		fd, err := files.FindFileByPath(name)
		if err != nil {
			return nil, fmt.Errorf("file to generate %s not in request: %w", name, err)
		}
		units = append(units, FromFileDescriptor(fd))
	}

	return units, nil
}
