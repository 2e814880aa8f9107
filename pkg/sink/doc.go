// Package sink provides the merge sinks that receive rendered DocBook text.
//
// # Insertion Protocol
//
// The output document is created once from a template that carries an
// insertion marker comment:
//
//	<!-- @@protoc_insertion_point(insertion_point) -->
//
// Every later append splices its text in front of the marker's line, leaving
// the marker in place so the next append lands after it. Sinks never parse
// the rest of the document.
//
// # Implementations
//
//   - FileSink: a local file, rewritten through a temp file and rename
//   - PluginSink: protoc CodeGeneratorResponse files with native insertion points
//   - S3Sink: an S3 (or S3-compatible) object, read-splice-write
package sink
