// Package cli provides the spoke-docbook command-line interface and the protoc
// plugin driver.
//
// # Commands
//
// render: Render proto files into one DocBook document
//
//	spoke-docbook render \
//		--proto-path ./proto \
//		--config docbook.properties \
//		--out docs/api.xml \
//		shop/order.proto shop/item.proto
//
// Output may also go to S3 (see DOCBOOK_S3_* in pkg/config):
//
//	spoke-docbook render --out s3://docs-bucket/api/docbook_out.xml order.proto
//
// watch: Render a directory and re-render on every .proto change
//
//	spoke-docbook watch --dir ./proto --out docs/api.xml --delay 1s
//
// template: Print the empty template document, or write it with --out
//
//	spoke-docbook template --config docbook.yaml
//
// version: Print the version
//
// # Protoc Plugin
//
// Plugin drives the same renderer from a CodeGeneratorRequest. Every file to
// generate is appended through protoc insertion points into the template file:
//
//	protoc --plugin=protoc-gen-docbook --docbook_out=docs \
//		--docbook_opt=include_type_glossary=1 shop/*.proto
//
// # Related Packages
//
//   - pkg/docbook: Renderer and Session
//   - pkg/schema: proto compilation and request decoding
//   - pkg/sink: output backends
package cli
