// Package config provides the render options and runtime settings.
//
// # Render Options
//
// Options are read once, before the first render pass, from a properties file
// (docbook.properties by default) or a YAML file, then overridden by
// DOCBOOK_<KEY> environment variables:
//
//	field_name_column_width=4
//	field_type_column_width=3
//	field_rules_column_width=3
//	field_desc_column_width=8
//	column_header_color=8eb4e3
//	row_color_primary=ffffff
//	row_color_alternate=dbe5f1
//	include_type_glossary=1
//	omit_empty_messages=1
//	bytes_default_as_hex=1
//
// A missing file is not an error. Malformed lines and unknown keys are
// skipped. Boolean keys are disabled by "0" and enabled by any other value.
//
// # Runtime Settings
//
//	DOCBOOK_LOG_LEVEL="info"      # debug, info, warn, error
//	DOCBOOK_LOG_FORMAT="text"     # text, json
//	DOCBOOK_OTEL_ENDPOINT="otel-collector:4317"
//	DOCBOOK_METRICS_FILE="/var/lib/node_exporter/docbook.prom"
//	DOCBOOK_S3_REGION="us-east-1"
//	DOCBOOK_S3_ENDPOINT="http://localhost:9000"  # MinIO
//	DOCBOOK_S3_USE_PATH_STYLE="true"
//
// # Usage Example
//
//	opts := config.Load(config.DefaultFileName, log)
//	rt := config.LoadRuntime()
package config
