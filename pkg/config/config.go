package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the options file looked up in the working directory
const DefaultFileName = "docbook.properties"

// Option keys
const (
	KeyFieldNameColumnWidth  = "field_name_column_width"
	KeyFieldTypeColumnWidth  = "field_type_column_width"
	KeyFieldRulesColumnWidth = "field_rules_column_width"
	KeyFieldDescColumnWidth  = "field_desc_column_width"
	KeyColumnHeaderColor     = "column_header_color"
	KeyRowColorPrimary       = "row_color_primary"
	KeyRowColorAlternate     = "row_color_alternate"
	KeyIncludeTypeGlossary   = "include_type_glossary"
	KeyOmitEmptyMessages     = "omit_empty_messages"
	KeyBytesDefaultAsHex     = "bytes_default_as_hex"
	KeyOutputName            = "output_name"
	KeyInsertionPoint        = "insertion_point"
)

// Keys lists every recognized option key
var Keys = []string{
	KeyFieldNameColumnWidth,
	KeyFieldTypeColumnWidth,
	KeyFieldRulesColumnWidth,
	KeyFieldDescColumnWidth,
	KeyColumnHeaderColor,
	KeyRowColorPrimary,
	KeyRowColorAlternate,
	KeyIncludeTypeGlossary,
	KeyOmitEmptyMessages,
	KeyBytesDefaultAsHex,
	KeyOutputName,
	KeyInsertionPoint,
}

// Default values
const (
	DefaultFieldNameColumnWidth  = "4"
	DefaultFieldTypeColumnWidth  = "3"
	DefaultFieldRulesColumnWidth = "3"
	DefaultFieldDescColumnWidth  = "8"
	DefaultColumnHeaderColor     = "8eb4e3"
	DefaultRowColorPrimary       = "ffffff"
	DefaultRowColorAlternate     = "dbe5f1"
	DefaultOutputName            = "docbook_out.xml"
	DefaultInsertionPoint        = "insertion_point"
)

// Options holds the render options. An Options value is never modified once
// built and is shared by every render pass.
type Options struct {
	// Table column widths, rendered as proportional colwidth values
	FieldNameColumnWidth  string
	FieldTypeColumnWidth  string
	FieldRulesColumnWidth string
	FieldDescColumnWidth  string

	// Background colors as hex RGB without the leading '#'
	ColumnHeaderColor string
	RowColorPrimary   string
	RowColorAlternate string

	IncludeTypeGlossary bool
	OmitEmptyMessages   bool
	BytesDefaultAsHex   bool

	OutputName     string
	InsertionPoint string
}

// Default returns the options used when nothing is configured
func Default() *Options {
	return FromValues(nil)
}

// Values is the raw key/value view of a configuration source
type Values map[string]string

// Merge returns a copy of v with every entry of other applied on top
func (v Values) Merge(other Values) Values {
	merged := make(Values, len(v)+len(other))
	for k, val := range v {
		merged[k] = val
	}
	for k, val := range other {
		merged[k] = val
	}
	return merged
}

// FromValues builds Options from raw values. Unrecognized keys are ignored and
// missing keys fall back to their defaults.
func FromValues(v Values) *Options {
	return &Options{
		FieldNameColumnWidth:  v.get(KeyFieldNameColumnWidth, DefaultFieldNameColumnWidth),
		FieldTypeColumnWidth:  v.get(KeyFieldTypeColumnWidth, DefaultFieldTypeColumnWidth),
		FieldRulesColumnWidth: v.get(KeyFieldRulesColumnWidth, DefaultFieldRulesColumnWidth),
		FieldDescColumnWidth:  v.get(KeyFieldDescColumnWidth, DefaultFieldDescColumnWidth),
		ColumnHeaderColor:     v.get(KeyColumnHeaderColor, DefaultColumnHeaderColor),
		RowColorPrimary:       v.get(KeyRowColorPrimary, DefaultRowColorPrimary),
		RowColorAlternate:     v.get(KeyRowColorAlternate, DefaultRowColorAlternate),
		IncludeTypeGlossary:   v.flag(KeyIncludeTypeGlossary, false),
		OmitEmptyMessages:     v.flag(KeyOmitEmptyMessages, true),
		BytesDefaultAsHex:     v.flag(KeyBytesDefaultAsHex, true),
		OutputName:            v.get(KeyOutputName, DefaultOutputName),
		InsertionPoint:        v.get(KeyInsertionPoint, DefaultInsertionPoint),
	}
}

func (v Values) get(key, defaultValue string) string {
	if value, ok := v[key]; ok && value != "" {
		return value
	}
	return defaultValue
}

// flag treats an absent key as defaultValue, "0" as false and anything else as true
func (v Values) flag(key string, defaultValue bool) bool {
	value, ok := v[key]
	if !ok || value == "" {
		return defaultValue
	}
	return value != "0"
}

// Load reads the options file at path and applies DOCBOOK_* environment
// overrides. A missing or unreadable file is not an error: the defaults apply.
func Load(path string, log *logrus.Logger) *Options {
	return LoadWithOverrides(path, nil, log)
}

// LoadWithOverrides is Load with overrides applied last, on top of the
// environment
func LoadWithOverrides(path string, overrides Values, log *logrus.Logger) *Options {
	if log == nil {
		log = logrus.New()
	}

	values, err := ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("Options file not loaded, using defaults")
		values = Values{}
	}

	return FromValues(values.Merge(EnvValues()).Merge(overrides))
}

// ReadFile reads a YAML (.yaml, .yml) or properties options file
func ReadFile(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read options file: %w", err)
		}
		return ParseYAML(data)
	default:
		return ParseProperties(f)
	}
}

// ParseProperties parses Java-style key=value lines. Lines starting with '#'
// are comments. Lines without '=', with '=' in first position, or with an
// empty key or value are skipped.
func ParseProperties(r io.Reader) (Values, error) {
	values := make(Values)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		p := strings.IndexByte(line, '=')
		if p <= 0 {
			continue
		}

		k := strings.TrimSpace(line[:p])
		v := strings.TrimSpace(line[p+1:])
		if k != "" && v != "" {
			values[k] = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	return values, nil
}

// ParseYAML parses a flat YAML mapping. Scalars of any type are accepted;
// booleans map to "1" and "0".
func ParseYAML(data []byte) (Values, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml options: %w", err)
	}

	values := make(Values, len(raw))
	for k, v := range raw {
		switch typed := v.(type) {
		case nil:
			continue
		case bool:
			if typed {
				values[k] = "1"
			} else {
				values[k] = "0"
			}
		case map[string]interface{}, []interface{}:
			continue
		default:
			values[k] = fmt.Sprint(typed)
		}
	}

	return values, nil
}

// ParseParameter parses a protoc plugin parameter string such as
// "include_type_glossary=1,output_name=api.xml". Malformed pairs are skipped.
func ParseParameter(param string) Values {
	values := make(Values)
	for _, pair := range strings.Split(param, ",") {
		p := strings.IndexByte(pair, '=')
		if p <= 0 {
			continue
		}
		k := strings.TrimSpace(pair[:p])
		v := strings.TrimSpace(pair[p+1:])
		if k != "" && v != "" {
			values[k] = v
		}
	}
	return values
}

// EnvValues returns the DOCBOOK_<KEY> environment overrides for every
// recognized key
func EnvValues() Values {
	values := make(Values)
	for _, key := range Keys {
		if value := getEnv(envName(key), ""); value != "" {
			values[key] = value
		}
	}
	return values
}

func envName(key string) string {
	return "DOCBOOK_" + strings.ToUpper(key)
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}
