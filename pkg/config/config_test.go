package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnv tests the getEnv helper function
func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "returns env value when set",
			key:          "DOCBOOK_TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
		{
			name:         "returns default when env not set",
			key:          "DOCBOOK_TEST_VAR_NOT_SET",
			defaultValue: "default",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			}
			assert.Equal(t, tt.want, getEnv(tt.key, tt.defaultValue))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("DOCBOOK_TEST_BOOL_TRUE", "TRUE")
	t.Setenv("DOCBOOK_TEST_BOOL_ONE", "1")
	t.Setenv("DOCBOOK_TEST_BOOL_NO", "no")

	assert.True(t, getEnvBool("DOCBOOK_TEST_BOOL_TRUE", false))
	assert.True(t, getEnvBool("DOCBOOK_TEST_BOOL_ONE", false))
	assert.False(t, getEnvBool("DOCBOOK_TEST_BOOL_NO", true))
	assert.True(t, getEnvBool("DOCBOOK_TEST_BOOL_UNSET", true))
}

func TestDefault(t *testing.T) {
	opts := Default()

	assert.Equal(t, "4", opts.FieldNameColumnWidth)
	assert.Equal(t, "3", opts.FieldTypeColumnWidth)
	assert.Equal(t, "3", opts.FieldRulesColumnWidth)
	assert.Equal(t, "8", opts.FieldDescColumnWidth)
	assert.Equal(t, "8eb4e3", opts.ColumnHeaderColor)
	assert.Equal(t, DefaultRowColorPrimary, opts.RowColorPrimary)
	assert.Equal(t, DefaultRowColorAlternate, opts.RowColorAlternate)
	assert.False(t, opts.IncludeTypeGlossary)
	assert.True(t, opts.OmitEmptyMessages)
	assert.True(t, opts.BytesDefaultAsHex)
	assert.Equal(t, "docbook_out.xml", opts.OutputName)
	assert.Equal(t, "insertion_point", opts.InsertionPoint)
}

func TestFromValues_Flags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{name: "absent", want: false},
		{name: "zero", value: "0", set: true, want: false},
		{name: "one", value: "1", set: true, want: true},
		{name: "any other value", value: "yes", set: true, want: true},
		{name: "false spelled out still enables", value: "false", set: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := Values{}
			if tt.set {
				values[KeyIncludeTypeGlossary] = tt.value
			}
			assert.Equal(t, tt.want, FromValues(values).IncludeTypeGlossary)
		})
	}
}

func TestFromValues_IgnoresUnknownKeys(t *testing.T) {
	opts := FromValues(Values{
		"unknown_key":        "x",
		KeyColumnHeaderColor: "ff0000",
	})

	assert.Equal(t, "ff0000", opts.ColumnHeaderColor)
	assert.Equal(t, DefaultFieldNameColumnWidth, opts.FieldNameColumnWidth)
}

func TestParseProperties(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"   # indented comment",
		"field_name_column_width = 6",
		"column_header_color=aabbcc",
		"no_equals_sign",
		"=value_without_key",
		"empty_value=",
		"  =  ",
		"row_color_primary = eeeeee  ",
		"",
	}, "\n")

	values, err := ParseProperties(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Values{
		"field_name_column_width": "6",
		"column_header_color":     "aabbcc",
		"row_color_primary":       "eeeeee",
	}, values)
}

func TestParseYAML(t *testing.T) {
	values, err := ParseYAML([]byte(`
field_desc_column_width: 10
column_header_color: "123456"
include_type_glossary: true
omit_empty_messages: false
nested:
  ignored: 1
`))
	require.NoError(t, err)

	assert.Equal(t, "10", values[KeyFieldDescColumnWidth])
	assert.Equal(t, "123456", values[KeyColumnHeaderColor])
	assert.Equal(t, "1", values[KeyIncludeTypeGlossary])
	assert.Equal(t, "0", values[KeyOmitEmptyMessages])
	assert.NotContains(t, values, "nested")

	_, err = ParseYAML([]byte("key: [unterminated"))
	assert.Error(t, err)
}

func TestParseParameter(t *testing.T) {
	values := ParseParameter("include_type_glossary=1, output_name=api.xml,bogus,=x,y=")

	assert.Equal(t, Values{
		"include_type_glossary": "1",
		"output_name":           "api.xml",
	}, values)
	assert.Empty(t, ParseParameter(""))
}

func TestValues_Merge(t *testing.T) {
	base := Values{"a": "1", "b": "2"}
	merged := base.Merge(Values{"b": "3", "c": "4"})

	assert.Equal(t, Values{"a": "1", "b": "3", "c": "4"}, merged)
	assert.Equal(t, "2", base["b"], "merge must not modify the receiver")
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		opts := Load(filepath.Join(t.TempDir(), "missing.properties"), nil)
		assert.Equal(t, Default(), opts)
	})

	t.Run("properties file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		require.NoError(t, os.WriteFile(path, []byte("field_type_column_width=5\ninclude_type_glossary=1\n"), 0644))

		opts := Load(path, nil)
		assert.Equal(t, "5", opts.FieldTypeColumnWidth)
		assert.True(t, opts.IncludeTypeGlossary)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docbook.yaml")
		require.NoError(t, os.WriteFile(path, []byte("row_color_alternate: cccccc\n"), 0644))

		opts := Load(path, nil)
		assert.Equal(t, "cccccc", opts.RowColorAlternate)
	})

	t.Run("malformed yaml falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docbook.yml")
		require.NoError(t, os.WriteFile(path, []byte("key: [unterminated"), 0644))

		assert.Equal(t, Default(), Load(path, nil))
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		require.NoError(t, os.WriteFile(path, []byte("column_header_color=111111\n"), 0644))
		t.Setenv("DOCBOOK_COLUMN_HEADER_COLOR", "222222")

		assert.Equal(t, "222222", Load(path, nil).ColumnHeaderColor)
	})
}

func TestLoadRuntime(t *testing.T) {
	t.Setenv("DOCBOOK_LOG_LEVEL", "debug")
	t.Setenv("DOCBOOK_OTEL_ENDPOINT", "collector:4317")

	rt := LoadRuntime()
	assert.Equal(t, "debug", rt.LogLevel)
	assert.Equal(t, "text", rt.LogFormat)
	assert.Equal(t, "collector:4317", rt.OTelEndpoint)
	assert.Equal(t, "spoke-docbook", rt.OTelServiceName)
	assert.True(t, rt.OTelInsecure)
	assert.Equal(t, "us-east-1", rt.S3Region)
	assert.False(t, rt.S3UsePathStyle)
}

func TestLoadWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("output_name=file.xml\ncolumn_header_color=111111\n"), 0644))
	t.Setenv("DOCBOOK_COLUMN_HEADER_COLOR", "222222")

	opts := LoadWithOverrides(path, ParseParameter("column_header_color=333333"), nil)
	assert.Equal(t, "333333", opts.ColumnHeaderColor)
	assert.Equal(t, "file.xml", opts.OutputName)
}
