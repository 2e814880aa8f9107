package docbook

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

// GlossaryAnchor is the xml:id of the scalar value type glossary table
const GlossaryAnchor = "scalar_value_types"

// ResolveOccurrence returns the rule column text for a field label
func ResolveOccurrence(label schema.Label) string {
	switch label {
	case schema.LabelOptional:
		return "optional"
	case schema.LabelRepeated:
		return "repeated"
	case schema.LabelRequired:
		return "required"
	default:
		return ""
	}
}

// Anchor derives the xml:id of a type from its full name
func Anchor(fullName string) string {
	return strings.ReplaceAll(fullName, ".", "_")
}

// XLink renders an underlined cross-reference to the type named fullName
func XLink(fullName, label string) string {
	return `<emphasis role="underline" xlink:href="#` + Anchor(fullName) + `">` + label + `</emphasis>`
}

// ResolveTypeDisplay returns the type column text for a field. Message and
// enum fields link to the referenced table; scalar fields show the type name,
// linked to the glossary when glossary is set. A field whose message or enum
// target is missing shows the bare kind name.
func ResolveTypeDisplay(field *schema.Field, glossary bool) string {
	switch field.Kind {
	case schema.KindMessage, schema.KindGroup:
		if field.Message != nil {
			return XLink(field.Message.FullName, field.Message.Name)
		}
	case schema.KindEnum:
		if field.Enum != nil {
			return XLink(field.Enum.FullName, field.Enum.Name)
		}
	default:
		if glossary && field.Kind.IsScalar() {
			return `<emphasis role="underline" xlink:href="#` + GlossaryAnchor + `">` + field.Kind.String() + `</emphasis>`
		}
	}
	return field.Kind.String()
}

// isDangling reports whether a message or enum field has no resolved target
func isDangling(field *schema.Field) bool {
	switch field.Kind {
	case schema.KindMessage, schema.KindGroup:
		return field.Message == nil
	case schema.KindEnum:
		return field.Enum == nil
	}
	return false
}

// FormatDefault renders the declared default of a field as
// "\n[default = V ]", or "" when the field has no default or the value has no
// literal form. bytesAsHex selects whether bytes defaults are shown.
func FormatDefault(field *schema.Field, bytesAsHex bool) string {
	if !field.HasDefault() {
		return ""
	}

	value, ok := defaultLiteral(field.Default, bytesAsHex)
	if !ok {
		return ""
	}
	return "\n[default = " + value + " ]"
}

func defaultLiteral(v any, bytesAsHex bool) (string, bool) {
	switch d := v.(type) {
	case bool:
		return strconv.FormatBool(d), true
	case int32:
		return strconv.FormatInt(int64(d), 10), true
	case int64:
		return strconv.FormatInt(d, 10), true
	case uint32:
		return strconv.FormatUint(uint64(d), 10), true
	case uint64:
		return strconv.FormatUint(d, 10), true
	case float32:
		return formatFloat(float64(d), 32), true
	case float64:
		return formatFloat(d, 64), true
	case *schema.EnumValue:
		if d == nil {
			return "", false
		}
		return d.Name, true
	case []byte:
		if !bytesAsHex {
			return "", false
		}
		return hexBytes(d), true
	case string:
		return Escape(d), true
	default:
		return "", false
	}
}

func formatFloat(v float64, bits int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, c := range data {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, " ")
}
