package docbook

import (
	"strings"

	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

// topLevelEnumDepth is the section depth of enums declared on a unit
const topLevelEnumDepth = 2

// WalkMessage writes msg, its enums and its nested messages in declaration
// order. prefix is the display name of the enclosing message ("" at top
// level) and depth the nesting level, 0 for top-level messages.
func (r *Renderer) WalkMessage(b *strings.Builder, msg *schema.Message, prefix string, depth int) {
	title := schema.QualifiedName(prefix, msg.Name)

	r.WriteMessageSection(b, msg, title, depth+2)

	for _, enum := range msg.Enums {
		r.WriteEnumSection(b, enum, schema.QualifiedName(title, enum.Name), depth+3)
	}

	for _, nested := range msg.Messages {
		r.WalkMessage(b, nested, title, depth+1)
	}
}

// WalkTopLevelEnums writes the enums declared directly on unit
func (r *Renderer) WalkTopLevelEnums(b *strings.Builder, unit *schema.Unit) {
	for _, enum := range unit.Enums {
		r.WriteEnumSection(b, enum, enum.Name, topLevelEnumDepth)
	}
}
