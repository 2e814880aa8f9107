// Package docbook renders schema units into a single cross-referenced
// DocBook 5 article.
//
// # Overview
//
// Each render pass takes one schema.Unit and produces a <sect1> for it. Every
// message becomes a four column informaltable (Element, Type, Rule,
// Description) inside a <sectN>, every enum a three column table (Element,
// Value, Description). Field types that name a message or enum link to the
// target table through an XLink whose anchor is the full name of the target
// with dots replaced by underscores.
//
// # Nesting
//
// Top-level messages open at <sect2>. Enums declared inside a message sit one
// level below their message, nested messages one level below their parent.
// Enums declared at unit level are rendered at <sect2> after all messages.
//
// # Sessions
//
// Passes are merged into one output artifact through a sink.Sink. The first
// pass of a Session writes the template document (article wrapper, insertion
// marker and the optional scalar type glossary); every pass then splices its
// text in front of the marker.
//
//	session := docbook.NewSession(sink.NewFileSink("docbook_out.xml", "insertion_point"))
//	renderer := docbook.NewRenderer(docbook.RendererConfig{Options: opts})
//	if err := renderer.GenerateAll(ctx, session, units); err != nil {
//		return err
//	}
package docbook
