// Package schema provides the read-only schema model rendered by the docbook
// engine, and the loaders that build it from protobuf descriptors.
//
// # Model
//
// A Unit is one .proto file. It owns its top-level messages and enums in
// declaration order; messages own their fields, nested messages and nested
// enums. Field references to message and enum types point at the node that
// declares them, so every reference to the same type carries the same
// FullName.
//
// # Loading
//
// From .proto sources (protocompile):
//
//	loader := schema.NewLoader([]string{"proto"}, log)
//	units, err := loader.Load(ctx, "shop/order.proto", "shop/customer.proto")
//
// From a protoc plugin request:
//
//	units, err := schema.UnitsFromRequest(req)
//
// Nodes are never mutated after loading.
package schema
