// Package codegen resolves declared bounds to concrete widths and emits the
// corresponding Go type aliases.
//
// It backs the smallnumgen tool: a YAML manifest declares named bounds, each
// bound is resolved through the width ladder, and the result is a generated
// file of aliases onto the smallnum value types. Any bound no rung can
// represent fails generation, so an unrepresentable bound fails the build
// instead of degrading at runtime.
package codegen
