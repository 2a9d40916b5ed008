// Package parser provides generic parsing infrastructure for matcfg.
//
// This package implements type-safe parsers using Go generics. It serves as
// the foundation for the cfgvar package but can also be used for other
// parsing needs.
//
// # Design Philosophy
//
// The parser package emphasizes type safety and composability through
// generics. Rather than providing numerous concrete implementations, it
// offers building blocks that can be composed to create specific parsers.
//
// # Core Pieces
//
//   - Parser[T]: basic parsing interface for any type T
//   - BaseParser[T]: reusable parse+validate plumbing
//   - EnumParser[T]: token-to-value mapping with optional case sensitivity
//   - UnitFloatParser: floating point values with unit suffixes converted
//     to a canonical unit (e.g. "0.5nm" -> 5.0 angstrom)
package parser
