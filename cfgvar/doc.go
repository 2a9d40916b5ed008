// Package cfgvar defines the strongly-typed material configuration
// variables: a fixed, name-sorted registry of descriptors, each pairing a
// variable name with its group, value kind, default, and a pure
// parse+validate function turning raw value strings into canonical typed
// values.
//
// The registry is built once at package initialization and is read-only
// afterwards; every entry point is safe for concurrent use without locking.
// Validation failures are reported as *BadInputError, always naming the
// parameter and the literal offending value.
//
// Cross-parameter consistency (e.g. "mos requires dir1 and dir2") is the
// concern of the configuration layer consuming these values, not of this
// package: a value is validated only against its own declared domain.
package cfgvar
