// Package oracleconfig loads a Bracketed oracle from a YAML document. It is
// the one place in this module where a file format is defined, and it sits
// deliberately outside the sweep/locate core: the core never parses YAML,
// it only ever receives an already-constructed oracle.Oracle.
package oracleconfig
