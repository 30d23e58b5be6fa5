// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ini reads, edits and writes INI style configuration files.
//
// The package is built around two types:
//
//   - Document: an ordered collection of named sections
//   - Section: a set of key value pairs whose values are stored as raw text
//
// # Parsing
//
// Parse is deliberately permissive since configuration files are
// frequently edited by hand. It never fails; anything it does not
// understand is dropped:
//
//   - comments start at the first ';' or "//" on a line
//   - a section header is a line of the form [NAME]; a header beginning with
//     '[' and an upper case letter also starts a new line by itself
//   - keys must consist of upper case letters, digits and underscores
//   - key value pairs before the first header are ignored
//
// # Typed access
//
// Values are converted on read. Every accessor comes in a defaulting
// flavour, which never fails, and most also have a strict flavour which
// returns ErrMissingKey or ErrUnparsableValue:
//
//	doc := ini.Parse(text)
//	car := doc.Section("CAR_0")
//	mass := car.GetDouble("MASS", 1000)
//	gears, err := car.Int("GEARS")
//
// # Serialization
//
// Serialize writes every section in document order. Comments and blank
// lines from the parsed input are not preserved, but parsing the
// serialized text yields the same sections, keys and values.
package ini
