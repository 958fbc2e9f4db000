// Package schemas holds the JSON Schema documents for artifacts produced by
// resume-builder. The files are embedded so binaries validate without a
// checkout of the repository.
package schemas

import _ "embed"

// ParseResultFile is the repository-relative path of the ParseResult schema
const ParseResultFile = "schemas/parse_result.schema.json"

// ParseResult is the JSON Schema for a ParseResult document
//
//go:embed parse_result.schema.json
var ParseResult string
