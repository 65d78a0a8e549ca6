// Package api holds the OpenAPI document served by the HTTP adapter and used to
// generate internal/generated/servers.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
