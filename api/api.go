// Package api embeds the OpenAPI document of the HTTP interface. The types
// and route bindings in internal/generated/servers follow it one to one.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var spec []byte

// GetSwagger parses and validates the embedded document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// RegisterDocs publishes doc as the default swag instance served by
// echo-swagger under /swagger/.
func RegisterDocs(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	swag.Register(swag.Name, &swag.Spec{
		Version:          doc.Info.Version,
		Title:            doc.Info.Title,
		Description:      doc.Info.Description,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(raw),
		LeftDelim:        "{{",
		RightDelim:       "}}",
	})
	return nil
}
