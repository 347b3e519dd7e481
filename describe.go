package fluentvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema documents the validator's named rules as an OpenAPI object schema.
// Each rule named with WithName becomes a property; attached checks that
// implement [Describer] add their constraints and nested validators that
// implement [SchemaProvider] supply the property schema. Unnamed rules are
// not documented, and conditional rules never mark a property required.
func (v *Validator[T]) Schema() (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	for _, r := range v.rules {
		if err := r.describe(schema); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

func (c *ruleConfig[T, P]) describeOn(schema *openapi3.Schema, each bool) error {
	if c.name == "" {
		return nil
	}
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}
	ref := schema.Properties[c.name]
	if ref == nil || ref.Value == nil {
		ref = openapi3.NewSchemaRef("", openapi3.NewSchema())
		schema.Properties[c.name] = ref
	}

	owner, target := schema, ref
	if each {
		if ref.Value.Items == nil {
			ref.Value.Type = &openapi3.Types{openapi3.TypeArray}
			ref.Value.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
		}
		// Element checks describe the item schema, never the owning object.
		owner, target = openapi3.NewObjectSchema(), ref.Value.Items
	}
	if c.condition != nil {
		owner = openapi3.NewObjectSchema()
		appendDescription(ref, "conditional")
	}

	for _, pc := range c.checks {
		switch d := pc.doc.(type) {
		case Describer:
			if err := d.Describe(c.name, owner, target); err != nil {
				return err
			}
		case SchemaProvider:
			s, err := d.Schema()
			if err != nil {
				return err
			}
			target.Value = s
		}
	}
	return nil
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
