package openapi

import (
	"reflect"
	"slices"
	"strings"

	fv "github.com/Gobd/fluentvalidation"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Ruler is implemented by request and response types that are validated by
// a fluentvalidation validator. The validator's named rules are matched to
// the type's JSON property names.
type Ruler interface {
	Rules() fv.SchemaProvider
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value.
// Types implementing [Ruler], at any depth, get the constraints of their
// validator. Fields tagged docs:"skip" are left out.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}

// schemaDoc is set as a generator customizer, which also keeps the generator
// from sharing one schema between fields of the same Go type.
func schemaDoc(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	if t.Kind() == reflect.Struct {
		removeSkippedFields(t, schema)
	}

	r, ok := reflect.New(t).Interface().(Ruler)
	if !ok {
		return nil
	}
	rules, err := r.Rules().Schema()
	if err != nil {
		return err
	}
	merge(schema, rules)
	return nil
}

// removeSkippedFields deletes schema properties for fields tagged with docs:"skip".
// Recurses into embedded (anonymous) struct fields.
func removeSkippedFields(t reflect.Type, schema *openapi3.Schema) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			ft := sf.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				removeSkippedFields(ft, schema)
			}
			continue
		}
		if strings.Split(sf.Tag.Get("docs"), ",")[0] != "skip" {
			continue
		}
		delete(schema.Properties, strings.Split(sf.Tag.Get("json"), ",")[0])
	}
}

// merge copies the constraints documented in src onto the generated schema
// dst. Properties of src without a matching property in dst are ignored.
func merge(dst, src *openapi3.Schema) {
	for _, name := range src.Required {
		if _, ok := dst.Properties[name]; ok && !slices.Contains(dst.Required, name) {
			dst.Required = append(dst.Required, name)
		}
	}
	for name, ref := range src.Properties {
		target := dst.Properties[name]
		if ref == nil || ref.Value == nil || target == nil || target.Value == nil {
			continue
		}
		mergeConstraints(target.Value, ref.Value)
	}
}

func mergeConstraints(dst, src *openapi3.Schema) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Pattern != "" {
		dst.Pattern = src.Pattern
	}
	if src.MinLength > 0 {
		dst.MinLength = src.MinLength
	}
	if src.MaxLength != nil {
		dst.MaxLength = src.MaxLength
	}
	if src.Min != nil {
		dst.Min, dst.ExclusiveMin = src.Min, src.ExclusiveMin
	}
	if src.Max != nil {
		dst.Max, dst.ExclusiveMax = src.Max, src.ExclusiveMax
	}
	if src.MinItems > 0 {
		dst.MinItems = src.MinItems
	}
	if src.MaxItems != nil {
		dst.MaxItems = src.MaxItems
	}
	if src.UniqueItems {
		dst.UniqueItems = true
	}
	if len(src.Enum) > 0 {
		dst.Enum = src.Enum
	}
	if src.Not != nil {
		dst.Not = src.Not
	}
	if src.Nullable {
		dst.Nullable = true
	}
	if src.Description != "" && !strings.Contains(dst.Description, src.Description) {
		if dst.Description != "" {
			dst.Description += " "
		}
		dst.Description += src.Description
	}
	if src.Items != nil && src.Items.Value != nil && dst.Items != nil && dst.Items.Value != nil {
		mergeConstraints(dst.Items.Value, src.Items.Value)
	}
	if len(src.Properties) > 0 {
		merge(dst, src)
	}
}
