package openapi

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

const jsonMediaType = "application/json"

// DefaultFailureStatus is the status documented for validation failures of a
// request body whose type implements [Ruler].
const DefaultFailureStatus = "400"

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // single request body type
	Requests    []any               // multiple request body types (oneOf)
	Response    any                 // single 200 response type
	Responses   map[string]Response // full response map (overrides Response if both set)

	// FailureStatus is the status code documented with [FailureSchema] when
	// a request type implements Ruler. Defaults to DefaultFailureStatus.
	// An entry for the same status in Responses wins.
	FailureStatus string
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(vs ...any) *openapi3.RequestBodyRef {
	o, err := NewRequest(vs...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates a JSON request body from the given value types. More
// than one value produces a oneOf schema.
func NewRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	content, err := jsonContent(vs)
	if err != nil {
		return nil, err
	}
	body := openapi3.NewRequestBody().WithRequired(true).WithContent(content)
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for status, r := range vs {
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		if len(r.Bodies) > 0 {
			content, err := jsonContent(r.Bodies)
			if err != nil {
				return nil, err
			}
			resp.Content = content
		}
		opts = append(opts, openapi3.WithName(status, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// jsonContent documents vs as one JSON media type, using oneOf when there is
// more than one value.
func jsonContent(vs []any) (openapi3.Content, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for _, v := range vs {
		ref, err := NewSchemaRefForValue(v)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if len(refs) == 1 {
		return openapi3.NewContentWithJSONSchemaRef(refs[0]), nil
	}
	return openapi3.NewContentWithJSONSchema(openapi3.NewOneOfSchema(schemaValues(refs)...)), nil
}

func schemaValues(refs openapi3.SchemaRefs) []*openapi3.Schema {
	out := make([]*openapi3.Schema, len(refs))
	for i, ref := range refs {
		out[i] = ref.Value
	}
	return out
}

// FailureSchema documents the JSON encoding of a list of
// fluentvalidation.Failure values, as returned by Result.Failures.
func FailureSchema() *openapi3.Schema {
	failure := openapi3.NewObjectSchema().
		WithProperty("property", openapi3.NewStringSchema()).
		WithProperty("value", openapi3.NewSchema()).
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("severity", openapi3.NewStringSchema().WithEnum("error", "warning", "info")).
		WithRequired([]string{"severity"})
	failure.Properties["nested"] = openapi3.NewSchemaRef("", openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema()))
	return openapi3.NewArraySchema().WithItems(failure)
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = ep.Summary
	op.Description = ep.Description

	requests := ep.Requests
	if len(requests) == 0 && ep.Request != nil {
		requests = []any{ep.Request}
	}
	if len(requests) > 0 {
		op.RequestBody = NewRequestMust(requests...)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	if validated(requests) {
		status := ep.FailureStatus
		if status == "" {
			status = DefaultFailureStatus
		}
		if op.Responses.Value(status) == nil {
			op.Responses.Set(status, &openapi3.ResponseRef{Value: openapi3.NewResponse().
				WithDescription("Validation failed").
				WithJSONSchema(FailureSchema())})
		}
	}

	AddPath(path, method, doc, op)
}

// validated reports whether any request type implements Ruler.
func validated(requests []any) bool {
	for _, r := range requests {
		t := reflect.TypeOf(r)
		if t == nil {
			continue
		}
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if _, ok := reflect.New(t).Interface().(Ruler); ok {
			return true
		}
	}
	return false
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
