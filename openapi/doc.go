// Package openapi builds OpenAPI 3 documents whose schemas combine Go type
// reflection with the constraints of fluentvalidation validators.
//
// Request and response types opt in by implementing [Ruler]. Use [DocBase]
// to create a base document and register endpoints with [Get], [Post],
// [Put], [Patch], or [Delete]:
//
//	func (Order) Rules() fv.SchemaProvider { return orderValidator }
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  Order{},
//	    Response: Order{},
//	})
package openapi
