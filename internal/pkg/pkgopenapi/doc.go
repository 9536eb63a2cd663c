// Package pkgopenapi generates an OpenAPI 3.1 document from the router's
// route table using huma's document and schema registry types.
//
// Parameter schemas come from the declared pkgvalidate constraints. Body and
// response schemas are reflected by huma and completed from the validate,
// title and example tags, so the document always matches what the dispatcher
// enforces.
package pkgopenapi
