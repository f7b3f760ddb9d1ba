// Package strengthcheck provides a small net/http handler that classifies a
// password and returns the indicator state a form field needs to display it.
//
// The handler accepts POST requests only, with the password either in a JSON
// body ({"password": "..."}) or as a form value. Responses are never cached
// and the password is never logged. OpenAPI returns a kin-openapi document
// describing the mounted route.
package strengthcheck
