package strengthcheck

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-passfield/pkg/strength"
)

// OperationID identifies the strength route in the OpenAPI document.
const OperationID = "classifyPasswordStrength"

// OpenAPI describes the handler mounted under basePath with default options
// plus overrides.
func OpenAPI(basePath string, fns ...OptionFn) *openapi3.T {
	return OpenAPIWithOptions(basePath, NewOptions(fns...))
}

// OpenAPIWithOptions describes the handler mounted under basePath.
func OpenAPIWithOptions(basePath string, opts Options) *openapi3.T {
	opts = NewOptions(func(o *Options) { *o = opts })

	passwordSchema := openapi3.NewStringSchema()
	passwordSchema.Format = "password"

	body := openapi3.NewObjectSchema().WithProperty(opts.Param, passwordSchema)
	body.Required = []string{opts.Param}

	content := openapi3.Content{
		"application/json":                  openapi3.NewMediaType().WithSchema(body),
		"application/x-www-form-urlencoded": openapi3.NewMediaType().WithSchema(body),
	}

	op := openapi3.NewOperation()
	op.OperationID = OperationID
	op.Summary = "Classify password strength"
	op.Description = "Returns the strength variant, label and indicator segments for a password."
	op.AddParameter(openapi3.NewHeaderParameter(RequestIDHeader).WithSchema(openapi3.NewStringSchema()))
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithContent(content),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Classification result").
				WithJSONSchema(openapi3.NewObjectSchema().WithProperty("data", resultSchema())),
		}),
		openapi3.WithStatus(http.StatusBadRequest, errorResponse("Missing or malformed password")),
		openapi3.WithStatus(http.StatusForbidden, errorResponse("Rejected by the request guard")),
		openapi3.WithStatus(http.StatusMethodNotAllowed, errorResponse("Only POST is accepted")),
		openapi3.WithStatus(http.StatusRequestEntityTooLarge, errorResponse("Request body too large")),
	)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "Password strength",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(mountPath(basePath, opts.RoutePath), &openapi3.PathItem{Post: op}),
		),
	}
}

func resultSchema() *openapi3.Schema {
	variants := make([]any, 0, 3)
	for _, s := range strength.Strengths() {
		variants = append(variants, s.String())
	}

	segment := openapi3.NewObjectSchema().
		WithProperty("filled", openapi3.NewBoolSchema()).
		WithProperty("color", openapi3.NewStringSchema())

	result := openapi3.NewObjectSchema().
		WithProperty("strength", openapi3.NewStringSchema().WithEnum(variants...)).
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("level", openapi3.NewIntegerSchema()).
		WithProperty("length", openapi3.NewIntegerSchema()).
		WithProperty("classes", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("segments", openapi3.NewArraySchema().WithItems(segment))
	result.Required = []string{"strength", "label", "level", "segments"}
	return result
}

func errorResponse(description string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(description)}
}
