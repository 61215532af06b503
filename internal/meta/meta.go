package meta

import "reflect"

// ParamMetadata holds the runtime metadata for one combinator in an
// endpoint's parameter chain.
type ParamMetadata struct {
	Name string
	Kind string
	Arg  reflect.Type
}

// EndpointMetadata holds the runtime metadata for a registered endpoint.
// This type is internal so external packages observe endpoints only through
// the public docs interpreter.
type EndpointMetadata struct {
	Method string
	Path   string
	Params []ParamMetadata
	Result reflect.Type
}
