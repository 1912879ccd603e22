package typereg

import (
	"fmt"
)

// InvalidTypeError is returned by ParseCatalogRows when a catalog row names a
// type outside the client's compiled-in set. It means the catalog request and
// the codec registrations have drifted apart, which is a registration bug
// rather than a condition to skip past.
type InvalidTypeError struct {
	Name string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("catalog row names unrecognized type %q", e.Name)
}

// UnknownTypeError is returned by TypeForName and OIDForName when no type is
// registered under the requested name and array-ness. It indicates the caller
// asked to encode as a type it never loaded, not a transient condition.
type UnknownTypeError struct {
	Name    string
	IsArray bool
}

func (e *UnknownTypeError) Error() string {
	if e.IsArray {
		return fmt.Sprintf("no registered array type with name %q", e.Name)
	}
	return fmt.Sprintf("no registered type with name %q", e.Name)
}
