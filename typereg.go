package typereg

import (
	"github.com/pgkit/typereg/internal/assoc"
)

// Type describes one (type, array-ness) pairing known to a connection: its
// oid on the wire, its catalog name, and the codec that handles it. The codec
// reference and its state are opaque to the registry; it only stores and
// returns them. A scalar type and its array variant share a Name and are
// distinguished by IsArray.
type Type struct {
	OID     OID
	Name    string
	IsArray bool

	// ElementOID is the oid of the scalar counterpart. Only meaningful when
	// IsArray is true; use ArrayElementOID to read it.
	ElementOID OID

	Codec      interface{}
	CodecState interface{}
}

// ArrayElementOID returns the oid of the scalar counterpart of an array type.
// The second return value is false for scalar types.
func (t *Type) ArrayElementOID() (OID, bool) {
	if !t.IsArray {
		return 0, false
	}
	return t.ElementOID, true
}

// CodecBinding projects the fields the encode/decode dispatch path needs.
func (t *Type) CodecBinding() (name string, codec, state interface{}) {
	return t.Name, t.Codec, t.CodecState
}

// Descriptor projects the fields the protocol layer tracks per column.
func (t *Type) Descriptor() (oid OID, name string, isArray bool) {
	return t.OID, t.Name, t.IsArray
}

type nameArity struct {
	name    string
	isArray bool
}

// Registry is the dual-indexed type store a connection consults when decoding
// wire data (by oid) and encoding application values (by name and array-ness).
//
// A Registry is a value: NewRegistry and Update always return a fresh Registry
// and never modify an existing one. Any number of goroutines may read a given
// Registry concurrently without locking; the connection layer owning "the
// current registry" swaps in the result of Update, and readers holding the
// prior snapshot keep observing a consistent view.
type Registry struct {
	oidToType      map[OID]*Type
	nameArityToOID map[nameArity]OID
}

// NewRegistry builds a Registry from types, populating both indices. The
// registry stores its own copies, so later changes to the passed values do
// not leak in. Duplicate oids or (name, array-ness) pairs within types are
// not defended against; later entries win.
func NewRegistry(types []*Type) *Registry {
	oidPairs := make([]assoc.Pair[OID, *Type], 0, len(types))
	namePairs := make([]assoc.Pair[nameArity, OID], 0, len(types))
	for _, typ := range types {
		t := *typ
		oidPairs = append(oidPairs, assoc.Pair[OID, *Type]{Key: t.OID, Value: &t})
		namePairs = append(namePairs, assoc.Pair[nameArity, OID]{Key: nameArity{name: t.Name, isArray: t.IsArray}, Value: t.OID})
	}

	return &Registry{
		oidToType:      assoc.FromPairs(oidPairs),
		nameArityToOID: assoc.FromPairs(namePairs),
	}
}

// Update returns a new Registry containing every type in r plus every type in
// types, with types winning when an oid or (name, array-ness) key collides.
// Nothing is ever removed. r is left unchanged; the caller swaps the returned
// Registry in for the old one.
func (r *Registry) Update(types []*Type) *Registry {
	fresh := NewRegistry(types)
	return &Registry{
		oidToType:      assoc.Union(r.oidToType, fresh.oidToType),
		nameArityToOID: assoc.Union(r.nameArityToOID, fresh.nameArityToOID),
	}
}

// TypeForOID returns the registered type for oid. The second return value is
// false when oid is unknown. There is no error path: a decoder hitting a
// server type it cannot interpret must be able to carry on with the rest of
// the row.
func (r *Registry) TypeForOID(oid OID) (*Type, bool) {
	t, ok := assoc.Get(r.oidToType, oid)
	return t, ok
}

// TypeForName resolves (name, isArray) through the name index and then the
// oid index. It returns an *UnknownTypeError if the pair is not registered:
// encoding as a named type the caller never loaded is a precondition
// violation, not something to paper over.
func (r *Registry) TypeForName(name string, isArray bool) (*Type, error) {
	oid, ok := assoc.Get(r.nameArityToOID, nameArity{name: name, isArray: isArray})
	if !ok {
		return nil, &UnknownTypeError{Name: name, IsArray: isArray}
	}

	t, ok := assoc.Get(r.oidToType, oid)
	if !ok {
		return nil, &UnknownTypeError{Name: name, IsArray: isArray}
	}
	return t, nil
}

// OIDForName is TypeForName reduced to the oid.
func (r *Registry) OIDForName(name string, isArray bool) (OID, error) {
	t, err := r.TypeForName(name, isArray)
	if err != nil {
		return 0, err
	}
	return t.OID, nil
}

// Types enumerates every registered type as fresh copies. Order is
// unspecified.
func (r *Registry) Types() []*Type {
	types := make([]*Type, 0, len(r.oidToType))
	for _, p := range assoc.Pairs(r.oidToType) {
		t := *p.Value
		types = append(types, &t)
	}
	return types
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.oidToType)
}
