package typereg_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkit/typereg"
)

func baselineTypes() []*typereg.Type {
	return []*typereg.Type{
		{OID: typereg.BoolOID, Name: "bool", Codec: "boolCodec"},
		{OID: typereg.BoolArrayOID, Name: "bool", IsArray: true, ElementOID: typereg.BoolOID, Codec: "boolCodec"},
		{OID: typereg.Int4OID, Name: "int4", Codec: "int4Codec"},
		{OID: typereg.Int4ArrayOID, Name: "int4", IsArray: true, ElementOID: typereg.Int4OID, Codec: "int4Codec"},
		{OID: typereg.TextOID, Name: "text", Codec: "textCodec", CodecState: "utf8"},
		{OID: typereg.TextArrayOID, Name: "text", IsArray: true, ElementOID: typereg.TextOID, Codec: "textCodec", CodecState: "utf8"},
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	in := baselineTypes()
	reg := typereg.NewRegistry(in)

	out := reg.Types()
	require.Len(t, out, len(in))

	inVals := make([]typereg.Type, len(in))
	for i, typ := range in {
		inVals[i] = *typ
	}
	outVals := make([]typereg.Type, len(out))
	for i, typ := range out {
		outVals[i] = *typ
	}
	assert.ElementsMatch(t, inVals, outVals)
	assert.Equal(t, len(in), reg.Len())
}

func TestRegistryTypeForOID(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	typ, ok := reg.TypeForOID(typereg.Int4OID)
	require.True(t, ok)
	assert.Equal(t, "int4", typ.Name)
	assert.False(t, typ.IsArray)
	assert.Equal(t, "int4Codec", typ.Codec)
}

func TestRegistryTypeForOIDSentinel(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	typ, ok := reg.TypeForOID(99999)
	assert.False(t, ok)
	assert.Nil(t, typ)
}

func TestRegistryTypeForName(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	scalar, err := reg.TypeForName("text", false)
	require.NoError(t, err)
	assert.Equal(t, typereg.OID(typereg.TextOID), scalar.OID)

	array, err := reg.TypeForName("text", true)
	require.NoError(t, err)
	assert.Equal(t, typereg.OID(typereg.TextArrayOID), array.OID)

	elem, ok := array.ArrayElementOID()
	require.True(t, ok)
	assert.Equal(t, scalar.OID, elem)
}

func TestRegistryTypeForNameUnknown(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	_, err := reg.TypeForName("nonexistent_type", false)
	require.Error(t, err)

	var unknownErr *typereg.UnknownTypeError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "nonexistent_type", unknownErr.Name)
	assert.False(t, unknownErr.IsArray)

	// registered as scalar only does not satisfy an array lookup
	_, err = reg.TypeForName("bool", true)
	require.NoError(t, err)
	_, err = reg.TypeForName("hstore", true)
	require.True(t, errors.As(err, &unknownErr))
	assert.True(t, unknownErr.IsArray)
}

func TestRegistryOIDForName(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	oid, err := reg.OIDForName("bool", true)
	require.NoError(t, err)
	assert.Equal(t, typereg.OID(typereg.BoolArrayOID), oid)

	_, err = reg.OIDForName("nonexistent_type", false)
	var unknownErr *typereg.UnknownTypeError
	require.True(t, errors.As(err, &unknownErr))
}

func TestRegistryUpdateAdditive(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	updated := reg.Update([]*typereg.Type{
		{OID: typereg.DateOID, Name: "date", Codec: "dateCodec"},
		{OID: typereg.TextOID, Name: "text", Codec: "replacementTextCodec"},
	})

	// existing entries not overridden are retained
	typ, ok := updated.TypeForOID(typereg.BoolOID)
	require.True(t, ok)
	assert.Equal(t, "bool", typ.Name)

	// new entries are added
	typ, ok = updated.TypeForOID(typereg.DateOID)
	require.True(t, ok)
	assert.Equal(t, "dateCodec", typ.Codec)

	// colliding keys take the new value
	typ, ok = updated.TypeForOID(typereg.TextOID)
	require.True(t, ok)
	assert.Equal(t, "replacementTextCodec", typ.Codec)

	oid, err := updated.OIDForName("text", false)
	require.NoError(t, err)
	assert.Equal(t, typereg.OID(typereg.TextOID), oid)

	assert.Equal(t, 7, updated.Len())
}

func TestRegistryUpdateLeavesOldRegistryUnchanged(t *testing.T) {
	reg := typereg.NewRegistry(baselineTypes())

	_ = reg.Update([]*typereg.Type{
		{OID: typereg.TextOID, Name: "text", Codec: "replacementTextCodec"},
		{OID: typereg.DateOID, Name: "date", Codec: "dateCodec"},
	})

	typ, ok := reg.TypeForOID(typereg.TextOID)
	require.True(t, ok)
	assert.Equal(t, "textCodec", typ.Codec)

	_, ok = reg.TypeForOID(typereg.DateOID)
	assert.False(t, ok)
	assert.Equal(t, 6, reg.Len())
}

func TestRegistryCopiesInputTypes(t *testing.T) {
	in := []*typereg.Type{
		{OID: typereg.BoolOID, Name: "bool", Codec: "boolCodec"},
	}
	reg := typereg.NewRegistry(in)

	in[0].Name = "mangled"

	typ, ok := reg.TypeForOID(typereg.BoolOID)
	require.True(t, ok)
	assert.Equal(t, "bool", typ.Name)
}

func TestTypeProjections(t *testing.T) {
	scalar := &typereg.Type{OID: typereg.NumericOID, Name: "numeric", Codec: "numericCodec", CodecState: "precision=10"}
	array := &typereg.Type{OID: typereg.NumericArrayOID, Name: "numeric", IsArray: true, ElementOID: typereg.NumericOID, Codec: "numericCodec"}

	name, codec, state := scalar.CodecBinding()
	assert.Equal(t, "numeric", name)
	assert.Equal(t, "numericCodec", codec)
	assert.Equal(t, "precision=10", state)

	oid, name, isArray := array.Descriptor()
	assert.Equal(t, typereg.OID(typereg.NumericArrayOID), oid)
	assert.Equal(t, "numeric", name)
	assert.True(t, isArray)

	_, ok := scalar.ArrayElementOID()
	assert.False(t, ok)

	elem, ok := array.ArrayElementOID()
	require.True(t, ok)
	assert.Equal(t, typereg.OID(typereg.NumericOID), elem)
}
