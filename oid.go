package typereg

import (
	"sort"

	"github.com/pgkit/typereg/internal/assoc"
)

// OID (Object Identifier Type) is, according to
// https://www.postgresql.org/docs/current/static/datatype-oid.html, used
// internally by PostgreSQL as a primary key for various system tables. It is
// currently implemented as an unsigned four-byte integer. Its definition can be
// found in src/include/postgres_ext.h in the PostgreSQL sources.
type OID uint32

// PostgreSQL oids for common types
const (
	BoolOID             = 16
	ByteaOID            = 17
	CharOID             = 18
	NameOID             = 19
	Int8OID             = 20
	Int2OID             = 21
	Int4OID             = 23
	TextOID             = 25
	OIDOID              = 26
	TIDOID              = 27
	XIDOID              = 28
	CIDOID              = 29
	JSONOID             = 114
	PointOID            = 600
	LineSegmentOID      = 601
	PathOID             = 602
	BoxOID              = 603
	PolygonOID          = 604
	LineOID             = 628
	CIDROID             = 650
	CIDRArrayOID        = 651
	Float4OID           = 700
	Float8OID           = 701
	UnknownOID          = 705
	CircleOID           = 718
	MacaddrOID          = 829
	InetOID             = 869
	BoolArrayOID        = 1000
	ByteaArrayOID       = 1001
	Int2ArrayOID        = 1005
	Int4ArrayOID        = 1007
	TextArrayOID        = 1009
	VarcharArrayOID     = 1015
	Int8ArrayOID        = 1016
	Float4ArrayOID      = 1021
	Float8ArrayOID      = 1022
	ACLItemOID          = 1033
	ACLItemArrayOID     = 1034
	InetArrayOID        = 1041
	VarcharOID          = 1043
	DateOID             = 1082
	TimestampOID        = 1114
	TimestampArrayOID   = 1115
	DateArrayOID        = 1182
	TimestamptzOID      = 1184
	TimestamptzArrayOID = 1185
	IntervalOID         = 1186
	NumericArrayOID     = 1231
	BitOID              = 1560
	VarbitOID           = 1562
	NumericOID          = 1700
	RecordOID           = 2249
	UUIDOID             = 2950
	UUIDArrayOID        = 2951
	JSONBOID            = 3802
	Int4RangeOID        = 3904
	NumrangeOID         = 3906
	TsrangeOID          = 3908
	TstzrangeOID        = 3910
	DateRangeOID        = 3912
	Int8RangeOID        = 3926
)

// knownTypeNames is the closed set of catalog type names the client has
// compiled-in knowledge of. ParseCatalogRows rejects rows naming anything
// outside this set. Array variants are not listed: the catalog is queried by
// scalar name and reports the array oid in the same row.
var knownTypeNames = map[string]struct{}{
	"aclitem":     {},
	"bit":         {},
	"bool":        {},
	"box":         {},
	"bytea":       {},
	"char":        {},
	"cid":         {},
	"cidr":        {},
	"circle":      {},
	"date":        {},
	"daterange":   {},
	"float4":      {},
	"float8":      {},
	"hstore":      {},
	"inet":        {},
	"int2":        {},
	"int4":        {},
	"int4range":   {},
	"int8":        {},
	"int8range":   {},
	"interval":    {},
	"json":        {},
	"jsonb":       {},
	"line":        {},
	"lseg":        {},
	"macaddr":     {},
	"name":        {},
	"numeric":     {},
	"numrange":    {},
	"oid":         {},
	"path":        {},
	"point":       {},
	"polygon":     {},
	"record":      {},
	"text":        {},
	"tid":         {},
	"timestamp":   {},
	"timestamptz": {},
	"tsrange":     {},
	"tstzrange":   {},
	"unknown":     {},
	"uuid":        {},
	"varbit":      {},
	"varchar":     {},
	"xid":         {},
}

// KnownTypeNames returns the closed set of type names the client can bind
// codecs to, sorted ascending. A driver typically passes the whole set to
// Loader.Load at connection start to establish its baseline Registry.
func KnownTypeNames() []string {
	names := make([]string, 0, len(knownTypeNames))
	for _, p := range assoc.Pairs(knownTypeNames) {
		names = append(names, p.Key)
	}
	sort.Strings(names)
	return names
}
