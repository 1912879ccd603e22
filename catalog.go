package typereg

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pgkit/typereg/internal/assoc"
)

// CatalogRow is one raw row of the pg_type query, all fields still in their
// textual wire representation.
type CatalogRow struct {
	TypeName string
	OID      string
	ArrayOID string
}

// CatalogEntry is a parsed catalog row: a type name with the server's oid for
// it and for its array variant.
type CatalogEntry struct {
	Name     string
	OID      OID
	ArrayOID OID
}

// CatalogQuery returns the pg_type query for the given type names. Rows come
// back ordered by typname ascending; MatchCodecs depends on that ordering, so
// the order by clause is a correctness requirement and not cosmetic.
//
// Names are interpolated into the query without escaping. They must come from
// the closed set of compiled-in codec registrations, never from user input.
func CatalogQuery(names []string) string {
	sb := &strings.Builder{}
	sb.WriteString("select typname, oid::int4, typarray::int4 from pg_type where typname in (")
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteString(name)
		sb.WriteByte('\'')
	}
	sb.WriteString(") order by typname asc")
	return sb.String()
}

// ParseCatalogRows converts raw catalog rows into CatalogEntry values,
// preserving row order. It returns an *InvalidTypeError if a row names a type
// outside the compiled-in set.
func ParseCatalogRows(rows []CatalogRow) ([]CatalogEntry, error) {
	entries := make([]CatalogEntry, 0, len(rows))
	for _, row := range rows {
		if _, ok := assoc.Get(knownTypeNames, row.TypeName); !ok {
			return nil, &InvalidTypeError{Name: row.TypeName}
		}

		oid, err := parseOID(row.OID)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing oid for type %q", row.TypeName)
		}

		arrayOID, err := parseOID(row.ArrayOID)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing array oid for type %q", row.TypeName)
		}

		entries = append(entries, CatalogEntry{Name: row.TypeName, OID: oid, ArrayOID: arrayOID})
	}
	return entries, nil
}

func parseOID(s string) (OID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return OID(n), nil
}
