package typereg

import (
	"sort"
)

// CodecRegistration associates a type name with the statically compiled codec
// that handles it plus whatever configuration the codec carries. The registry
// never inspects the codec or its state.
type CodecRegistration struct {
	Name  string
	Codec interface{}
	State interface{}
}

// SortRegistrations sorts regs ascending by name, the order MatchCodecs
// requires.
func SortRegistrations(regs []CodecRegistration) {
	sort.Slice(regs, func(i, j int) bool { return regs[i].Name < regs[j].Name })
}

// MatchCodecs joins catalog entries with codec registrations over the type
// name, emitting a scalar Type followed by its array Type for every name
// present in both inputs. Catalog entries with no registered codec and
// registrations the server did not report are both skipped: a codec without a
// server oid cannot be dispatched and a server type without a codec cannot be
// interpreted, so only the intersection is materialized.
//
// Both inputs must be sorted ascending by name. MatchCodecs is a single
// linear pass with no backtracking and produces an under- or over-matched
// result on unsorted input.
func MatchCodecs(entries []CatalogEntry, regs []CodecRegistration) []*Type {
	types := make([]*Type, 0, 2*len(regs))

	i, j := 0, 0
	for i < len(entries) && j < len(regs) {
		entry, reg := entries[i], regs[j]
		switch {
		case entry.Name == reg.Name:
			types = append(types,
				&Type{
					OID:        entry.OID,
					Name:       entry.Name,
					Codec:      reg.Codec,
					CodecState: reg.State,
				},
				&Type{
					OID:        entry.ArrayOID,
					Name:       entry.Name,
					IsArray:    true,
					ElementOID: entry.OID,
					Codec:      reg.Codec,
					CodecState: reg.State,
				},
			)
			i++
			j++
		case entry.Name > reg.Name:
			// no server row for this codec
			j++
		default:
			// no codec for this server type
			i++
		}
	}

	return types
}
