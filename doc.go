// Package typereg maintains the mapping between PostgreSQL type oids and the
// statically compiled codecs a wire-protocol client dispatches on.
/*
The server identifies every data type by a numeric oid. A client compiled with
a fixed set of codecs must discover at runtime which oid each of its codecs is
responsible for, and must look types up in both directions: by oid when
decoding wire data, and by name when encoding application values.

The primary type is Registry, a dual-indexed store of Type descriptors. It is
built in three steps mirroring the catalog round trip: CatalogQuery renders
the pg_type query for a set of type names, ParseCatalogRows converts the raw
result rows into CatalogEntry values, and MatchCodecs merge-joins those
entries with the name-sorted CodecRegistration list, producing one scalar and
one array Type per name present in both. Loader packages the three steps
behind an injected CatalogReader so a connection can establish its baseline
registry at startup and grow it with Refresh as new names turn up mid-session.

A Registry is never modified after construction. Update returns a fresh
Registry that additively merges the new types over the old ones, so readers
holding an earlier snapshot always observe a consistent view and no locking
is needed around lookups.

Lookup by oid uses comma-ok form and cannot fail; decoding must tolerate
server types the client has no codec for. Lookup by name is strict and
returns an *UnknownTypeError, since encoding as an unloaded type is a caller
bug.

typereg does not perform I/O, does not implement codecs, and does not escape
the type names interpolated into the catalog query; names must come from the
closed compiled-in set.
*/
package typereg
