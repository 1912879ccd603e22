package typereg

import (
	"context"
	"sort"
)

// CatalogReader executes a catalog query against the server and returns its
// rows in result order. It is implemented by the connection layer that owns
// the wire I/O.
type CatalogReader interface {
	ReadCatalog(ctx context.Context, sql string) ([]CatalogRow, error)
}

// Loader discovers server oids for named types and pairs them with the static
// codec registrations. A connection typically runs one Load at startup with
// KnownTypeNames and feeds the result to NewRegistry, then Refresh whenever
// it encounters names it has not fetched yet.
type Loader struct {
	Reader CatalogReader

	// Codecs must be sorted ascending by name. SortRegistrations can be used
	// to establish the order.
	Codecs []CodecRegistration

	Logger   Logger
	LogLevel LogLevel
}

// Load fetches catalog rows for names and merge-joins them with the loader's
// codec registrations. The returned types are ready for NewRegistry or
// Registry.Update. Names are sorted before building the query so callers may
// pass them in any order.
func (l *Loader) Load(ctx context.Context, names []string) ([]*Type, error) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	sql := CatalogQuery(sorted)
	if l.shouldLog(LogLevelDebug) {
		l.Logger.Log(ctx, LogLevelDebug, "loading catalog types", map[string]interface{}{"sql": sql})
	}

	rows, err := l.Reader.ReadCatalog(ctx, sql)
	if err != nil {
		if l.shouldLog(LogLevelError) {
			l.Logger.Log(ctx, LogLevelError, "catalog query failed", map[string]interface{}{"err": err})
		}
		return nil, err
	}

	entries, err := ParseCatalogRows(rows)
	if err != nil {
		if l.shouldLog(LogLevelError) {
			l.Logger.Log(ctx, LogLevelError, "catalog rows failed to parse", map[string]interface{}{"err": err})
		}
		return nil, err
	}

	types := MatchCodecs(entries, l.Codecs)
	if l.shouldLog(LogLevelInfo) {
		l.Logger.Log(ctx, LogLevelInfo, "loaded catalog types", map[string]interface{}{"requested": len(sorted), "matched": len(types)})
	}
	return types, nil
}

// Refresh loads names and returns reg additively updated with the result. reg
// is not modified; the caller swaps the returned Registry in for it.
func (l *Loader) Refresh(ctx context.Context, reg *Registry, names []string) (*Registry, error) {
	types, err := l.Load(ctx, names)
	if err != nil {
		return nil, err
	}
	return reg.Update(types), nil
}

func (l *Loader) shouldLog(lvl LogLevel) bool {
	return l.Logger != nil && l.logLevel() >= lvl
}

func (l *Loader) logLevel() LogLevel {
	if l.LogLevel == 0 {
		return LogLevelDebug
	}
	return l.LogLevel
}
