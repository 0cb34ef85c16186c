package readstore

import (
	"context"
	"fmt"
	"strings"

	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the slice of pgxpool.Pool the read side depends on.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// condBuilder accumulates WHERE conditions with numbered placeholders. Every
// user-supplied value goes through bind; only allow-listed column names and
// direction keywords are ever interpolated into the query text.
type condBuilder struct {
	clauses []string
	args    []any
}

func (b *condBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *condBuilder) raw(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *condBuilder) equal(column string, v any) {
	b.clauses = append(b.clauses, fmt.Sprintf("%s = %s", column, b.bind(v)))
}

// search adds a case-insensitive substring match OR-ed across columns and
// AND-ed with the other conditions. Empty terms add nothing.
func (b *condBuilder) search(columns []string, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	placeholder := b.bind("%" + strings.ToLower(term) + "%")
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("LOWER(%s) LIKE %s", col, placeholder)
	}
	b.clauses = append(b.clauses, "("+strings.Join(parts, " OR ")+")")
}

func (b *condBuilder) where() string {
	s := " WHERE 1=1"
	for _, c := range b.clauses {
		s += " AND " + c
	}
	return s
}

// sortSpec is the closed logical-name to physical-column mapping per entity.
// Anything outside the map falls back to the default column, anything other
// than asc/desc to the default direction. The id tie-break keeps pagination
// stable when rows share the sort key.
type sortSpec struct {
	columns       map[string]string
	defaultColumn string
	defaultDesc   bool
	tieBreak      string
}

func (s sortSpec) orderBy(column, direction string) string {
	col, ok := s.columns[column]
	if !ok {
		col = s.defaultColumn
	}

	var dir string
	switch strings.ToLower(direction) {
	case "asc":
		dir = "ASC"
	case "desc":
		dir = "DESC"
	default:
		dir = "ASC"
		if s.defaultDesc {
			dir = "DESC"
		}
	}

	return fmt.Sprintf(" ORDER BY %s %s, %s %s", col, dir, s.tieBreak, dir)
}

func limitOffset(p queries.ListParams) string {
	size := p.PageSize
	if size <= 0 {
		size = queries.DefaultPageSize
	}
	offset := p.Offset()
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", size, offset)
}
