//go:build unit

package readstore

import (
	"testing"

	"support-console/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondBuilder(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		b := &condBuilder{}
		assert.Equal(t, " WHERE 1=1", b.where())
		assert.Empty(t, b.args)
	})

	t.Run("equal binds the value", func(t *testing.T) {
		b := &condBuilder{}
		b.equal("status", "open")
		assert.Equal(t, " WHERE 1=1 AND status = $1", b.where())
		assert.Equal(t, []any{"open"}, b.args)
	})

	t.Run("search ORs columns around a single bound term", func(t *testing.T) {
		b := &condBuilder{}
		b.search([]string{"customer_id", "subject"}, "Oak CHAIR")
		assert.Equal(t,
			" WHERE 1=1 AND (LOWER(customer_id) LIKE $1 OR LOWER(subject) LIKE $1)",
			b.where())
		assert.Equal(t, []any{"%oak chair%"}, b.args)
	})

	t.Run("blank search adds nothing", func(t *testing.T) {
		b := &condBuilder{}
		b.search([]string{"subject"}, "   ")
		assert.Equal(t, " WHERE 1=1", b.where())
		assert.Empty(t, b.args)
	})

	t.Run("conditions compose with sequential placeholders", func(t *testing.T) {
		b := &condBuilder{}
		b.equal("status", "open")
		b.search([]string{"subject"}, "refund")
		assert.Equal(t,
			" WHERE 1=1 AND status = $1 AND (LOWER(subject) LIKE $2)",
			b.where())
		assert.Equal(t, []any{"open", "%refund%"}, b.args)
	})
}

func TestSortSpecOrderBy(t *testing.T) {
	spec := sortSpec{
		columns:       map[string]string{"created_at": "created_at", "status": "status"},
		defaultColumn: "created_at",
		defaultDesc:   true,
		tieBreak:      "ticket_id",
	}

	cases := []struct {
		name      string
		column    string
		direction string
		want      string
	}{
		{"allow-listed asc", "status", "asc", " ORDER BY status ASC, ticket_id ASC"},
		{"allow-listed desc", "status", "desc", " ORDER BY status DESC, ticket_id DESC"},
		{"unknown column falls back to default", "subject; DROP TABLE", "asc", " ORDER BY created_at ASC, ticket_id ASC"},
		{"unknown direction falls back to entity default", "status", "sideways", " ORDER BY status DESC, ticket_id DESC"},
		{"empty selection means entity default", "", "", " ORDER BY created_at DESC, ticket_id DESC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, spec.orderBy(tc.column, tc.direction))
		})
	}
}

func TestLimitOffset(t *testing.T) {
	assert.Equal(t, " LIMIT 10 OFFSET 0",
		limitOffset(queries.ListParams{Page: 1, PageSize: 10}))
	assert.Equal(t, " LIMIT 10 OFFSET 20",
		limitOffset(queries.ListParams{Page: 3, PageSize: 10}))
	// zero values fall back to the default page size and first page
	assert.Equal(t, " LIMIT 10 OFFSET 0",
		limitOffset(queries.ListParams{}))
}

func TestBuildTicketList(t *testing.T) {
	t.Run("default params", func(t *testing.T) {
		countSQL, pageSQL, args := buildTicketList(queries.ListParams{Page: 1, PageSize: 10})
		assert.Equal(t, "SELECT COUNT(*) FROM help_ticket WHERE 1=1", countSQL)
		assert.Equal(t,
			"SELECT ticket_id, customer_id, subject, status, created_at, resolved_at"+
				" FROM help_ticket WHERE 1=1 ORDER BY created_at DESC, ticket_id DESC LIMIT 10 OFFSET 0",
			pageSQL)
		assert.Empty(t, args)
	})

	t.Run("status filter and search combine", func(t *testing.T) {
		countSQL, pageSQL, args := buildTicketList(queries.ListParams{
			Filter:        "open",
			Search:        "Chair",
			SortColumn:    "status",
			SortDirection: "asc",
			Page:          2,
			PageSize:      10,
		})
		require.Equal(t, []any{"open", "%chair%"}, args)
		assert.Contains(t, countSQL, "status = $1")
		assert.Contains(t, pageSQL,
			"(LOWER(customer_id) LIKE $2 OR LOWER(subject) LIKE $2 OR LOWER(ticket_id) LIKE $2)")
		assert.Contains(t, pageSQL, " ORDER BY status ASC, ticket_id ASC")
		assert.Contains(t, pageSQL, " LIMIT 10 OFFSET 10")
	})

	t.Run("unknown filter matches all rows", func(t *testing.T) {
		countSQL, _, args := buildTicketList(queries.ListParams{Filter: "all", Page: 1, PageSize: 10})
		assert.Equal(t, "SELECT COUNT(*) FROM help_ticket WHERE 1=1", countSQL)
		assert.Empty(t, args)
	})
}

func TestBuildRefundList(t *testing.T) {
	cases := []struct {
		filter string
		clause string
	}{
		{"approved", "approved = TRUE"},
		{"denied", "approved = FALSE"},
		{"pending", "approved IS NULL"},
	}
	for _, tc := range cases {
		t.Run(tc.filter, func(t *testing.T) {
			countSQL, pageSQL, args := buildRefundList(queries.ListParams{Filter: tc.filter, Page: 1, PageSize: 10})
			assert.Contains(t, countSQL, tc.clause)
			assert.Contains(t, pageSQL, tc.clause)
			// tri-state filters are fixed clauses, not bound values
			assert.Empty(t, args)
		})
	}

	t.Run("default sort is request_date descending", func(t *testing.T) {
		_, pageSQL, _ := buildRefundList(queries.ListParams{Page: 1, PageSize: 10})
		assert.Contains(t, pageSQL, " ORDER BY request_date DESC, refund_id DESC")
	})
}

func TestBuildPaymentList(t *testing.T) {
	t.Run("status filter maps to payment_status column", func(t *testing.T) {
		countSQL, _, args := buildPaymentList(queries.ListParams{Filter: "succeeded", Page: 1, PageSize: 10})
		assert.Contains(t, countSQL, "payment_status = $1")
		assert.Equal(t, []any{"succeeded"}, args)
	})

	t.Run("amount sort", func(t *testing.T) {
		_, pageSQL, _ := buildPaymentList(queries.ListParams{
			SortColumn:    "amount_cents",
			SortDirection: "desc",
			Page:          1,
			PageSize:      10,
		})
		assert.Contains(t, pageSQL, " ORDER BY amount_cents DESC, payment_id DESC")
	})

	t.Run("status sorts under either name", func(t *testing.T) {
		for _, column := range []string{"status", "payment_status"} {
			_, pageSQL, _ := buildPaymentList(queries.ListParams{
				SortColumn:    column,
				SortDirection: "asc",
				Page:          1,
				PageSize:      10,
			})
			assert.Contains(t, pageSQL, " ORDER BY payment_status ASC, payment_id ASC")
		}
	})
}
