package database

import (
	"fmt"
	"strings"
)

const profileColumns = "id, name, description, warm_up, low_intensity, high_intensity, rest, cooldown, sets, rounds"

type ProfileQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewProfileQuery() *ProfileQuery {
	return &ProfileQuery{columns: profileColumns, orderBy: "name COLLATE NOCASE ASC, id ASC"}
}

func (q *ProfileQuery) Where(filter string, args ...interface{}) *ProfileQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *ProfileQuery) WhereID(id string) *ProfileQuery {
	return q.Where("id = ?", id)
}

func (q *ProfileQuery) WhereSets(sets int64) *ProfileQuery {
	return q.Where("sets = ?", sets)
}

func (q *ProfileQuery) WhereRounds(rounds int64) *ProfileQuery {
	return q.Where("rounds = ?", rounds)
}

// WhereText matches term against the name or description, case-insensitively.
func (q *ProfileQuery) WhereText(term string) *ProfileQuery {
	pattern := likePattern(strings.ToLower(term))
	return q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`, pattern, pattern)
}

func (q *ProfileQuery) OrderBy(orderBy string) *ProfileQuery {
	q.orderBy = orderBy
	return q
}

func (q *ProfileQuery) Limit(limit int) *ProfileQuery {
	q.limit = limit
	return q
}

func (q *ProfileQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM profiles", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
