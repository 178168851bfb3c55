package query

import (
	"fmt"
	"strings"
)

// QueryBuilder assembles parameterized SELECT statements for the catalog
// search endpoints.
type QueryBuilder struct {
	table      string
	columns    []string
	conditions []string
	values     []interface{}
	orderBy    string
	limit      int
	offset     int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{limit: -1, offset: -1}
}

func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	qb.columns = append(qb.columns, columns...)
	return qb
}

func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.table = table
	return qb
}

// Where adds a condition with "?" placeholders; conditions are joined
// with AND.
func (qb *QueryBuilder) Where(condition string, args ...interface{}) *QueryBuilder {
	qb.conditions = append(qb.conditions, condition)
	qb.values = append(qb.values, args...)
	return qb
}

func (qb *QueryBuilder) OrderBy(clause string) *QueryBuilder {
	qb.orderBy = clause
	return qb
}

func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

func (qb *QueryBuilder) Offset(n int) *QueryBuilder {
	qb.offset = n
	return qb
}

func (qb *QueryBuilder) Build() (string, []interface{}) {
	var sb strings.Builder

	if len(qb.columns) > 0 {
		sb.WriteString(fmt.Sprintf("SELECT %s FROM %s", strings.Join(qb.columns, ", "), qb.table))
	} else {
		sb.WriteString(fmt.Sprintf("SELECT * FROM %s", qb.table))
	}

	if len(qb.conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(qb.conditions, " AND "))
	}
	if qb.orderBy != "" {
		sb.WriteString(" ORDER BY " + qb.orderBy)
	}
	if qb.limit >= 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", qb.limit))
	}
	if qb.offset >= 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", qb.offset))
	}

	return sb.String(), qb.values
}
