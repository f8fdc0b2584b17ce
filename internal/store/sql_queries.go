package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	payloadsTable = "payloads"

	columnPosition = "position"
	columnPayload  = "payload"
)

// buildLoadBundleQuery selects every payload in bundle order.
func buildLoadBundleQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.
		Select(columnPayload).
		From(payloadsTable).
		OrderBy(columnPosition + " ASC").
		ToSql()
}

// buildDeleteBundleQuery removes the whole bundle.
func buildDeleteBundleQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.
		Delete(payloadsTable).
		ToSql()
}

// buildInsertBundleQuery inserts payloads as one multi-row statement,
// numbering positions from zero.
func buildInsertBundleQuery(b sq.StatementBuilderType, payloads []string) (string, []any, error) {
	insert := b.
		Insert(payloadsTable).
		Columns(columnPosition, columnPayload)

	for i, p := range payloads {
		insert = insert.Values(i, p)
	}

	return insert.ToSql()
}
