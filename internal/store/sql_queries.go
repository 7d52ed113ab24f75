// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_entries"

func upsertEntryQuery(scope string, e Entry, now time.Time) sq.InsertBuilder {
	return sq.Insert(kvTable).
		Columns("scope", "entry_key", "entry_value", "sealed", "updated_at").
		Values(scope, e.Key, e.Value, e.Sealed, now).
		Suffix("ON CONFLICT (scope, entry_key) DO UPDATE SET " +
			"entry_value = excluded.entry_value, " +
			"sealed = excluded.sealed, " +
			"updated_at = excluded.updated_at")
}

func getEntryQuery(scope, key string) sq.SelectBuilder {
	return sq.Select("entry_value", "sealed").
		From(kvTable).
		Where(sq.Eq{"scope": scope}).
		Where(sq.Eq{"entry_key": key}).
		Limit(1)
}

func deleteEntriesQuery(scope string, keys []string) sq.DeleteBuilder {
	return sq.Delete(kvTable).
		Where(sq.Eq{"scope": scope}).
		Where(sq.Eq{"entry_key": keys})
}

func clearScopeQuery(scope string) sq.DeleteBuilder {
	return sq.Delete(kvTable).Where(sq.Eq{"scope": scope})
}
