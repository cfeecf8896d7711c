package table

// Resolver computes the replacement value for one row during Lookup. A nil
// result deletes the column from the row. Errors are returned to the Lookup
// caller unmodified.
type Resolver func(Row) (any, error)

// Lookup replaces the value of column in every row with the result of
// resolve. The value already in the column (the lookup key) is read before
// resolution and, when useCache is set, keys the per-invocation memo: later
// rows carrying an equal key reuse the first resolved value without calling
// resolve again. Rows whose key is nil or absent always go to the resolver
// and never touch the memo.
//
// Rows are visited strictly in order, one at a time; resolvers with external
// side effects observe the same sequence as the row slice. A resolver error
// stops processing immediately. Rows already visited keep their new values.
//
// The memo lives only for this call. A memoized nil behaves like a freshly
// resolved nil: the column is deleted from the row.
func (t *Table) Lookup(column string, resolve Resolver, useCache bool) error {
	memo := make(map[string]any)
	for _, row := range t.Rows {
		key, cacheable := "", false
		if useCache {
			key, cacheable = memoKey(row[column])
		}

		var resolved any
		if cacheable {
			if cached, seen := memo[key]; seen {
				resolved = cached
			} else {
				var err error
				resolved, err = resolve(row)
				if err != nil {
					return err
				}
			}
			memo[key] = resolved
		} else {
			var err error
			resolved, err = resolve(row)
			if err != nil {
				return err
			}
		}

		if resolved == nil {
			delete(row, column)
		} else {
			row[column] = resolved
		}
	}
	return nil
}

// RemoveColumn deletes the column from every row. Rows lacking the column
// are untouched.
func (t *Table) RemoveColumn(column string) {
	for _, row := range t.Rows {
		delete(row, column)
	}
}

// RenameColumn moves the value under oldName to newName in every row that
// has oldName. Rows without oldName never gain a newName entry.
func (t *Table) RenameColumn(oldName, newName string) {
	for _, row := range t.Rows {
		if v, ok := row[oldName]; ok {
			row[newName] = v
			delete(row, oldName)
		}
	}
}
