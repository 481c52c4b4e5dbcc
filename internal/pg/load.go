package pg

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"zaslon/internal/norm"
)

// LoadTable заливает одну таблицу: insert ... on conflict (pk) do nothing.
// Ключи у нормализатора детерминированные, поэтому повторная загрузка того
// же документа ничего не дублирует. Возвращает (вставлено, пропущено).
func LoadTable(ctx context.Context, db *sql.DB, t *norm.Table) (int64, int64, error) {
	if t.Empty() {
		return 0, 0, nil
	}
	spec := SpecByName(t.Name)
	if spec == nil {
		return 0, 0, fmt.Errorf("неизвестная таблица: %s", t.Name)
	}

	cols := make([]string, len(t.Columns))
	ph := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = sqlIdent(c)
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("insert into %s (%s) values (%s) on conflict (%s) do nothing",
		sqlIdent(t.Name), strings.Join(cols, ", "), strings.Join(ph, ", "), sqlIdent(spec.PK))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: prepare: %w", t.Name, err)
	}
	defer stmt.Close()

	var inserted, skipped int64
	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			args[i] = row[c]
		}
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return inserted, skipped, fmt.Errorf("%s: insert: %w", t.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted += n
		} else {
			skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, skipped, err
	}
	return inserted, skipped, nil
}

// LoadAll заливает таблицы результата в порядке зависимости FK
// (таблицы уже идут в этом порядке из нормализатора).
func LoadAll(db *sql.DB, res *norm.Result) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, t := range res.Tables {
		if t.Empty() {
			log.Printf("загрузка %s: записей нет — пропуск", t.Name)
			continue
		}
		ins, skip, err := LoadTable(ctx, db, t)
		if err != nil {
			return err
		}
		log.Printf("загрузка %s: вставлено %d, пропущено по конфликту %d", t.Name, ins, skip)
	}
	return nil
}
