package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// ApplyDDL выполняет карту ключ -> SQL в стабильном порядке ключей.
// DDL идемпотентный; повторное добавление constraint'а Postgres отдаёт
// как duplicate_object (42710) — это не ошибка, пропускаем.
func ApplyDDL(db *sql.DB, ddl map[string]string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, k := range SortedDDLKeys(ddl) {
		sqlText := strings.TrimSpace(ddl[k])
		if sqlText == "" {
			continue
		}
		// constraint'ы применяем по одному стейтменту: exec нескольких
		// alter table разом прерывается на первом дубле
		for _, stmt := range strings.Split(sqlText, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "42710" {
					log.Printf("DDL пропущен (уже есть): %s (%s)", pgErr.ConstraintName, strings.TrimSpace(pgErr.Message))
					continue
				}
				// подстраховка по фразе (другие виды объектов)
				e := strings.ToLower(err.Error())
				if strings.Contains(e, "already exists") || strings.Contains(e, "duplicate") {
					log.Printf("DDL пропущен (уже есть): %v", err)
					continue
				}
				return fmt.Errorf("DDL apply failed (%s): %w", k, err)
			}
		}
	}
	return nil
}

// EnsureSchema создаёт все девять таблиц и внешние ключи.
func EnsureSchema(db *sql.DB) error {
	return ApplyDDL(db, GenerateDDL())
}
