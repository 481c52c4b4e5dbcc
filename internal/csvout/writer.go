package csvout

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"zaslon/internal/norm"
)

// cell форматирует значение ячейки. nil -> пустая строка (NULL).
func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// WriteTable пишет таблицу в <dir>/<имя>.csv: заголовок + строки в порядке
// колонок таблицы. Пустая таблица — файл не создаём, только заметка в лог.
func WriteTable(dir string, t *norm.Table) error {
	if t.Empty() {
		log.Printf("нет записей для %s.csv — файл не создаётся", t.Name)
		return nil
	}

	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			rec[i] = cell(row[col])
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv write %s: %w", path, err)
	}
	log.Printf("нормализованный файл создан: %s (%d строк)", path, len(t.Rows))
	return nil
}

// WriteAll пишет все таблицы результата в указанную папку (создаёт её при
// необходимости).
func WriteAll(dir string, res *norm.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	for _, t := range res.Tables {
		if err := WriteTable(dir, t); err != nil {
			return err
		}
	}
	return nil
}
