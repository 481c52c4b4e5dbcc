package norm

// Row — одна плоская запись: имя колонки -> значение.
// nil в качестве значения = "отсутствует" (пустая ячейка в CSV, NULL в БД).
type Row map[string]any

// Table — табличный набор записей одного вида с фиксированным порядком колонок.
// Пустая таблица — штатное состояние (нулевой набор строк), а не ошибка;
// "блока не было вовсе" фиксируется отдельной диагностикой.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

func NewTable(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Diag — нефатальная аномалия прогона: отсутствующий необязательный блок,
// пропущенный кривой элемент и т.п. Не прерывает обработку.
type Diag struct {
	RelayID string `json:"relay_id,omitempty"`
	Block   string `json:"block"`
	Message string `json:"message"`
}

// Diags копит диагностику одного прогона.
type Diags struct {
	Items []Diag
}

func (d *Diags) Add(relayID, block, msg string) {
	if d == nil {
		return
	}
	d.Items = append(d.Items, Diag{RelayID: relayID, Block: block, Message: msg})
}
