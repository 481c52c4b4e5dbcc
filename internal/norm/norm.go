package norm

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"zaslon/internal/reference"
	"zaslon/internal/xmltree"
)

// Result — итог одного прогона нормализации: девять таблиц в порядке
// загрузки (родители раньше детей) плюс накопленная диагностика.
// RunID — ULID прогона для логов и ответов API; в ключи таблиц он
// не попадает, те строго детерминированы.
type Result struct {
	RunID  string
	Tables []*Table
	Diags  Diags
}

// Table возвращает таблицу по имени (nil если нет).
func (r *Result) Table(name string) *Table {
	for _, t := range r.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// RelayList находит список реле: ProtectionDataset/Relays/Relay.
// Отсутствие любого из уровней — фатально: без списка реле выход
// не имеет смысла.
func RelayList(doc *xmltree.Node) ([]*xmltree.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("пустой документ")
	}

	root := doc
	if root.Name != "ProtectionDataset" {
		root = doc.First("ProtectionDataset")
		if root == nil {
			return nil, fmt.Errorf("корневой узел ProtectionDataset не найден (корень: %s)", doc.Name)
		}
	}

	relaysRoot := root.First("Relays")
	if relaysRoot == nil {
		return nil, fmt.Errorf("узел Relays не найден внутри ProtectionDataset")
	}

	relays := relaysRoot.All("Relay")
	if len(relays) == 0 {
		return nil, fmt.Errorf("ни одного узла Relay внутри Relays")
	}
	return relays, nil
}

// Normalize — один синхронный проход по списку реле. Счётчики синтетических
// ID создаются заново на каждый вызов, поэтому повторный прогон по тому же
// документу даёт байт-в-байт те же таблицы.
func Normalize(doc *xmltree.Node, syn *reference.Synonyms) (*Result, error) {
	relays, err := RelayList(doc)
	if err != nil {
		return nil, err
	}
	if syn == nil {
		syn = reference.DefaultSynonyms()
	}

	c := NewCounters()
	res := &Result{RunID: ulid.Make().String()}

	res.Tables = []*Table{
		Cores(relays),
		CTs(relays, c, &res.Diags),
		VTs(relays, c, &res.Diags),
		Functions(relays, &res.Diags),
		Settings(relays, syn, c, &res.Diags),
		Curves(relays, c, &res.Diags),
		CurvePoints(relays, c, &res.Diags),
		Parameters(relays, c, &res.Diags),
		Selectivity(relays, c, &res.Diags),
	}
	return res, nil
}
