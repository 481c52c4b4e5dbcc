package norm

import "fmt"

// Counters — счётчики синтетических ID по видам сущностей.
// Живут ровно один прогон нормализации: новый Normalize — новые счётчики.
// Глобального состояния нет, поэтому повторные/параллельные прогоны
// не текут друг в друга.
type Counters struct {
	byKind map[string]int
}

func NewCounters() *Counters {
	return &Counters{byKind: map[string]int{}}
}

func (c *Counters) next(kind string) int {
	c.byKind[kind]++
	return c.byKind[kind]
}

// Политика ID гибридная (XML -> DB):
// 1) если в источнике есть естественный @id — берём его;
// 2) иначе детерминированный позиционный ключ (родитель + порядковый номер);
// 3) и только если родительских ключей нет — глобальный счётчик вида.
// Пункты 1-2 дают байт-в-байт одинаковые ключи на повторном прогоне,
// что и делает загрузку в БД идемпотентной (on conflict do nothing).

// CTID: естественный id, иначе CT-{relay}-{NN}.
func (c *Counters) CTID(relayID, natural string, idx int) string {
	if natural != "" {
		return natural
	}
	return fmt.Sprintf("CT-%s-%02d", relayID, idx)
}

// VTID: естественный id, иначе VT-{relay}-{NN}, иначе VT-AUTO-{NNNNNN}.
func (c *Counters) VTID(relayID, natural string, idx int) string {
	if natural != "" {
		return natural
	}
	if relayID != "" {
		return fmt.Sprintf("VT-%s-%02d", relayID, idx)
	}
	return fmt.Sprintf("VT-AUTO-%06d", c.next("VT"))
}

// CurveID: естественный id, иначе CUR-{relay}-{func}-{NN}, иначе CUR-AUTO-{NNNNNN}.
func (c *Counters) CurveID(relayID, funcID, natural string, idx int) string {
	if natural != "" {
		return natural
	}
	if relayID != "" && funcID != "" {
		return fmt.Sprintf("CUR-%s-%s-%02d", relayID, funcID, idx)
	}
	return fmt.Sprintf("CUR-AUTO-%06d", c.next("CURVE"))
}

// PointID: всегда синтетический, но детерминированный по кривой и порядку.
func (c *Counters) PointID(curveID string, idx int) string {
	return fmt.Sprintf("PT-%s-%03d", curveID, idx)
}

// SettingID: одна агрегированная запись на функцию.
func (c *Counters) SettingID(relayID, funcID string) string {
	return fmt.Sprintf("SET-%s-%s", relayID, funcID)
}

// ParameterID: естественный id, иначе PAR-{relay}-{NNN}.
func (c *Counters) ParameterID(relayID, natural string, idx int) string {
	if natural != "" {
		return natural
	}
	return fmt.Sprintf("PAR-%s-%03d", relayID, idx)
}

// SelectivityID: SEL-{relay}-{func}-{D|U}-{NNN}.
func (c *Counters) SelectivityID(relayID, funcID string, downstream bool, idx int) string {
	dir := "U"
	if downstream {
		dir = "D"
	}
	return fmt.Sprintf("SEL-%s-%s-%s-%03d", relayID, funcID, dir, idx)
}
