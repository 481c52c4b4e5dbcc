package norm

import "zaslon/internal/xmltree"

// Functions — заголовки функций защиты (без настроек и кривых).
func Functions(relays []*xmltree.Node, d *Diags) *Table {
	t := NewTable(TableFunctions,
		"relay_id", "function_id", "name", "ansi_code", "enabled",
		"zone", "directionality", "trip_output", "ct_ref",
	)

	for _, relay := range relays {
		relayID := relay.Attr("id")
		block := relay.First("ProtectionFunctions")
		if block == nil {
			d.Add(relayID, "ProtectionFunctions", "блок ProtectionFunctions отсутствует")
			continue
		}

		for _, fn := range block.All("Function") {
			if !structured(fn) {
				d.Add(relayID, "ProtectionFunctions", "узел Function без структуры — пропущен")
				continue
			}
			t.Append(Row{
				"relay_id":       attrVal(relay, "id"),
				"function_id":    attrVal(fn, "id"),
				"name":           attrVal(fn, "name"),
				"ansi_code":      attrVal(fn, "ansiCode"),
				"enabled":        attrVal(fn, "enabled"),
				"zone":           attrVal(fn, "zone"),
				"directionality": attrVal(fn, "directionality"),
				"trip_output":    attrVal(fn, "tripOutput"),
				"ct_ref":         attrVal(fn, "ctRef"),
			})
		}
	}
	return t
}
