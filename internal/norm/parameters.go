package norm

import "zaslon/internal/xmltree"

// Parameters — свободные параметры реле (<Parameters>/<Parameter>).
func Parameters(relays []*xmltree.Node, c *Counters, d *Diags) *Table {
	t := NewTable(TableParameters,
		"parameter_id", "relay_id", "name", "group_name", "type", "value",
	)

	for _, relay := range relays {
		relayID := relay.Attr("id")
		block := relay.First("Parameters")
		if block == nil {
			d.Add(relayID, "Parameters", "блок Parameters отсутствует")
			continue
		}

		for i, param := range block.All("Parameter") {
			idx := i + 1
			if !structured(param) {
				d.Add(relayID, "Parameters", "узел Parameter без структуры — пропущен")
				continue
			}

			t.Append(Row{
				"parameter_id": c.ParameterID(relayID, param.Attr("id"), idx),
				"relay_id":     attrVal(relay, "id"),
				"name":         attrVal(param, "name"),
				"group_name":   attrVal(param, "group"),
				"type":         attrVal(param, "type"),
				"value":        attrVal(param, "value"),
			})
		}
	}
	return t
}
