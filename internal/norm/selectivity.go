package norm

import "zaslon/internal/xmltree"

// Selectivity — направленные рёбра координации функции с выше- и
// нижестоящими аппаратами. Запас по времени (CoordinationMargin/@seconds)
// читается один раз на блок и проставляется каждому ребру.
func Selectivity(relays []*xmltree.Node, c *Counters, d *Diags) *Table {
	t := NewTable(TableSelectivity,
		"selectivity_id", "function_id",
		"upstream_device", "downstream_device", "element", "coordination_margin",
	)

	for _, relay := range relays {
		relayID := relay.Attr("id")
		block := relay.First("ProtectionFunctions")
		if block == nil {
			continue
		}

		for _, fn := range block.All("Function") {
			if !structured(fn) {
				continue
			}
			funcID := fn.Attr("id")

			sel := fn.First("Selectivity")
			if sel == nil {
				continue
			}

			var margin any
			if m := sel.First("CoordinationMargin"); m != nil {
				margin = fnum(Float(m.Attr("seconds")))
			}

			for i, dev := range sel.All("DownstreamDevice") {
				idx := i + 1
				if !structured(dev) {
					d.Add(relayID, "Selectivity", "узел DownstreamDevice без структуры — пропущен")
					continue
				}
				t.Append(Row{
					"selectivity_id":      c.SelectivityID(relayID, funcID, true, idx),
					"function_id":         attrVal(fn, "id"),
					"upstream_device":     nil,
					"downstream_device":   attrVal(dev, "id"),
					"element":             attrVal(dev, "element"),
					"coordination_margin": margin,
				})
			}

			for i, dev := range sel.All("UpstreamDevice") {
				idx := i + 1
				if !structured(dev) {
					d.Add(relayID, "Selectivity", "узел UpstreamDevice без структуры — пропущен")
					continue
				}
				t.Append(Row{
					"selectivity_id":      c.SelectivityID(relayID, funcID, false, idx),
					"function_id":         attrVal(fn, "id"),
					"upstream_device":     attrVal(dev, "id"),
					"downstream_device":   nil,
					"element":             attrVal(dev, "element"),
					"coordination_margin": margin,
				})
			}
		}
	}
	return t
}
