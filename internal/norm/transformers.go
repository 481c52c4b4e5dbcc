package norm

import "zaslon/internal/xmltree"

// CTs — трансформаторы тока по каждому реле.
// ratio считается только когда есть и первичный, и вторичный ток,
// и вторичный не ноль; иначе NULL.
func CTs(relays []*xmltree.Node, c *Counters, d *Diags) *Table {
	t := NewTable(TableCTs,
		"relay_id", "ct_id", "location", "phase",
		"primary_a", "secondary_a", "ratio",
		"class", "burden_va", "core_id",
	)

	for _, relay := range relays {
		relayID := relay.Attr("id")
		block := relay.First("CTs")
		if block == nil {
			d.Add(relayID, "CTs", "блок CTs отсутствует")
			continue
		}

		for i, ct := range block.All("CT") {
			idx := i + 1
			if !structured(ct) {
				d.Add(relayID, "CTs", "узел CT без структуры — пропущен")
				continue
			}

			primary := Float(ct.Attr("primaryA"))
			secondary := Float(ct.Attr("secondaryA"))

			var ratio any
			if primary != nil && secondary != nil && *secondary != 0 {
				ratio = *primary / *secondary
			}

			t.Append(Row{
				"relay_id":    attrVal(relay, "id"),
				"ct_id":       c.CTID(relayID, ct.Attr("id"), idx),
				"location":    attrVal(ct, "location"),
				"phase":       attrVal(ct, "phase"),
				"primary_a":   fnum(primary),
				"secondary_a": fnum(secondary),
				"ratio":       ratio,
				"class":       attrVal(ct, "class"),
				"burden_va":   fnum(Float(ct.Attr("burdenVA"))),
				"core_id":     attrVal(ct, "coreId"),
			})
		}
	}
	return t
}

// VTs — трансформаторы напряжения.
// Особый случай: блок VTs есть, явных узлов VT нет, но выставлены флаги
// vtDefined/vtEnabled — тогда синтезируем один VT со стабильным ID.
func VTs(relays []*xmltree.Node, c *Counters, d *Diags) *Table {
	t := NewTable(TableVTs,
		"relay_id", "vt_id", "location",
		"primary_kv", "secondary_v", "connection", "burden_va",
		"vt_defined", "vt_enabled",
	)

	for _, relay := range relays {
		relayID := relay.Attr("id")
		block := relay.First("VTs")
		if block == nil {
			d.Add(relayID, "VTs", "блок VTs отсутствует")
			continue
		}

		vtDefined := attrVal(block, "vtDefined")
		vtEnabled := attrVal(block, "vtEnabled")

		if !block.Has("VT") {
			if vtDefined == nil && vtEnabled == nil {
				d.Add(relayID, "VTs", "блок VTs пуст (ни узлов VT, ни флагов)")
				continue
			}
			// только флаги — синтетический VT
			t.Append(Row{
				"relay_id":    attrVal(relay, "id"),
				"vt_id":       c.VTID(relayID, "", 1),
				"location":    nil,
				"primary_kv":  nil,
				"secondary_v": nil,
				"connection":  nil,
				"burden_va":   nil,
				"vt_defined":  vtDefined,
				"vt_enabled":  vtEnabled,
			})
			continue
		}

		for i, vt := range block.All("VT") {
			idx := i + 1
			if !structured(vt) {
				d.Add(relayID, "VTs", "узел VT без структуры — пропущен")
				continue
			}

			t.Append(Row{
				"relay_id":    attrVal(relay, "id"),
				"vt_id":       c.VTID(relayID, vt.Attr("id"), idx),
				"location":    attrVal(vt, "location"),
				"primary_kv":  fnum(Float(vt.Attr("primaryKV"))),
				"secondary_v": fnum(Float(vt.Attr("secondaryV"))),
				"connection":  attrVal(vt, "connection"),
				"burden_va":   fnum(Float(vt.Attr("burdenVA"))),
				"vt_defined":  vtDefined,
				"vt_enabled":  vtEnabled,
			})
		}
	}
	return t
}
