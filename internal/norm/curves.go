package norm

import (
	"encoding/json"

	"zaslon/internal/xmltree"
)

// curveCandidates — упорядоченное объединение двух мест, где функция может
// объявлять кривые: сначала Settings/Curve, затем Curve прямо под функцией.
// Порядок — это контракт: от него зависят позиционные ID кривых и выбор
// "первой" кривой для точек.
func curveCandidates(fn *xmltree.Node) []*xmltree.Node {
	var out []*xmltree.Node
	if settings := fn.First("Settings"); settings != nil {
		out = append(out, settings.All("Curve")...)
	}
	out = append(out, fn.All("Curve")...)
	return out
}

// канонические атрибуты кривой; остальное уходит в extra_json
var curveCanonAttrs = []string{"family", "type", "standard", "pickupPU", "pickupA", "timeDial", "minTimeSeconds", "parametric"}

// Curves — метаданные кривых срабатывания.
func Curves(relays []*xmltree.Node, c *Counters, d *Diags) *Table {
	t := NewTable(TableCurves,
		"curve_id", "function_id", "family", "type", "standard",
		"pickup_pu", "pickup_a", "time_dial", "min_time_sec",
		"parametric", "extra_json",
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

			for i, curve := range curveCandidates(fn) {
				idx := i + 1
				if !structured(curve) {
					d.Add(relayID, "Curve", "узел Curve без структуры — пропущен")
					continue
				}

				curveID := c.CurveID(relayID, funcID, curve.Attr("id"), idx)

				extra := map[string]string{}
				for _, k := range curve.AttrKeys {
					extra[k] = curve.Attrs[k]
				}
				for _, k := range curveCanonAttrs {
					delete(extra, k)
				}

				var extraJSON any
				if len(extra) > 0 {
					b, err := json.Marshal(extra)
					if err == nil {
						extraJSON = string(b)
					}
				}

				t.Append(Row{
					"curve_id":     curveID,
					"function_id":  attrVal(fn, "id"),
					"family":       attrVal(curve, "family"),
					"type":         attrVal(curve, "type"),
					"standard":     attrVal(curve, "standard"),
					"pickup_pu":    fnum(Float(curve.Attr("pickupPU"))),
					"pickup_a":     fnum(Float(curve.Attr("pickupA"))),
					"time_dial":    fnum(Float(curve.Attr("timeDial"))),
					"min_time_sec": fnum(Float(curve.Attr("minTimeSeconds"))),
					"parametric":   fbool(Bool(curve.Attr("parametric"))),
					"extra_json":   extraJSON,
				})
			}
		}
	}
	return t
}

// CurvePoints — точки кривых.
//
// Ограничение, унаследованное от исходных выгрузок: точки привязываются
// ТОЛЬКО к первой кривой-кандидату функции, даже если кривых несколько.
// ID кривой пересчитывается тем же правилом, что и в Curves, поэтому
// внешний ключ сходится без обращения к уже построенной таблице.
// Обобщение на несколько кривых поменяло бы схему ID — сознательно не делаем.
func CurvePoints(relays []*xmltree.Node, c *Counters, d *Diags) *Table {
	t := NewTable(TableCurvePoints,
		"point_id", "curve_id", "base", "multiple", "time_seconds", "amps", "volts",
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

			natural := ""
			if cand := curveCandidates(fn); len(cand) > 0 && structured(cand[0]) {
				natural = cand[0].Attr("id")
			}
			curveID := c.CurveID(relayID, funcID, natural, 1)

			cp := fn.First("CurvePoints")
			if cp == nil {
				continue
			}
			base := attrVal(cp, "base")

			for i, point := range cp.All("Point") {
				idx := i + 1
				if !structured(point) {
					d.Add(relayID, "CurvePoints", "узел Point без структуры — пропущен")
					continue
				}

				t.Append(Row{
					"point_id":     c.PointID(curveID, idx),
					"curve_id":     curveID,
					"base":         base,
					"multiple":     fnum(Float(point.Attr("multiple"))),
					"time_seconds": fnum(Float(point.Attr("timeSeconds"))),
					"amps":         fnum(Float(point.Attr("current"))),
					"volts":        nil, // в токовых выгрузках напряжения нет; колонка под будущие V-t кривые
				})
			}
		}
	}
	return t
}
