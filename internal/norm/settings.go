package norm

import (
	"encoding/json"

	"zaslon/internal/reference"
	"zaslon/internal/xmltree"
)

// rawSetting — одна "сырая" тройка настроек: параметр / атрибут / значение.
type rawSetting struct {
	Parameter string
	Attribute string
	Value     string
}

// collectRawSettings разворачивает блок Settings одной функции в тройки.
// Узлы Curve — не настройки, они уходят в экстрактор кривых.
// Узел без атрибутов, но с текстом, даёт тройку (имя, "_text", текст).
func collectRawSettings(fn *xmltree.Node) []rawSetting {
	var rows []rawSetting
	settings := fn.First("Settings")
	if settings == nil {
		return rows
	}

	for _, name := range settings.ChildKeys {
		if name == "Curve" {
			continue
		}
		for _, node := range settings.All(name) {
			if len(node.Attrs) == 0 {
				if node.Text != "" {
					rows = append(rows, rawSetting{Parameter: name, Attribute: "_text", Value: node.Text})
				}
				continue
			}
			for _, attr := range node.AttrKeys {
				rows = append(rows, rawSetting{Parameter: name, Attribute: attr, Value: node.Attrs[attr]})
			}
		}
	}
	return rows
}

// Settings — агрегат настроек: ОДНА строка на функцию защиты.
// Канонические поля маппятся через справочник синонимов, всё остальное
// (и канонические тоже) без потерь складывается в extra_json под ключом
// "<параметр>.<атрибут>".
func Settings(relays []*xmltree.Node, syn *reference.Synonyms, c *Counters, d *Diags) *Table {
	t := NewTable(TableSettings,
		"setting_id", "function_id",
		"pickup_pu", "pickup_a", "time_dial", "min_time_seconds",
		"thermal_constant", "full_load_current", "trip_class",
		"extra_json",
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
			raw := collectRawSettings(fn)
			if len(raw) == 0 {
				// блока Settings нет или он пуст — строки не будет
				if fn.First("Settings") == nil {
					d.Add(relayID, "Settings", "блок Settings отсутствует у функции "+funcID)
				}
				continue
			}

			canonical := map[string]*float64{}
			extra := map[string]string{}

			for _, item := range raw {
				extra[item.Parameter+"."+item.Attribute] = item.Value
				if field := syn.Resolve(item.Parameter); field != "" {
					canonical[field] = Float(item.Value)
				}
			}

			var extraJSON any
			if len(extra) > 0 {
				// map сериализуется с сортировкой ключей — результат
				// байт-в-байт стабилен между прогонами
				b, err := json.Marshal(extra)
				if err == nil {
					extraJSON = string(b)
				}
			}

			t.Append(Row{
				"setting_id":        c.SettingID(relayID, funcID),
				"function_id":       funcID,
				"pickup_pu":         fnum(canonical[reference.FieldPickupPU]),
				"pickup_a":          fnum(canonical[reference.FieldPickupA]),
				"time_dial":         fnum(canonical[reference.FieldTimeDial]),
				"min_time_seconds":  fnum(canonical[reference.FieldMinTimeSeconds]),
				"thermal_constant":  fnum(canonical[reference.FieldThermalConstant]),
				"full_load_current": fnum(canonical[reference.FieldFullLoadCurrent]),
				"trip_class":        fnum(canonical[reference.FieldTripClass]),
				"extra_json":        extraJSON,
			})
		}
	}
	return t
}
