package norm

import "zaslon/internal/xmltree"

// Имена выходных таблиц (совпадают с именами в БД и CSV).
const (
	TableCore        = "relays_core"
	TableCTs         = "relays_cts"
	TableVTs         = "relays_vts"
	TableFunctions   = "relays_functions"
	TableSettings    = "relays_function_settings"
	TableCurves      = "relays_curves"
	TableCurvePoints = "relays_curve_points"
	TableParameters  = "relays_parameters"
	TableSelectivity = "relays_selectivity"
)

// Cores — ядро реле (N2): одна строка на реле, ключ естественный (@id).
func Cores(relays []*xmltree.Node) *Table {
	t := NewTable(TableCore,
		"relay_id", "manufacturer", "model", "series", "relay_type",
		"voltage_class_kv", "frequency_hz", "config_date",
		"protected_transformer_id", "protected_feeder_id", "protected_load_id",
	)

	for _, relay := range relays {
		t.Append(Row{
			"relay_id":                 attrVal(relay, "id"),
			"manufacturer":             attrVal(relay, "manufacturer"),
			"model":                    attrVal(relay, "model"),
			"series":                   attrVal(relay, "series"),
			"relay_type":               attrVal(relay, "relayType"),
			"voltage_class_kv":         attrVal(relay, "voltageClassKV"),
			"frequency_hz":             fnum(Float(relay.Attr("frequencyHz"))),
			"config_date":              attrVal(relay, "configDate"),
			"protected_transformer_id": attrVal(relay, "protectedTransformerId"),
			"protected_feeder_id":      attrVal(relay, "protectedFeederId"),
			"protected_load_id":        attrVal(relay, "protectedLoadId"),
		})
	}
	return t
}
