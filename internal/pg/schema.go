package pg

import (
	"fmt"
	"sort"
	"strings"
)

// колоночные типы: всё текст, кроме явно числовых/булевых колонок
type col struct {
	Name string
	Type string // "text" | "double precision" | "boolean"
}

type fk struct {
	Col      string
	RefTable string
	RefCol   string
}

// TableSpec — описание одной таблицы нормализованного набора:
// порядок колонок, первичный ключ, внешние ключи.
type TableSpec struct {
	Name string
	Cols []col
	PK   string
	FKs  []fk
}

func t(name string) col { return col{name, "text"} }
func n(name string) col { return col{name, "double precision"} }
func b(name string) col { return col{name, "boolean"} }

// Specs — девять таблиц в порядке загрузки (родители раньше детей).
// Порядок колонок совпадает с таблицами нормализатора и CSV.
var Specs = []TableSpec{
	{
		Name: "relays_core",
		Cols: []col{
			t("relay_id"), t("manufacturer"), t("model"), t("series"), t("relay_type"),
			t("voltage_class_kv"), n("frequency_hz"), t("config_date"),
			t("protected_transformer_id"), t("protected_feeder_id"), t("protected_load_id"),
		},
		PK: "relay_id",
	},
	{
		Name: "relays_cts",
		Cols: []col{
			t("relay_id"), t("ct_id"), t("location"), t("phase"),
			n("primary_a"), n("secondary_a"), n("ratio"),
			t("class"), n("burden_va"), t("core_id"),
		},
		PK:  "ct_id",
		FKs: []fk{{"relay_id", "relays_core", "relay_id"}},
	},
	{
		Name: "relays_vts",
		Cols: []col{
			t("relay_id"), t("vt_id"), t("location"),
			n("primary_kv"), n("secondary_v"), t("connection"), n("burden_va"),
			t("vt_defined"), t("vt_enabled"),
		},
		PK:  "vt_id",
		FKs: []fk{{"relay_id", "relays_core", "relay_id"}},
	},
	{
		Name: "relays_functions",
		Cols: []col{
			t("relay_id"), t("function_id"), t("name"), t("ansi_code"), t("enabled"),
			t("zone"), t("directionality"), t("trip_output"), t("ct_ref"),
		},
		PK:  "function_id",
		FKs: []fk{{"relay_id", "relays_core", "relay_id"}},
	},
	{
		Name: "relays_function_settings",
		Cols: []col{
			t("setting_id"), t("function_id"),
			n("pickup_pu"), n("pickup_a"), n("time_dial"), n("min_time_seconds"),
			n("thermal_constant"), n("full_load_current"), n("trip_class"),
			t("extra_json"),
		},
		PK:  "setting_id",
		FKs: []fk{{"function_id", "relays_functions", "function_id"}},
	},
	{
		Name: "relays_curves",
		Cols: []col{
			t("curve_id"), t("function_id"), t("family"), t("type"), t("standard"),
			n("pickup_pu"), n("pickup_a"), n("time_dial"), n("min_time_sec"),
			b("parametric"), t("extra_json"),
		},
		PK:  "curve_id",
		FKs: []fk{{"function_id", "relays_functions", "function_id"}},
	},
	{
		Name: "relays_curve_points",
		Cols: []col{
			t("point_id"), t("curve_id"), t("base"),
			n("multiple"), n("time_seconds"), n("amps"), n("volts"),
		},
		PK:  "point_id",
		FKs: []fk{{"curve_id", "relays_curves", "curve_id"}},
	},
	{
		Name: "relays_parameters",
		Cols: []col{
			t("parameter_id"), t("relay_id"), t("name"), t("group_name"), t("type"), t("value"),
		},
		PK:  "parameter_id",
		FKs: []fk{{"relay_id", "relays_core", "relay_id"}},
	},
	{
		Name: "relays_selectivity",
		Cols: []col{
			t("selectivity_id"), t("function_id"), t("upstream_device"),
			t("downstream_device"), t("element"), n("coordination_margin"),
		},
		PK:  "selectivity_id",
		FKs: []fk{{"function_id", "relays_functions", "function_id"}},
	},
}

// SpecByName возвращает описание таблицы (nil если имя неизвестно).
func SpecByName(name string) *TableSpec {
	for i := range Specs {
		if Specs[i].Name == name {
			return &Specs[i]
		}
	}
	return nil
}

func sqlIdent(s string) string { return `"` + strings.ToLower(s) + `"` }

// GenerateDDL возвращает карту ключ -> SQL. DDL идемпотентный
// (create ... if not exists), фазы: сначала все таблицы, потом внешние
// ключи — чтобы порядок создания не зависел от порядка таблиц.
func GenerateDDL() map[string]string {
	out := make(map[string]string, 2)

	var phaseA strings.Builder
	var phaseB strings.Builder

	for _, spec := range Specs {
		var cols []string
		for _, c := range spec.Cols {
			def := fmt.Sprintf("%s %s", sqlIdent(c.Name), c.Type)
			if c.Name == spec.PK {
				def += " primary key"
			}
			cols = append(cols, def)
		}
		fmt.Fprintf(&phaseA, "create table if not exists %s (\n  %s\n);\n",
			sqlIdent(spec.Name), strings.Join(cols, ",\n  "))

		for _, f := range spec.FKs {
			fmt.Fprintf(&phaseB,
				"alter table %s add constraint %s foreign key (%s) references %s(%s);\n",
				sqlIdent(spec.Name),
				strings.ToLower(spec.Name+"_"+f.Col+"_fk"),
				sqlIdent(f.Col), sqlIdent(f.RefTable), sqlIdent(f.RefCol))
		}
	}

	out["000_tables"] = phaseA.String()
	if phaseB.Len() > 0 {
		out["200_foreign_keys"] = phaseB.String()
	}
	return out
}

// SortedDDLKeys — стабильный порядок применения DDL.
func SortedDDLKeys(ddl map[string]string) []string {
	keys := make([]string, 0, len(ddl))
	for k := range ddl {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
