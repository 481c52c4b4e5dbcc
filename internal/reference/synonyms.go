package reference

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Канонические поля агрегированных настроек функции защиты.
const (
	FieldPickupPU        = "pickup_pu"
	FieldPickupA         = "pickup_a"
	FieldTimeDial        = "time_dial"
	FieldMinTimeSeconds  = "min_time_seconds"
	FieldThermalConstant = "thermal_constant"
	FieldFullLoadCurrent = "full_load_current"
	FieldTripClass       = "trip_class"
)

// Synonyms — резолвер "имя параметра в источнике -> каноническое поле".
type Synonyms struct {
	byName map[string]string // lower(имя) -> каноническое поле
}

// DefaultSynonyms возвращает встроенный справочник: типовые написания,
// встречающиеся в выгрузках реле разных производителей.
func DefaultSynonyms() *Synonyms {
	s := &Synonyms{byName: map[string]string{}}
	s.register(FieldPickupPU, "PickupPerUnit", "pickup_per_unit", "pickup_pu")
	s.register(FieldPickupA, "PickupAmps", "pickup_a", "pickup_current")
	s.register(FieldTimeDial, "TimeDial", "time_dial")
	s.register(FieldMinTimeSeconds, "MinTimeSeconds", "min_time_seconds", "min_time")
	s.register(FieldThermalConstant, "ThermalConstant", "thermal_constant")
	s.register(FieldFullLoadCurrent, "FullLoadCurrent", "full_load_current", "fla")
	s.register(FieldTripClass, "TripClass", "trip_class")
	return s
}

func (s *Synonyms) register(field string, names ...string) {
	for _, n := range names {
		s.byName[strings.ToLower(strings.TrimSpace(n))] = field
	}
}

// Resolve возвращает каноническое поле для имени параметра ("" если не маппится).
func (s *Synonyms) Resolve(paramName string) string {
	return s.byName[strings.ToLower(strings.TrimSpace(paramName))]
}

// LoadSynonyms читает все yaml-справочники из папки и накладывает их
// поверх встроенных дефолтов. Папки может не быть — тогда просто дефолты.
func LoadSynonyms(dir string) (*Synonyms, error) {
	s := DefaultSynonyms()
	if dir == "" {
		return s, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("synonyms dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var cat SynonymCatalog
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("synonyms %s: %w", name, err)
		}
		for _, f := range cat.Fields {
			if strings.TrimSpace(f.Field) == "" {
				continue
			}
			s.register(strings.ToLower(f.Field), f.Names...)
		}
	}
	return s, nil
}
