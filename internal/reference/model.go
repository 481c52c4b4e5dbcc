package reference

// FieldSynonyms — один канонический столбец настроек и допустимые
// написания имени параметра в источнике (без учёта регистра).
type FieldSynonyms struct {
	Field string   `yaml:"field"`
	Names []string `yaml:"names"`
}

// SynonymCatalog — справочник синонимов из одного yaml-файла.
type SynonymCatalog struct {
	Name   string          `yaml:"name"`
	Fields []FieldSynonyms `yaml:"fields"`
}
