package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// batch-режим
	XMLPath     string `json:"xmlPath"`     // входная XML-выгрузка реле
	OutDir      string `json:"outDir"`      // папка для нормализованных CSV
	SynonymsDir string `json:"synonymsDir"` // yaml-справочники синонимов настроек

	// Postgres (пусто = без загрузки в БД)
	DBURL       string `json:"dbUrl"`
	AutoMigrate bool   `json:"autoMigrate"` // создать таблицы/FK перед загрузкой

	// сервисный режим
	Serve bool   `json:"serve"`
	Port  string `json:"port"`
}

func def() Config {
	return Config{
		XMLPath:     "input/xml/substation_13k8_protection.xml",
		OutDir:      "output/norm_csv",
		SynonymsDir: "reference/synonyms",
		DBURL:       "",
		AutoMigrate: false,
		Serve:       false,
		Port:        "8080",
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "1" || v == "true" || v == "yes" {
			return true
		}
		if v == "0" || v == "false" || v == "no" {
			return false
		}
	}
	return fallback
}

func parseBool(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "true" || s == "1" || s == "yes"
}

// LoadWithPath читает JSON по указанному пути, потом применяет ENV и флаги.
func LoadWithPath(jsonPath string) Config {
	cfg := def()

	// JSON (если файл существует)
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	// ENV overrides
	cfg.XMLPath = getenv("ZASLON_XML_PATH", cfg.XMLPath)
	cfg.OutDir = getenv("ZASLON_OUT_DIR", cfg.OutDir)
	cfg.SynonymsDir = getenv("ZASLON_SYNONYMS_DIR", cfg.SynonymsDir)
	cfg.DBURL = getenv("ZASLON_DB_URL", cfg.DBURL)
	cfg.AutoMigrate = getenvBool("ZASLON_AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.Serve = getenvBool("ZASLON_SERVE", cfg.Serve)
	cfg.Port = getenv("ZASLON_PORT", cfg.Port)

	// Flags overrides
	configPath := flag.String("config", jsonPath, "Path to config JSON")
	xmlPath := flag.String("xml", cfg.XMLPath, "Path to relay XML export")
	outDir := flag.String("out", cfg.OutDir, "Output dir for normalized CSVs")
	synDir := flag.String("synonyms", cfg.SynonymsDir, "Dir with settings synonym catalogs (yaml)")
	db := flag.String("db", cfg.DBURL, "Postgres URL (empty = CSV only)")
	auto := flag.String("auto-migrate", strconv.FormatBool(cfg.AutoMigrate), "Create tables before load (true/false)")
	serve := flag.String("serve", strconv.FormatBool(cfg.Serve), "Run HTTP service instead of batch (true/false)")
	port := flag.String("port", cfg.Port, "HTTP port (service mode)")

	flag.Parse()

	// Если через флаг передали другой конфиг — перечитаем
	if *configPath != jsonPath {
		return LoadWithPath(*configPath)
	}

	cfg.XMLPath = strings.TrimSpace(*xmlPath)
	cfg.OutDir = strings.TrimSpace(*outDir)
	cfg.SynonymsDir = strings.TrimSpace(*synDir)
	cfg.DBURL = strings.TrimSpace(*db)
	cfg.AutoMigrate = parseBool(*auto)
	cfg.Serve = parseBool(*serve)
	cfg.Port = strings.TrimSpace(*port)

	return cfg
}
