package main

import (
	"fmt"
	"log"

	"zaslon/internal/api"
	"zaslon/internal/config"
	"zaslon/internal/csvout"
	"zaslon/internal/norm"
	"zaslon/internal/pg"
	"zaslon/internal/reference"
	"zaslon/internal/xmltree"
)

func main() {
	cfg := config.LoadWithPath("zaslon.json")

	// справочник синонимов: встроенные дефолты + yaml поверх
	syn, err := reference.LoadSynonyms(cfg.SynonymsDir)
	if err != nil {
		log.Fatalf("Ошибка загрузки справочника синонимов: %v", err)
	}

	// сервисный режим: нормализация по HTTP, без батча
	if cfg.Serve {
		fmt.Printf("Стартуем сервис Zaslon на :%s...\n", cfg.Port)
		api.RunServer(":"+cfg.Port, syn)
		return
	}

	// 1. Загружаем XML-выгрузку (namespace'ы снимаются на границе)
	doc, err := xmltree.LoadFile(cfg.XMLPath)
	if err != nil {
		log.Fatalf("Ошибка чтения XML: %v", err)
	}

	// 2. Нормализация: один проход, девять таблиц
	res, err := norm.Normalize(doc, syn)
	if err != nil {
		log.Fatalf("Ошибка нормализации: %v", err)
	}
	fmt.Printf("Прогон %s: таблиц %d, диагностик %d\n", res.RunID, len(res.Tables), len(res.Diags.Items))
	for _, d := range res.Diags.Items {
		log.Printf("диагностика [%s/%s]: %s", d.RelayID, d.Block, d.Message)
	}

	// 3. CSV
	if err := csvout.WriteAll(cfg.OutDir, res); err != nil {
		log.Fatalf("Ошибка записи CSV: %v", err)
	}

	// 4. Загрузка в Postgres (опционально)
	if cfg.DBURL == "" {
		return
	}
	db, err := pg.Open(cfg.DBURL)
	if err != nil {
		log.Fatalf("Ошибка подключения к Postgres: %v", err)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := pg.EnsureSchema(db); err != nil {
			log.Fatalf("Ошибка создания схемы: %v", err)
		}
	}
	if err := pg.LoadAll(db, res); err != nil {
		log.Fatalf("Ошибка загрузки в БД: %v", err)
	}
	fmt.Println("Загрузка в БД завершена.")
}
