package main

import (
	"flag"
	"log"

	"csms_backend/internals/configs"
	database "csms_backend/internals/databases"
	"csms_backend/internals/seeds"
)

func main() {
	dataDir := flag.String("data", seeds.DefaultDataDir, "directory with seed JSON files")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("[FATAL] config: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if err := seeds.RunAllSeeds(db, *dataDir); err != nil {
		log.Fatalf("❌ seed gagal: %v", err)
	}
	log.Println("✅ seed selesai")
}
