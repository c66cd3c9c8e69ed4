package config

import (
	"log"
	"os"
	"strconv"

	"backend/models"
	"backend/storage"

	"github.com/joho/godotenv"
)

// LedgerStore is the blob store the ledger persists through, selected by
// STORE_BACKEND (file | postgres).
var LedgerStore storage.Store

const ledgerBlobName = "nutrition-ledger"

func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	backend := os.Getenv("STORE_BACKEND")
	switch backend {
	case "", "file":
		path := os.Getenv("LEDGER_PATH")
		if path == "" {
			path = "data/ledger.json"
		}
		store, err := storage.NewFileStore(path)
		if err != nil {
			log.Fatalf("Failed to open ledger file store: %v", err)
		}
		LedgerStore = store
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatalf("STORE_BACKEND=postgres requires DATABASE_URL")
		}
		store, err := storage.NewSQLStore(dsn, ledgerBlobName)
		if err != nil {
			log.Fatalf("Failed to open ledger database store: %v", err)
		}
		LedgerStore = store
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want file or postgres)", backend)
	}
}

// Targets returns the daily macro targets, the fixed defaults unless
// overridden via env.
func Targets() models.DailyTargets {
	t := models.DefaultTargets
	overrideFloat(&t.Calories, "TARGET_CALORIES")
	overrideFloat(&t.Protein, "TARGET_PROTEIN")
	overrideFloat(&t.Carbs, "TARGET_CARBS")
	overrideFloat(&t.Fat, "TARGET_FAT")
	return t
}

// AuthEnabled reports whether the instance requires a login; auth is on
// whenever an instance password is configured.
func AuthEnabled() bool {
	return os.Getenv("AUTH_PASSWORD") != ""
}

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

func overrideFloat(dst *float64, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		log.Printf("ignoring %s=%q: not a positive number", key, raw)
		return
	}
	*dst = v
}
