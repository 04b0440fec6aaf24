package testhelpers

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// TestOptions retourne les paramètres de connexion de la base de test
func TestOptions() sharedinfra.DBOptions {
	// Charger les variables d'environnement
	_ = godotenv.Load("../../../.env")

	return sharedinfra.DBOptions{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "ecomdash"),
		Password: getEnv("DB_PASSWORD", "ecomdash"),
		Name:     getEnv("DB_NAME", "ecomdash_test"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// SetupTestDB initialise une connexion à la base de données de test, ou skip si absente
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := sharedinfra.OpenDatabase(ctx, TestOptions())
	if err != nil {
		tb.Skip("Database not available:", err)
	}
	tb.Cleanup(func() { _ = db.Close() })

	return db
}

// SkipIfNoDatabase skip le test/benchmark si la DB n'est pas disponible
func SkipIfNoDatabase(tb testing.TB) {
	tb.Helper()
	_ = SetupTestDB(tb)
}

// getEnv récupère une variable d'environnement avec fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
