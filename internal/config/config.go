package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	dbHostEnvKey         = "DB_HOST"
	dbPortEnvKey         = "DB_PORT"
	dbUserEnvKey         = "DB_USER"
	dbPasswordEnvKey     = "DB_PASSWORD"
	dbNameEnvKey         = "DB_NAME"
	dbSchemaEnvKey       = "DB_SCHEMA"
	sessionSecretEnvKey  = "SESSION_SECRET"
	frontendOriginEnvKey = "FRONTEND_ORIGIN"
	sessionTTLEnvKey     = "SESSION_TTL_HOURS"
	debugRollbackEnvKey  = "DEBUG_ROLLBACK"
)

const defaultSessionTTL = 24 * time.Hour

type App struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSchema       string
	SessionSecret  string
	FrontendOrigin string
	SessionTTL     time.Duration
	DebugRollback  bool
}

func NewApp() (App, error) {
	// .env is optional, real env vars win either way
	_ = godotenv.Load()

	app := App{SessionTTL: defaultSessionTTL}

	required := []struct {
		key  string
		dest *string
	}{
		{apiPortEnvKey, &app.Port},
		{dbHostEnvKey, &app.DBHost},
		{dbPortEnvKey, &app.DBPort},
		{dbUserEnvKey, &app.DBUser},
		{dbPasswordEnvKey, &app.DBPassword},
		{dbNameEnvKey, &app.DBName},
		{dbSchemaEnvKey, &app.DBSchema},
		{sessionSecretEnvKey, &app.SessionSecret},
		{frontendOriginEnvKey, &app.FrontendOrigin},
	}

	for _, env := range required {
		value, ok := os.LookupEnv(env.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, env.key)
		}
		*env.dest = value
	}

	if ttl, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		hours, err := strconv.Atoi(ttl)
		if err != nil || hours <= 0 {
			return App{}, fmt.Errorf("%s must be a positive integer, got %q", sessionTTLEnvKey, ttl)
		}
		app.SessionTTL = time.Duration(hours) * time.Hour
	}

	if debug, ok := os.LookupEnv(debugRollbackEnvKey); ok {
		app.DebugRollback, _ = strconv.ParseBool(debug)
	}

	return app, nil
}

// DSN builds the postgres connection string, pinning the configured schema
// through search_path.
func (a App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable TimeZone=UTC",
		a.DBHost, a.DBPort, a.DBUser, a.DBPassword, a.DBName, a.DBSchema)
}
