package config // package config loads application configuration from environment variables

import (
	"log"  // log is used to report configuration errors and halt execution
	"os"   // os provides access to environment variables
	"time" // durations for engine tunables

	"github.com/joho/godotenv" // optional .env file support for local development
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Durations use Go duration syntax in the
// environment (e.g. "10m", "5s").
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	JWTSecret         string // secret used to sign admin access tokens
	AccessTTLMin      int    // admin access token time-to-live in minutes
	AdminEmail        string // the single admin account's email
	AdminPasswordHash string // bcrypt hash of the admin password
	BcryptCost        int    // bcrypt cost when hashing ADMIN_PASSWORD at startup

	HoldTTL       time.Duration // how long a seat hold survives without payment
	OfferTTL      time.Duration // how long a waiting-list offer stays open
	SweepInterval time.Duration // expiry sweeper tick interval
	LogCapacity   int           // system log ring size

	DBUser string // MySQL user for the durable booking ledger (optional)
	DBPass string // MySQL password (optional)
	DBHost string // MySQL host; empty disables the durable ledger
	DBPort string // MySQL port
	DBName string // MySQL database name
}

// LedgerEnabled reports whether a durable MySQL booking ledger is
// configured.  When false, bookings are kept in memory.
func (c Config) LedgerEnabled() bool { return c.DBHost != "" }

// Load reads configuration from the environment (after loading a .env
// file if one is present).  Required variables are enforced by must()
// and missing values cause the program to exit with a fatal log
// message; engine tunables have sensible defaults.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine; the real environment wins anyway

	cfg := Config{
		Env:               getenv("APP_ENV", "dev"),
		Port:              getenv("APP_PORT", "8080"),
		JWTSecret:         must("JWT_SECRET"),
		AccessTTLMin:      atoi(getenv("ACCESS_TOKEN_TTL_MIN", "30")),
		AdminEmail:        must("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		BcryptCost:        atoi(getenv("BCRYPT_COST", "10")),
		HoldTTL:           parseDur(getenv("HOLD_TTL", "10m")),
		OfferTTL:          parseDur(getenv("OFFER_TTL", "5m")),
		SweepInterval:     parseDur(getenv("SWEEP_INTERVAL", "5s")),
		LogCapacity:       atoi(getenv("SYSTEM_LOG_CAPACITY", "100")),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            getenv("DB_PORT", "3306"),
		DBName:            os.Getenv("DB_NAME"),
	}
	if cfg.AdminPasswordHash == "" && AdminPlainPassword() == "" {
		log.Fatal("one of ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}
	return cfg
}

// AdminPlainPassword returns the plaintext admin password when the
// deployment chose not to pre-hash it.  main hashes it once at startup.
func AdminPlainPassword() string { return os.Getenv("ADMIN_PASSWORD") }

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
