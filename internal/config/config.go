package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
	}
}

// FareTable maps a coach type (fare class) to its per-seat price. It is
// plain configuration injected into the handlers so that operators can
// reprice classes without touching allocation logic.
type FareTable map[string]float64

// defaultFares mirrors the prices the booking desk currently charges per
// coach class. Used when FARE_TABLE is not set.
var defaultFares = FareTable{
	"AC_Cabin": 2500,
	"AC_Chair": 1200,
	"Snigdha":  800,
	"Shovon":   400,
}

// defaultFarePrice is charged for coach types absent from the table.
const defaultFarePrice = 500

// LoadFareTable parses the FARE_TABLE environment variable, a comma
// separated list of Class=Price pairs (e.g. "Shovon=400,Snigdha=800").
// Malformed pairs are skipped with a warning. When the variable is unset
// the built-in defaults are returned.
func LoadFareTable() FareTable {
	raw := os.Getenv("FARE_TABLE")
	if strings.TrimSpace(raw) == "" {
		out := make(FareTable, len(defaultFares))
		for k, v := range defaultFares {
			out[k] = v
		}
		return out
	}
	out := FareTable{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			log.Printf("config: skipping malformed FARE_TABLE entry %q", pair)
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || price < 0 {
			log.Printf("config: skipping malformed FARE_TABLE price %q", pair)
			continue
		}
		out[strings.TrimSpace(key)] = price
	}
	return out
}

// Price returns the per-seat price for a coach type, falling back to the
// default price for unknown classes.
func (t FareTable) Price(coachType string) float64 {
	if p, ok := t[coachType]; ok {
		return p
	}
	return defaultFarePrice
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
