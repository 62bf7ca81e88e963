package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config regroupe la configuration de l'application (lecture via Viper depuis l'environnement et, en option, un fichier).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Security  SecurityConfig
	Redis     RedisConfig
	Log       LogConfig
	Metier    MetierConfig
	Paginator PaginationConfig
}

// AppConfig configuration générale.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuration PostgreSQL.
// Si DatabaseURL n'est pas vide, elle est utilisée telle quelle.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString renvoie DATABASE_URL si elle est définie, sinon le DSN construit.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construit l'URL de connexion en encodant les caractères spéciaux du mot de passe.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuration des jetons.
type JWTConfig struct {
	Secret            string
	Issuer            string
	AccessExpMinutes  int
	RefreshExpireDays int
}

// AccessTTL durée de vie du jeton d'accès.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessExpMinutes) * time.Minute
}

// RefreshTTL durée de vie du jeton de rafraîchissement.
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshExpireDays) * 24 * time.Hour
}

// HTTPConfig configuration du serveur HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	RequestTimeout time.Duration
	CORSOrigins    string
}

// Addr renvoie l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SecurityConfig coût bcrypt et limitation de débit.
type SecurityConfig struct {
	BcryptRounds       int
	RateLimitPerMinute int // 0 = désactivé
}

// RedisConfig vide = limiteur et registre de jetons en mémoire.
type RedisConfig struct {
	URL string
}

// LogConfig niveau, format (json|text) et fichier optionnel.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// MetierConfig constantes réglementaires chargées au démarrage.
type MetierConfig struct {
	PaysDefaut                  string
	DeviseDefaut                string
	ConservationDocumentsAnnees int
	ReglementImputationAuto     bool
}

// PaginationConfig taille de page par défaut.
type PaginationConfig struct {
	DefaultPageSize int
}

// Load lit la configuration depuis les variables d'environnement (et, en option, .env / config.env).
// Les variables d'environnement sont prioritaires.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // absent: ignoré

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "Gesco"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gesco"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:            getString(v, "JWT_SECRET", ""),
			Issuer:            getString(v, "JWT_ISSUER", "gesco"),
			AccessExpMinutes:  getInt(v, "ACCESS_TOKEN_EXPIRE_MINUTES", 60),
			RefreshExpireDays: getInt(v, "REFRESH_TOKEN_EXPIRE_DAYS", 7),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8000),
			RequestTimeout: time.Duration(getInt(v, "REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
			CORSOrigins:    getString(v, "CORS_ORIGINS", "*"),
		},
		Security: SecurityConfig{
			BcryptRounds:       getInt(v, "BCRYPT_ROUNDS", 12),
			RateLimitPerMinute: getInt(v, "RATE_LIMIT_PER_MINUTE", 60),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getString(v, "LOG_LEVEL", "info")),
			Format: strings.ToLower(getString(v, "LOG_FORMAT", "json")),
			File:   getString(v, "LOG_FILE", ""),
		},
		Metier: MetierConfig{
			PaysDefaut:                  getString(v, "PAYS_DEFAUT", "CMR"),
			DeviseDefaut:                getString(v, "DEVISE_DEFAUT", "XAF"),
			ConservationDocumentsAnnees: getInt(v, "CONSERVATION_DOCUMENTS_ANNEES", 10),
			ReglementImputationAuto:     getBool(v, "REGLEMENT_IMPUTATION_AUTO", true),
		},
		Paginator: PaginationConfig{
			DefaultPageSize: getInt(v, "DEFAULT_PAGE_SIZE", 20),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate vérifie les bornes des paramètres sensibles.
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("config: JWT_SECRET doit contenir au moins 32 caractères")
	}
	if c.JWT.AccessExpMinutes < 1 {
		return fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTES doit être >= 1")
	}
	if c.JWT.RefreshExpireDays < 1 {
		return fmt.Errorf("config: REFRESH_TOKEN_EXPIRE_DAYS doit être >= 1")
	}
	if c.Security.BcryptRounds < 4 || c.Security.BcryptRounds > 31 {
		return fmt.Errorf("config: BCRYPT_ROUNDS doit être compris entre 4 et 31 (reçu %d)", c.Security.BcryptRounds)
	}
	if c.Security.RateLimitPerMinute < 0 {
		return fmt.Errorf("config: RATE_LIMIT_PER_MINUTE ne peut pas être négatif")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: LOG_FORMAT doit être json ou text (reçu %q)", c.Log.Format)
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT_SECONDS doit être > 0")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
