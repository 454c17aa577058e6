package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"transportledger/utils"
)

type Config struct {
	DBType         string
	PostgresURL    string
	MongoURL       string
	MongoDB        string
	RedisAddr      string
	RedisPassword  string
	Port           string
	SecureStoreKey string

	PageSize             int
	FiscalYearStartMonth time.Month
	PDFDir               string

	R2 utils.R2Config
}

// LoadConfig reads .env if present, then the environment. Every setting has
// a default so the server starts with an in-memory store and no other setup.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using system environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("db_type", "memory")
	v.SetDefault("mongo_db", "transportledger")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("port", "8080")
	v.SetDefault("page_size", 10)
	v.SetDefault("fiscal_year_start_month", 4)
	v.SetDefault("pdf_dir", "./pdfs")
	for _, k := range []string{
		"postgres_url", "mongo_url", "redis_password", "secure_store_key",
		"r2_account_id", "r2_access_key_id", "r2_secret_access_key", "r2_bucket", "r2_public_url",
	} {
		v.SetDefault(k, "")
	}
	return v
}

// FromViper builds a Config from v, falling back to defaults for values out of range.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DBType:         v.GetString("db_type"),
		PostgresURL:    v.GetString("postgres_url"),
		MongoURL:       v.GetString("mongo_url"),
		MongoDB:        v.GetString("mongo_db"),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		Port:           v.GetString("port"),
		SecureStoreKey: v.GetString("secure_store_key"),
		PageSize:       v.GetInt("page_size"),
		PDFDir:         v.GetString("pdf_dir"),
		R2: utils.R2Config{
			AccountID:       v.GetString("r2_account_id"),
			AccessKeyID:     v.GetString("r2_access_key_id"),
			SecretAccessKey: v.GetString("r2_secret_access_key"),
			Bucket:          v.GetString("r2_bucket"),
			PublicURL:       v.GetString("r2_public_url"),
		},
	}

	if cfg.PageSize <= 0 {
		log.Printf("[Config] invalid PAGE_SIZE %d, using 10", cfg.PageSize)
		cfg.PageSize = 10
	}
	month := v.GetInt("fiscal_year_start_month")
	if month < 1 || month > 12 {
		log.Printf("[Config] invalid FISCAL_YEAR_START_MONTH %d, using April", month)
		month = 4
	}
	cfg.FiscalYearStartMonth = time.Month(month)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
