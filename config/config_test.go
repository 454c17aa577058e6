package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"DB_TYPE", "PORT", "PAGE_SIZE", "FISCAL_YEAR_START_MONTH", "MONGO_DB", "PDF_DIR"} {
		t.Setenv(k, "")
	}
	cfg := FromViper(newViper())

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.FiscalYearStartMonth != time.April {
		t.Errorf("FiscalYearStartMonth = %v, want April", cfg.FiscalYearStartMonth)
	}
	if cfg.R2.Enabled() {
		t.Errorf("R2 should be disabled without credentials")
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("DB_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("FISCAL_YEAR_START_MONTH", "1")
	t.Setenv("SECURE_STORE_KEY", "s3cret")

	cfg := FromViper(newViper())
	if cfg.DBType != "redis" || cfg.RedisAddr != "cache:6380" || cfg.SecureStoreKey != "s3cret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.PageSize != 25 || cfg.FiscalYearStartMonth != time.January {
		t.Errorf("PageSize = %d, FiscalYearStartMonth = %v", cfg.PageSize, cfg.FiscalYearStartMonth)
	}
}

func TestLoadConfig_OutOfRange(t *testing.T) {
	t.Setenv("PAGE_SIZE", "-3")
	t.Setenv("FISCAL_YEAR_START_MONTH", "13")
	cfg := FromViper(newViper())
	if cfg.PageSize != 10 || cfg.FiscalYearStartMonth != time.April {
		t.Errorf("PageSize = %d, FiscalYearStartMonth = %v", cfg.PageSize, cfg.FiscalYearStartMonth)
	}
}
