package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "MYSQL_DSN", "REDIS_ADDR", "CACHE_TTL_SECONDS", "CLIENT_RPS", "SEED_WORKERS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.HTTPAddr != ":8080" || c.MySQLDSN != "" || c.RedisAddr != "" {
		t.Fatalf("cfg=%+v", c)
	}
	if c.CacheTTL != 900*time.Second || c.ClientRPS != 10 || c.SeedWorkers != 4 {
		t.Fatalf("cfg=%+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("SEED_WORKERS", "0")
	t.Setenv("CLIENT_RPS", "abc")
	c := Load()
	if c.HTTPAddr != ":9999" || c.CacheTTL != time.Minute {
		t.Fatalf("cfg=%+v", c)
	}
	if c.SeedWorkers != 1 {
		t.Fatalf("workers=%d", c.SeedWorkers)
	}
	if c.ClientRPS != 10 {
		t.Fatalf("rps=%d", c.ClientRPS)
	}
}
