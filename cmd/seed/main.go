package main

import (
	"context"
	"database/sql"
	"flag"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayhub/internal/adapters/observability"
	redisad "stayhub/internal/adapters/redis"
	"stayhub/internal/app"
	"stayhub/internal/domain"
	"stayhub/internal/seed"
	"stayhub/internal/shared"
	mysqlrepo "stayhub/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	file := flag.String("file", "", "seed YAML file (default: the embedded seed)")
	dsn := flag.String("dsn", cfg.MySQLDSN, "MySQL DSN")
	workers := flag.Int("workers", cfg.SeedWorkers, "concurrent upserts")
	flag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if *dsn == "" {
		log.Fatal().Msg("no MySQL DSN: set MYSQL_DSN or -dsn")
	}
	if *workers < 1 {
		*workers = 1
	}

	data, err := seed.Default()
	if *file != "" {
		data, err = seed.LoadFile(*file)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("load seed failed")
	}
	log.Info().
		Str("file", *file).
		Int("workers", *workers).
		Int("properties", len(data.Properties)).
		Msg("seeding catalog")

	db, err := sql.Open("mysql", *dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}
	loader := app.NewCatalogLoader(mysqlrepo.New(db), cache)

	sem := semaphore.NewWeighted(int64(*workers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, p := range data.Properties {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(p domain.Property) {
			defer wg.Done()
			defer sem.Release(1)

			if err := loader.LoadProperty(ctx, p); err != nil {
				failed.Add(1)
				log.Warn().Str("id", p.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("id", p.ID).Msg("seed ok")
		}(p)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int32("failed", n).Msg("seeding incomplete")
	}
	log.Info().Msg("seeding completed")
}
