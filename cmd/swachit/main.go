package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/adityab24840/SwachItHackathon/internal/config"
	"github.com/adityab24840/SwachItHackathon/internal/server"
	"github.com/adityab24840/SwachItHackathon/internal/store"
)

func main() {
	configPath := flag.String("config", "swachit.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swachit: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swachit: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	st, err := store.Open(cfg.DatabasePath, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer st.Close()

	srv := server.New(cfg, st, sugar)

	sugar.Infow("server starting", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" || mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
