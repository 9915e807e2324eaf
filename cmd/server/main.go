package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/basedalex/yadro-paice/internal/db"
	"github.com/basedalex/yadro-paice/internal/router"
	"github.com/basedalex/yadro-paice/internal/scheduler"
	"github.com/basedalex/yadro-paice/pkg/config"
	"github.com/basedalex/yadro-paice/pkg/paice"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	configPath := parseArgs()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln("error loading config:", err)
	}

	table, err := paice.CompileFile(cfg.RulesFile)
	if err != nil {
		log.Fatalln("error compiling rules:", err)
	}

	database, err := db.NewPostgres(ctx, cfg.DSN)
	if err != nil {
		log.Fatalln("error connecting to database:", err)
	}

	go scheduler.New(ctx, cfg, nil, func(ctx context.Context) {
		if err := database.Reverse(ctx); err != nil {
			logrus.Warn(err)
		}
	})

	if err := router.NewServer(ctx, cfg, table, database); err != nil {
		log.Fatalln(err)
	}
}

func parseArgs() string {
	var configPath string

	flag.StringVar(&configPath, "c", "config.yaml", "path to config relative to executable")
	flag.Parse()
	return configPath
}
