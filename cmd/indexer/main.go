package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/basedalex/yadro-paice/pkg/config"
	"github.com/basedalex/yadro-paice/pkg/indexer"
	"github.com/basedalex/yadro-paice/pkg/paice"
	"github.com/basedalex/yadro-paice/pkg/words"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	configPath, search, useIndex := parseArgs()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln("error loading config:", err)
	}

	table, err := paice.CompileFile(cfg.RulesFile)
	if err != nil {
		log.Fatalln("error compiling rules:", err)
	}

	if err := indexer.Index(ctx, cfg, table); err != nil {
		log.Fatal(err)
	}

	if err := indexer.Reverse(cfg); err != nil {
		log.Fatal(err)
	}

	getResults(cfg, words.New(cfg.Stemmer, table), search, useIndex)
}

func parseArgs() (string, string, bool) {
	var configPath string
	var search string
	var useIndex bool

	flag.StringVar(&configPath, "c", "config.yaml", "path to config relative to executable")

	flag.StringVar(&search, "s", "", "type string to find indexed words for")

	flag.BoolVar(&useIndex, "i", false, "set true to use the inverted index to search")
	flag.Parse()
	return configPath, search, useIndex
}

func getResults(cfg *config.Config, stemmer words.Stemmer, s string, useIndex bool) {
	if s == "" {
		return
	}

	log.Println("waiting for results... for ", s)
	for i := 0; i < 5; i++ {
		var sm map[string][]string
		var err error

		if useIndex {
			sm, err = indexer.InvertSearch(cfg, stemmer, s)
		} else {
			sm, err = indexer.LinearSearch(cfg, stemmer, s)
		}
		if err != nil {
			log.Println(err)
		}

		if len(sm) != 0 {
			log.Println(sm)
			return
		}
		time.Sleep(time.Second)
	}
}
