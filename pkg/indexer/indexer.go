package indexer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/basedalex/yadro-paice/pkg/config"
	"github.com/basedalex/yadro-paice/pkg/database"
	"github.com/basedalex/yadro-paice/pkg/paice"
	"github.com/basedalex/yadro-paice/pkg/words"
)

type result struct {
	word  string
	entry database.Entry
}

// Index reads the word list at cfg.WordsFile and stems every word with
// cfg.Parallel workers sharing the one compiled table. The word -> stem
// index, including the rules each stemming applied, is written to the
// JSON database file.
func Index(ctx context.Context, cfg *config.Config, table *paice.Table) error {
	file, err := os.Open(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("cannot open word file: %w", err)
	}
	defer file.Close()

	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	jobs := make(chan string)
	results := make(chan result, parallel)

	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(jobs, results, table)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make(chan map[string]database.Entry)
	go func() {
		index := make(map[string]database.Entry)
		for r := range results {
			index[r.word] = r.entry
		}
		collected <- index
	}()

	scanner := bufio.NewScanner(file)
loop:
	for scanner.Scan() {
		for _, word := range words.Fields(scanner.Text()) {
			select {
			case jobs <- word:
			case <-ctx.Done():
				break loop
			}
		}
	}
	close(jobs)

	// always drain the collector, even when the scan failed
	index := <-collected

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read word file: %w", err)
	}

	log.Infof("indexed %d words", len(index))

	return database.WriteJSON(index, cfg)
}

func worker(jobs <-chan string, results chan<- result, table *paice.Table) {
	for word := range jobs {
		stem, trace := table.StemTrace(word)

		entry := database.Entry{Stem: stem}
		for _, step := range trace.Steps {
			entry.Rules = append(entry.Rules, step.Label)
		}

		results <- result{word: word, entry: entry}
	}
}

// Reverse rebuilds the inverted stem -> words index from the word
// index and writes it to cfg.IndexFile.
func Reverse(cfg *config.Config) error {
	index, err := database.ReadJSON(cfg)
	if err != nil {
		return err
	}

	inverted := make(map[string][]string)
	for word, entry := range index {
		inverted[entry.Stem] = append(inverted[entry.Stem], word)
	}
	for _, ws := range inverted {
		sort.Strings(ws)
	}

	return database.WriteInverted(inverted, cfg)
}

// LinearSearch stems the query and walks the whole word index looking
// for words that reduce to the same stems.
func LinearSearch(cfg *config.Config, stemmer words.Stemmer, s string) (map[string][]string, error) {
	index, err := database.ReadJSON(cfg)
	if err != nil {
		return nil, err
	}

	smap := make(map[string][]string)
	for _, stem := range words.Normalize(s, stemmer) {
		smap[stem] = nil
	}

	for word, entry := range index {
		if _, ok := smap[entry.Stem]; ok {
			smap[entry.Stem] = append(smap[entry.Stem], word)
		}
	}

	return smap, nil
}

// InvertSearch answers the same query from the inverted index built by
// Reverse.
func InvertSearch(cfg *config.Config, stemmer words.Stemmer, s string) (map[string][]string, error) {
	inverted, err := database.ReadInverted(cfg)
	if err != nil {
		return nil, err
	}

	res := make(map[string][]string)
	for _, stem := range words.Normalize(s, stemmer) {
		if ws, ok := inverted[stem]; ok {
			res[stem] = ws
		}
	}

	return res, nil
}
