package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/basedalex/yadro-paice/pkg/paice"
	"github.com/basedalex/yadro-paice/pkg/words"
)

func main() {
	rulePath, wordPath, debug := parseArgs()

	table, err := paice.CompileFile(rulePath)
	if err != nil {
		log.Fatalln("error compiling rules:", err)
	}

	file, err := os.Open(wordPath)
	if err != nil {
		log.Fatalln("error opening word file:", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		for _, word := range words.Fields(scanner.Text()) {
			if debug {
				stem, trace := table.StemTrace(word)
				fmt.Println(stem)
				fmt.Fprintln(os.Stderr, trace.String())
				continue
			}
			fmt.Println(table.Stem(word))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalln("error reading word file:", err)
	}
}

func parseArgs() (string, string, bool) {
	var rulePath string
	var wordPath string
	var debug bool

	flag.StringVar(&rulePath, "r", "rules.txt", "path to the stemming rule file")

	flag.StringVar(&wordPath, "w", "words.txt", "path to the word list, one word per line")

	flag.BoolVar(&debug, "d", false, "set true to print the rule trace of every word to stderr")
	flag.Parse()
	return rulePath, wordPath, debug
}
