// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command suffixarray builds a suffix array for a text and lets a user
// interactively search it, following original_source's App.java.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	suffixarray "github.com/octfx/suffix-array"
)

func main() {
	var (
		file      = flag.String("f", "", "read the text to index from this file instead of the positional argument")
		context   = flag.Int("context", suffixarray.DefaultConfig().ContextWidth, "context width for the keyword-in-context scanner")
		normalize = flag.Bool("normalize", false, "run input text through Unicode NFC normalization before indexing")
		dump      = flag.String("dump", "", "write SA and RANK as human-readable text to this file")
	)
	flag.Parse()

	text, err := readInput(*file, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if text == "" {
		fmt.Println("Call with '-f filename' to index a local file, or with one argument: the string to index.")
		return
	}
	if *normalize {
		text = norm.NFC.String(text)
	}

	cfg := suffixarray.Config{ContextWidth: *context}

	start := time.Now()
	sa := suffixarray.Build([]rune(text), cfg)
	elapsed := time.Since(start)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	fmt.Printf("SA created in %s for %d symbols (%d MB in use)\n", elapsed, sa.Len(), mem.Alloc/(1024*1024))

	if *dump != "" {
		if err := dumpArrays(sa, *dump); err != nil {
			fmt.Fprintln(os.Stderr, "could not write dump:", err)
		}
	}

	runInteractiveLoop(sa, text)
}

func readInput(file string, positional []string) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("could not read file %q: %w", file, err)
		}
		return string(b), nil
	}
	if len(positional) >= 1 {
		return positional[0], nil
	}
	return "", nil
}

// runInteractiveLoop reads lines from stdin, dispatching each as a query
// against the active search mode. Typing "naive" or "kwic" switches
// modes; "q" exits.
func runInteractiveLoop(sa *suffixarray.SuffixArray[rune], text string) {
	const (
		modeNaive = "naive"
		modeKWIC  = "kwic"
	)
	mode := modeKWIC

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Type a substring to search for:")
		if !scanner.Scan() {
			return
		}
		in := strings.TrimRight(scanner.Text(), "\r\n")

		switch in {
		case "q":
			return
		case modeNaive, modeKWIC:
			mode = in
			fmt.Printf("Using %q search.\n", mode)
			continue
		}

		pattern := []rune(in)
		switch mode {
		case modeNaive:
			pos, err := suffixarray.BinarySearchLocate(sa, pattern)
			if err != nil {
				fmt.Printf("Pattern %q not found.\n", in)
				continue
			}
			fmt.Printf("Found pattern %q at index %d\n", in, pos)
		case modeKWIC:
			windows := suffixarray.KeywordInContext(sa, pattern)
			if len(windows) == 0 {
				fmt.Printf("Pattern %q not found.\n", in)
				continue
			}
			for _, w := range windows {
				fmt.Println(strings.NewReplacer("\n", " ", "\r", " ").Replace(string(w.Text)))
			}
		}
	}
}

// dumpArrays writes SA and RANK as human-readable text. The format is not
// part of the interface contract (spec.md §6).
func dumpArrays(sa *suffixarray.SuffixArray[rune], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "Sorted suffixes:")
	fmt.Fprintln(w, "Rank => Suffix")
	for r := 0; r < sa.Len(); r++ {
		pos, _ := sa.SuffixAtRank(r)
		fmt.Fprintf(w, "%d: %d\n", r, pos)
	}

	fmt.Fprintln(w, "\n\nRank of Suffix (inverse SA)")
	for i := 0; i < sa.Len(); i++ {
		rank, _ := sa.RankOfSuffix(i)
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, rank)
	}
	fmt.Fprintln(w)

	return nil
}
