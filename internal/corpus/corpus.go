// Package corpus loads word corpora and samples game words from them.
package corpus

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
)

//go:embed data/*.txt
var builtins embed.FS

// SampleSize is the number of words drawn for one game session.
const SampleSize = 1000

// Names returns the sorted names of the built-in corpora.
func Names() ([]string, error) {
	entries, err := builtins.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in corpora: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

// Load resolves a corpus selector to a word list. A selector matching a
// built-in corpus name loads the embedded list; anything else is treated
// as a literal file path.
func Load(selector string) ([]string, error) {
	if file, err := builtins.Open("data/" + selector + ".txt"); err == nil {
		defer func() {
			if cerr := file.Close(); cerr != nil {
				// Best-effort close for embedded corpus.
				_ = cerr
			}
		}()
		return parse(file)
	}

	file, err := os.Open(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()
	return parse(file)
}

func parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return words, nil
}

// Sample draws n words uniformly with replacement from the corpus.
func Sample(words []string, n int, rnd *rand.Rand) []string {
	sample := make([]string, n)
	for i := range sample {
		sample[i] = words[rnd.Intn(len(words))]
	}
	return sample
}
