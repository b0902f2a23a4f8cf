// internal/words/words.go
//
// Word list loading for the game engine and the simulation driver.
//
// Responsibilities:
//   - Parse dictionaries from "<word> <frequency>" lines into an ordered,
//     de-duplicated set with fast membership lookups.
//   - Parse answer lists from whitespace-delimited tokens.
//   - Ship small embedded defaults so the binary runs with no files
//     configured.
//
// Formats:
//   - dictionary: one entry per line, a 5-letter word optionally followed by
//     an occurrence count. Lines that do not yield a valid word are skipped;
//     a missing or malformed count is treated as zero.
//   - answers: whitespace-separated 5-letter words; any invalid token is an
//     error, since simulating a malformed answer would be meaningless.
//
// Constraints:
//   - Words are normalized to lowercase and must be 5 ASCII letters a-z.
//   - A Dictionary is immutable once built; lookups are read-only, so a
//     single Dictionary may be shared across concurrently running games.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const wordLen = 5

// --- embedded small defaults (keep the binary runnable with no files) ---

//go:embed default_dictionary.txt
var embeddedDictionary string

//go:embed default_answers.txt
var embeddedAnswers string

// Dictionary is an immutable set of allowed guess words, ordered by
// descending frequency.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// Parse reads "<word> <frequency>" lines from r and builds a Dictionary.
// The first occurrence of a word wins; later duplicates are ignored.
// Returns an error if no valid words remain.
func Parse(r io.Reader) (*Dictionary, error) {
	type entry struct {
		word  string
		count uint64
	}
	var entries []entry
	set := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		w := strings.ToLower(fields[0])
		if len(w) != wordLen || !isAlpha(w) {
			continue
		}
		if _, ok := set[w]; ok {
			continue
		}
		var count uint64
		if len(fields) > 1 {
			count, _ = strconv.ParseUint(fields[1], 10, 64)
		}
		set[w] = struct{}{}
		entries = append(entries, entry{word: w, count: count})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("words: dictionary is empty")
	}

	// Most frequent first; ties keep input order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.word
	}
	return &Dictionary{words: words, set: set}, nil
}

// Load parses the dictionary file at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded dictionary. The embedded data is compiled in
// and known-good, so a parse failure here is a build defect.
func Default() *Dictionary {
	d, err := Parse(strings.NewReader(embeddedDictionary))
	if err != nil {
		panic("words: embedded dictionary is invalid: " + err.Error())
	}
	return d
}

// Contains reports whether w is an allowed guess.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the word list, most frequent first.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// ParseAnswers reads whitespace-delimited answer tokens from r.
// Every token must be a valid 5-letter lowercase word.
func ParseAnswers(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(string(data))
	if len(tokens) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		w := strings.ToLower(tok)
		if len(w) != wordLen || !isAlpha(w) {
			return nil, fmt.Errorf("words: invalid answer %q", tok)
		}
		out = append(out, w)
	}
	return out, nil
}

// LoadAnswers parses the answers file at path.
func LoadAnswers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseAnswers(f)
}

// DefaultAnswers returns the embedded answers list.
func DefaultAnswers() []string {
	answers, err := ParseAnswers(strings.NewReader(embeddedAnswers))
	if err != nil {
		panic("words: embedded answers are invalid: " + err.Error())
	}
	return answers
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
