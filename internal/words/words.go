// internal/words/words.go
//
// Dictionary management for the game engine and strategies.
//
// Responsibilities:
//   - Build an immutable Dictionary (a set of fixed-length words) from a list.
//   - Load word lists from files: a JSON array of strings, or one word per line.
//   - Fall back to the embedded default list from the assets package.
//
// Constraints:
//   • Words are normalized to lowercase and must be alphabetic a–z.
//   • Every word has the dictionary's word length; other entries are skipped.
//   • Duplicates collapse; Words() iterates in sorted order for reproducibility.

package words

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/random"
)

// DefaultLength is the classic Wordle word length.
const DefaultLength = 5

// ErrEmptyDictionary is returned when no usable word survives loading.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Dictionary is an immutable set of same-length words. It is safe for
// concurrent reads.
type Dictionary struct {
	length int
	words  []string            // sorted
	set    map[string]struct{} // membership
}

// New builds a Dictionary of words with the given length. Entries are trimmed
// and lowercased; entries that are not length letters a–z are dropped.
func New(list []string, length int) (*Dictionary, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", length)
	}
	set := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := normalize(raw)
		if len(w) == length && isAlpha(w) {
			set[w] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil, ErrEmptyDictionary
	}
	sorted := make([]string, 0, len(set))
	for w := range set {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return &Dictionary{length: length, words: sorted, set: set}, nil
}

// MustNew is New for fixed word lists known to be valid, such as test fixtures.
func MustNew(list []string, length int) *Dictionary {
	d, err := New(list, length)
	if err != nil {
		panic(err)
	}
	return d
}

// Load reads a dictionary file. Files ending in .json hold a JSON array of
// strings; anything else is read one word per line, skipping blank lines and
// lines starting with '#'.
func Load(path string, length int) (*Dictionary, error) {
	var (
		list []string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		list, err = readJSONFile(path)
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", path, err)
	}
	return New(list, length)
}

// Default builds a dictionary from the embedded word list.
func Default(length int) (*Dictionary, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return New(list, length)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// readJSONFile loads a JSON array of words.
func readJSONFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is in the dictionary. w is normalized first.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[normalize(w)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// WordLength returns the shared length of every word.
func (d *Dictionary) WordLength() int { return d.length }

// Words returns a sorted copy of the words. Callers own the result.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// At returns the i-th word in sorted order.
func (d *Dictionary) At(i int) string { return d.words[i] }

// Random returns a uniformly chosen word.
func (d *Dictionary) Random(rnd random.Source) string {
	return d.words[rnd.Intn(len(d.words))]
}
