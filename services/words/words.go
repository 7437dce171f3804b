package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/HenryKun55/multiwordle/services/wordle"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	TargetsFile = "target_words.txt"
	ValidFile   = "valid_words.txt"
)

//go:embed data/target_words.txt
var embeddedTargets string

//go:embed data/valid_words.txt
var embeddedValid string

var fiveLetters = regexp.MustCompile(`^[A-Z]{5}$`)

var ErrNoTargets = errors.New("target word list is empty")

// Dictionary holds the curated targets and every guessable word.
// It is read-only after construction.
type Dictionary struct {
	targets []string
	allowed map[string]struct{}
}

type Stats struct {
	Targets int `json:"targets"`
	Allowed int `json:"allowed"`
}

// Load reads both lists from dir, or uses the embedded lists when dir is empty
func Load(dir string) (*Dictionary, error) {
	if dir == "" {
		return NewDictionary(parseLines(embeddedTargets), parseLines(embeddedValid))
	}

	targets, err := readWordFile(filepath.Join(dir, TargetsFile))
	if err != nil {
		return nil, err
	}
	valid, err := readWordFile(filepath.Join(dir, ValidFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return NewDictionary(targets, valid)
}

// NewDictionary normalizes both lists and drops anything that is not five
// plain letters once accents are removed. Targets are always guessable.
func NewDictionary(targets, valid []string) (*Dictionary, error) {
	cleanTargets := clean(targets, "target")
	if len(cleanTargets) == 0 {
		return nil, ErrNoTargets
	}
	cleanValid := clean(valid, "valid")

	all := lo.Uniq(append(append([]string{}, cleanTargets...), cleanValid...))
	d := &Dictionary{
		targets: cleanTargets,
		allowed: lo.Associate(all, func(w string) (string, struct{}) {
			return w, struct{}{}
		}),
	}
	log.Info().Int("targets", len(d.targets)).Int("allowed", len(d.allowed)).Msg("word lists loaded")
	return d, nil
}

func clean(list []string, kind string) []string {
	normalized := lo.Map(list, func(w string, _ int) string {
		return wordle.Normalize(w)
	})
	kept := lo.Filter(normalized, func(w string, _ int) bool {
		if fiveLetters.MatchString(w) {
			return true
		}
		log.Warn().Str("list", kind).Str("word", w).Msg("skipping word that is not five letters")
		return false
	})
	return lo.Uniq(kept)
}

// RandomTarget draws a target uniformly at random
func (d *Dictionary) RandomTarget() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.targets))))
	if err != nil {
		return "", fmt.Errorf("drawing target word: %w", err)
	}
	return d.targets[n.Int64()], nil
}

func (d *Dictionary) IsAllowed(word string) bool {
	_, ok := d.allowed[wordle.Normalize(word)]
	return ok
}

func (d *Dictionary) IsTarget(word string) bool {
	return lo.Contains(d.targets, wordle.Normalize(word))
}

func (d *Dictionary) Stats() Stats {
	return Stats{Targets: len(d.targets), Allowed: len(d.allowed)}
}

func readWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseLines(string(data)), nil
}

func parseLines(content string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out
}
