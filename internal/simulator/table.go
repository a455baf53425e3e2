package simulator

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"brainball/api/internal/common/fsutil"
)

// Entry is one animal plus the keywords that select it. The first keyword is
// the animal's own name and scores full confidence; the rest are aliases.
type Entry struct {
	Animal   string   `yaml:"animal"`
	Keywords []string `yaml:"keywords"`
}

// Table is an ordered keyword table. Order matters: when a text matches
// keywords under more than one animal, the earliest entry wins.
type Table []Entry

// DefaultTable returns the built-in table, matching the animal set the
// production inference service recognizes.
func DefaultTable() Table {
	return Table{
		{Animal: "cow", Keywords: []string{"cow", "cattle", "bovine", "moo", "mooing"}},
		{Animal: "pig", Keywords: []string{"pig", "swine", "hog", "oink", "oinking", "snort"}},
		{Animal: "chicken", Keywords: []string{"chicken", "hen", "rooster", "cluck", "clucking", "bawk"}},
		{Animal: "sheep", Keywords: []string{"sheep", "lamb", "ewe", "ram", "baa", "baaing", "bleat"}},
		{Animal: "horse", Keywords: []string{"horse", "pony", "mare", "stallion", "neigh", "whinny"}},
		{Animal: "duck", Keywords: []string{"duck", "drake", "quack", "quacking"}},
		{Animal: "goat", Keywords: []string{"goat", "kid", "bleat", "bleating"}},
		{Animal: "dog", Keywords: []string{"dog", "puppy", "pup", "woof", "bark", "barking"}},
		{Animal: "cat", Keywords: []string{"cat", "kitten", "kitty", "meow", "meowing", "purr"}},
	}
}

// LoadTable reads a keyword table from a YAML file:
//
//	- animal: cow
//	  keywords: [cow, cattle, moo]
//
// Keywords are lower-cased on load and a leading '~' in path is expanded.
// Entries without an animal name or without keywords are rejected.
func LoadTable(path string) (Table, error) {
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("keyword table %s is empty", path)
	}
	for i := range t {
		if t[i].Animal == "" {
			return nil, fmt.Errorf("keyword table entry %d has no animal", i)
		}
		if len(t[i].Keywords) == 0 {
			return nil, fmt.Errorf("animal %q has no keywords", t[i].Animal)
		}
		for j, kw := range t[i].Keywords {
			t[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	return t, nil
}
