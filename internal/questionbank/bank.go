// Package questionbank holds the curated interview question pools and resolves a
// free-text technology stack and experience level into a sampled question list.
package questionbank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var embeddedBank []byte

// Pools are the questions for one bank key, split by tier.
type Pools struct {
	Fresher     []string `yaml:"fresher"`
	Experienced []string `yaml:"experienced"`
}

// Of returns the pool for tier.
func (p Pools) Of(tier Tier) []string {
	if tier == Experienced {
		return p.Experienced
	}
	return p.Fresher
}

type bankFile struct {
	Technologies map[string]Pools  `yaml:"technologies"`
	Aliases      map[string]string `yaml:"aliases"`
}

// Bank is the static, read-only question bank.
type Bank struct {
	technologies map[string]Pools
	aliases      map[string]string
}

// Default returns the bank compiled into the binary.
func Default() *Bank {
	b, err := Parse(embeddedBank)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank: %v", err))
	}
	return b
}

// Load reads a bank from a YAML file on disk.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a bank document. Keys and aliases are normalised to lowercase and
// every alias must point at a known technology.
func Parse(data []byte) (*Bank, error) {
	var raw bankFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(raw.Technologies) == 0 {
		return nil, errors.New("no technologies defined")
	}

	b := &Bank{
		technologies: make(map[string]Pools, len(raw.Technologies)),
		aliases:      make(map[string]string, len(raw.Aliases)),
	}
	for key, pools := range raw.Technologies {
		b.technologies[normalize(key)] = pools
	}
	for alias, key := range raw.Aliases {
		key = normalize(key)
		if _, ok := b.technologies[key]; !ok {
			return nil, fmt.Errorf("alias %q points at unknown technology %q", alias, key)
		}
		b.aliases[normalize(alias)] = key
	}

	return b, nil
}

// Keys lists the bank keys in alphabetical order.
func (b *Bank) Keys() []string {
	keys := make([]string, 0, len(b.technologies))
	for key := range b.technologies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Counts returns the pool sizes for key and whether the key exists.
func (b *Bank) Counts(key string) (fresher, experienced int, ok bool) {
	pools, ok := b.technologies[normalize(key)]
	if !ok {
		return 0, 0, false
	}
	return len(pools.Fresher), len(pools.Experienced), true
}

// Aliases returns a copy of the alias table.
func (b *Bank) Aliases() map[string]string {
	out := make(map[string]string, len(b.aliases))
	for alias, key := range b.aliases {
		out[alias] = key
	}
	return out
}

// Lookup maps a user-typed token onto a bank key: alias table first, then the
// lowercased token itself.
func (b *Bank) Lookup(token string) (string, bool) {
	token = normalize(token)
	if key, ok := b.aliases[token]; ok {
		return key, true
	}
	if _, ok := b.technologies[token]; ok {
		return token, true
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
