package sort

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type entry struct {
	name  string
	title string
	algo  Algorithm
}

var registry = []entry{
	{"bubble", "Bubble sort", Bubble{}},
	{"quick", "Quick sort", Quick{}},
	{"insertion", "Insertion sort", Insertion{}},
}

// Names returns the registered algorithm names in display order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	return names
}

// Lookup finds an algorithm by name, ignoring case and surrounding spaces.
func Lookup(name string) (Algorithm, error) {
	e, err := find(name)
	if err != nil {
		return nil, err
	}
	return e.algo, nil
}

// Title returns the display label of a registered algorithm.
func Title(name string) (string, error) {
	e, err := find(name)
	if err != nil {
		return "", err
	}
	return e.title, nil
}

func find(name string) (entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == key {
			return e, nil
		}
	}
	return entry{}, errors.Wrapf(ErrUnknownAlgorithm, "%q (want one of %s)", name, strings.Join(Names(), ", "))
}
