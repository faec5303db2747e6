package sorting

import (
	"fmt"
	"strings"
)

// Kind identifies a sorting algorithm variant
type Kind int

const (
	KindBubble Kind = iota
	KindSelection
	KindBogo
	KindMerge
)

type kindInfo struct {
	key         string
	displayName string
	supported   bool
}

var kinds = map[Kind]kindInfo{
	KindBubble:    {key: "bubble", displayName: "bubble sort", supported: true},
	KindSelection: {key: "selection", displayName: "selection sort", supported: true},
	KindBogo:      {key: "bogo", displayName: "bogo sort", supported: true},
	KindMerge:     {key: "merge", displayName: "merge sort", supported: false},
}

// Kinds returns every known algorithm in menu order
func Kinds() []Kind {
	return []Kind{KindBubble, KindSelection, KindBogo, KindMerge}
}

// SupportedKinds returns the algorithms that can be run
func SupportedKinds() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if k.Supported() {
			out = append(out, k)
		}
	}
	return out
}

// String returns the config/flag key of the kind
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.key
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// DisplayName returns the human readable algorithm name
func (k Kind) DisplayName() string {
	if info, ok := kinds[k]; ok {
		return info.displayName
	}
	return k.String()
}

// Supported reports whether a stepper exists for the kind
func (k Kind) Supported() bool {
	return kinds[k].supported
}

// ParseKind parses a config/flag key such as "bubble" or "bubble-sort"
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "sort"), "-")
	key = strings.TrimSpace(key)
	for _, k := range Kinds() {
		if kinds[k].key == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownAlgorithm, s, strings.Join(kindKeys(), ", "))
}

func kindKeys() []string {
	keys := make([]string, 0, len(kinds))
	for _, k := range Kinds() {
		keys = append(keys, k.String())
	}
	return keys
}
