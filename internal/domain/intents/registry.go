package intents

import (
	"fmt"
	"sort"
)

// Registry is the validated bidirectional mapping between intent keys and
// their candidate label descriptions. Built once at startup; duplicate
// descriptions are a configuration error because the reverse mapping would
// be ambiguous.
type Registry struct {
	byIntent map[Intent]string
	byLabel  map[string]Intent
	labels   []string
}

// NewRegistry builds a registry from a schema, enforcing that the mapping
// is bijective.
func NewRegistry(schema map[Intent]string) (*Registry, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("intent schema is empty")
	}

	r := &Registry{
		byIntent: make(map[Intent]string, len(schema)),
		byLabel:  make(map[string]Intent, len(schema)),
		labels:   make([]string, 0, len(schema)),
	}

	for intent, label := range schema {
		if label == "" {
			return nil, fmt.Errorf("intent %q has an empty description", intent)
		}
		if existing, ok := r.byLabel[label]; ok {
			return nil, fmt.Errorf("duplicate description %q for intents %q and %q", label, existing, intent)
		}
		r.byIntent[intent] = label
		r.byLabel[label] = intent
		r.labels = append(r.labels, label)
	}

	// Stable label order keeps oracle requests and cache keys deterministic.
	sort.Strings(r.labels)

	return r, nil
}

// MustNewRegistry panics on an invalid schema. Intended for the static
// default schema at process start.
func MustNewRegistry(schema map[Intent]string) *Registry {
	r, err := NewRegistry(schema)
	if err != nil {
		panic(err)
	}
	return r
}

// Labels returns the candidate label set in stable order
func (r *Registry) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// IntentFor maps a candidate label back to its intent key
func (r *Registry) IntentFor(label string) (Intent, bool) {
	intent, ok := r.byLabel[label]
	return intent, ok
}

// Description returns the candidate label for an intent key
func (r *Registry) Description(intent Intent) (string, bool) {
	label, ok := r.byIntent[intent]
	return label, ok
}

// Len returns the number of registered intents
func (r *Registry) Len() int {
	return len(r.byIntent)
}
