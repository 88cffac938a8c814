// Package registry provides the central transformation registry. Every
// transformation is registered once at first use and shared across the CLI
// and the HTTP server.
//
// Design principles:
// - BUILD ONCE: the catalog is assembled on first Get(), not per-request
// - DRY: single source of truth for names, aliases and descriptions
// - CATEGORIZED: transformations are organized by family for listing
// - EXTENSIBLE: adding a transformation touches only the catalog
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/manglekit/mangle/pkg/rng"
)

// Family groups related transformations for listing and documentation.
type Family string

const (
	FamilyCase      Family = "case"
	FamilyEncoding  Family = "encoding"
	FamilyUnicode   Family = "unicode"
	FamilyObfuscate Family = "obfuscation"
	FamilyInjection Family = "injection"
	FamilyNoSQL     Family = "nosql"
	FamilySSTI      Family = "ssti"
	FamilyJWT       Family = "jwt"
	FamilyGraphQL   Family = "graphql"
	FamilyWeb       Family = "web"
	FamilyHTML      Family = "html"
	FamilyPhishing  Family = "phishing"
	FamilyBotDetect Family = "bot_detection"
	FamilyShell     Family = "shell"
)

// ErrUnknownTransformation is wrapped by Apply for names the registry
// cannot resolve.
var ErrUnknownTransformation = fmt.Errorf("unknown transformation")

// ApplyFunc runs a transformation against input, drawing randomness from r.
type ApplyFunc func(r *rng.Rng, input string) string

// ArgFunc runs a transformation that needs an extra selector argument.
type ArgFunc func(r *rng.Rng, input, arg string) (string, error)

// Transformation holds one registered transformation with metadata.
type Transformation struct {
	Name        string   // Canonical name, e.g. "sql-comment"
	Aliases     []string // Short spellings, e.g. "sql"
	Family      Family
	Description string   // One line for --list-modes and GET /modes
	Apply       ApplyFunc // Nil only when ApplyArg is set
	ApplyArg    ArgFunc   // Set only for selector-taking transformations
	ArgName     string    // Selector label, e.g. "framework"
	ReadsInput  bool      // False for generators that ignore their input
}

// Registry holds all transformations, resolvable by name or alias.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Transformation
	byFamily map[Family][]*Transformation
	ordered  []*Transformation
}

var (
	globalRegistry *Registry
	initOnce       sync.Once
)

// Get returns the global transformation registry (singleton).
// Thread-safe and guaranteed to be fully populated.
func Get() *Registry {
	initOnce.Do(func() {
		globalRegistry = newRegistry()
	})
	return globalRegistry
}

func newRegistry() *Registry {
	r := &Registry{
		byName:   make(map[string]*Transformation, 192),
		byFamily: make(map[Family][]*Transformation),
		ordered:  make([]*Transformation, 0, 72),
	}
	r.registerCaseTransformations()
	r.registerEncodingTransformations()
	r.registerUnicodeTransformations()
	r.registerObfuscationTransformations()
	r.registerInjectionTransformations()
	r.registerNoSQLTransformations()
	r.registerSSTITransformations()
	r.registerJWTTransformations()
	r.registerGraphQLTransformations()
	r.registerWebTransformations()
	r.registerHTMLTransformations()
	r.registerPhishingTransformations()
	r.registerBotDetectTransformations()
	r.registerShellTransformations()
	return r
}

func (r *Registry) register(t *Transformation) {
	for _, key := range append([]string{t.Name}, t.Aliases...) {
		key = strings.ToLower(key)
		if _, dup := r.byName[key]; dup {
			panic("registry: duplicate transformation name " + key)
		}
		r.byName[key] = t
	}
	r.byFamily[t.Family] = append(r.byFamily[t.Family], t)
	r.ordered = append(r.ordered, t)
}

// Resolve looks up a transformation by canonical name or alias,
// case-insensitively.
func (r *Registry) Resolve(name string) (*Transformation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Apply resolves name and runs it against input with the given source.
// Selector-taking transformations receive arg; for all others arg is
// ignored. Unresolvable names return ErrUnknownTransformation.
func (r *Registry) Apply(ra *rng.Rng, name, input, arg string) (string, error) {
	t, ok := r.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTransformation, name)
	}
	if t.ApplyArg != nil {
		return t.ApplyArg(ra, input, arg)
	}
	return t.Apply(ra, input), nil
}

// Names returns the canonical transformation names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ordered))
	for _, t := range r.ordered {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// All returns every transformation in registration order.
func (r *Registry) All() []*Transformation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Transformation, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ByFamily returns the transformations registered under a family.
// Returns an empty slice for an unknown family, never nil.
func (r *Registry) ByFamily(f Family) []*Transformation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ts, ok := r.byFamily[f]; ok {
		return ts
	}
	return []*Transformation{}
}

// Families returns the registered families in sorted order.
func (r *Registry) Families() []Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fams := make([]Family, 0, len(r.byFamily))
	for f := range r.byFamily {
		fams = append(fams, f)
	}
	sort.Slice(fams, func(i, j int) bool { return fams[i] < fams[j] })
	return fams
}

// Count returns the number of registered transformations, aliases excluded.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
