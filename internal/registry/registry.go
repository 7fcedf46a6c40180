// =============================================================================
// Barcode Transaction Processor - Product Registry
// =============================================================================
//
// The registry maps 4-character product codes to descriptions. It is loaded
// once at startup from the product store and passed explicitly to every
// operation that validates product codes.
//
// PERSISTENCE:
//   - The store is a single mapping literal (see internal/literal)
//   - Every successful Add rewrites the whole store
//   - There is one writer per process; no locking is done
//
// =============================================================================

package registry

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/barcode-processor/internal/literal"
	"github.com/ginjaninja78/barcode-processor/internal/validation"
)

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is the in-memory product code registry.
type Registry struct {
	// path is the store file. Empty for registries that are never persisted.
	path string

	// codes keeps insertion order for listing and rewriting the store.
	codes []string

	descriptions map[string]string
}

// New creates a registry from entries without a backing store.
// Later entries with an existing code replace the description.
func New(entries ...literal.Entry) *Registry {
	r := &Registry{
		descriptions: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		r.put(e.Key, e.Value)
	}
	return r
}

// Load reads the product store at path.
//
// RETURNS:
//   - The registry, bound to path for later writes.
//   - A *validation.ParseError if the store is malformed.
//   - The read error if the file cannot be read.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product store: %w", err)
	}

	entries, err := literal.Decode(data)
	if err != nil {
		return nil, &validation.ParseError{Source: path, Err: err}
	}

	r := New(entries...)
	r.path = path
	return r, nil
}

// =============================================================================
// LOOKUPS
// =============================================================================

// Contains reports whether code is registered. The match is case-sensitive.
func (r *Registry) Contains(code string) bool {
	_, ok := r.descriptions[code]
	return ok
}

// Lookup returns the description for code.
func (r *Registry) Lookup(code string) (string, bool) {
	d, ok := r.descriptions[code]
	return d, ok
}

// Codes returns the registered codes in insertion order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.codes))
	copy(codes, r.codes)
	return codes
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	return len(r.codes)
}

// Path returns the backing store path, or "" for in-memory registries.
func (r *Registry) Path() string {
	return r.path
}

// Entries returns the registry contents in insertion order.
func (r *Registry) Entries() []literal.Entry {
	entries := make([]literal.Entry, len(r.codes))
	for i, code := range r.codes {
		entries[i] = literal.Entry{Key: code, Value: r.descriptions[code]}
	}
	return entries
}

// =============================================================================
// MUTATION
// =============================================================================

// Add registers a new product code and rewrites the store.
//
// PARAMETERS:
//   - code: The product code. It is upper-cased before use.
//   - description: The human-readable description.
//
// RETURNS:
//   - The canonical (upper-cased) code.
//   - A *validation.ValidationError for a missing code, a code that is not
//     4 characters, a duplicate code or a missing description, checked in
//     that order.
//   - A write error if the store cannot be rewritten. The in-memory entry
//     is kept in that case.
func (r *Registry) Add(code, description string) (string, error) {
	upper, err := validation.NormalizeProductCode(code)
	if err != nil {
		return "", err
	}

	if r.Contains(upper) {
		return "", validation.NewValidationError(validation.RuleDuplicate, "product code", upper,
			fmt.Sprintf("Duplicate product code %s", upper))
	}

	if description == "" {
		return "", validation.NewValidationError(validation.RuleMissingDescription, "description", "",
			fmt.Sprintf("No description for product code %s specified", upper))
	}

	r.put(upper, description)

	if err := r.Save(); err != nil {
		return upper, err
	}
	return upper, nil
}

// Save rewrites the whole store with the current contents.
// Registries without a backing store are left untouched.
func (r *Registry) Save() error {
	if r.path == "" {
		return nil
	}
	if err := os.WriteFile(r.path, literal.Encode(r.Entries()), 0644); err != nil {
		return fmt.Errorf("failed to write product store: %w", err)
	}
	return nil
}

func (r *Registry) put(code, description string) {
	if _, exists := r.descriptions[code]; !exists {
		r.codes = append(r.codes, code)
	}
	r.descriptions[code] = description
}
