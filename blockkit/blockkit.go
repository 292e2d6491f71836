package blockkit

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fields is the insertion-ordered mapping every node resolves into.
// Optional fields are set only when present, so marshalling a Fields value
// yields sparse JSON with keys in the order they were added.
type Fields = orderedmap.OrderedMap[string, any]

func newFields() *Fields { return orderedmap.New[string, any]() }

// Resolver is the uniform serialization contract shared by text objects,
// elements, blocks, views and modal responses.
type Resolver interface {
	// Resolve converts the node into its canonical wire representation.
	// It is pure: the node is never mutated and repeated calls produce
	// structurally identical output.
	Resolve() (*Fields, error)
}

// ErrInvalidUsage tags every construction- or resolution-time validation
// failure in this package. Match with errors.Is.
var ErrInvalidUsage = errors.New("invalid usage")

func usageErrf(format string, args ...any) error {
	return fmt.Errorf("blockkit: %s: %w", fmt.Sprintf(format, args...), ErrInvalidUsage)
}

// setResolved resolves r and stores the result under key.
func setResolved(f *Fields, key string, r Resolver) error {
	sub, err := r.Resolve()
	if err != nil {
		return err
	}
	f.Set(key, sub)
	return nil
}

// Render resolves r and encodes the result as the canonical JSON document
// ready to hand to an HTTP client.
func Render(r Resolver) ([]byte, error) {
	f, err := r.Resolve()
	if err != nil {
		return nil, err
	}
	return json.Marshal(f)
}

// RenderIndent is Render with indented output, for logs and debugging.
func RenderIndent(r Resolver, prefix, indent string) ([]byte, error) {
	f, err := r.Resolve()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(f, prefix, indent)
}

// newBlockID supplies identity tokens for blocks constructed without an
// explicit block_id.
var newBlockID = uuid.NewString

// SetBlockIDGenerator replaces the source of generated block IDs and returns
// a func restoring the previous one. Intended for deterministic tests; the
// default source is uuid.NewString.
func SetBlockIDGenerator(gen func() string) (restore func()) {
	prev := newBlockID
	newBlockID = gen
	return func() { newBlockID = prev }
}
