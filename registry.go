// registry.go — class-level state for error kinds: the defaultSafe table and codecs.
//
// Every Kind belongs to exactly one Registry. The registry holds what the
// kind "class" shares across all of its instances:
//   - defaultSafe, set by Safe / MarkSafe / SetDefaultSafe at definition time
//   - the serialization codec, set by Serializable / RegisterCodec
//
// Lookups resolve through the parent chain: the nearest kind with an explicit
// entry wins; with no entry anywhere the answer is the zero value (unsafe, no codec).
//
// Writes are expected during package init; reads happen at every construction.
// A RWMutex keeps late registrations race-free without slowing the read path much.
package stderror

import "sync"

// Registry maps kinds to their class-level attributes.
type Registry struct {
	mu     sync.RWMutex
	safe   map[*Kind]bool
	codecs map[*Kind]Codec
	byName map[string]*Kind
}

// NewRegistry returns an empty registry. Most programs use Default().
func NewRegistry() *Registry {
	return &Registry{
		safe:   make(map[*Kind]bool),
		codecs: make(map[*Kind]Codec),
		byName: make(map[string]*Kind),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that owns the built-in kinds.
func Default() *Registry { return defaultRegistry }

// use resolves a nil registry to the default one and allocates the maps of a
// zero-value Registry. Callers hold no lock.
func (r *Registry) use() *Registry {
	if r == nil {
		return defaultRegistry
	}
	r.mu.Lock()
	if r.safe == nil {
		r.safe = make(map[*Kind]bool)
	}
	if r.codecs == nil {
		r.codecs = make(map[*Kind]Codec)
	}
	if r.byName == nil {
		r.byName = make(map[string]*Kind)
	}
	r.mu.Unlock()
	return r
}

// Define creates a kind named name under parent. A nil parent makes a root kind.
// A non-nil parent must belong to r. Duplicate names are allowed; Lookup keeps
// returning the first kind defined under a name. A nil r means Default().
func (r *Registry) Define(name string, parent *Kind) *Kind {
	r = r.use()
	k := &Kind{name: name, parent: parent, reg: r}

	r.mu.Lock()
	if _, ok := r.byName[name]; !ok {
		r.byName[name] = k
	}
	r.mu.Unlock()

	return k
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (*Kind, bool) {
	if r == nil {
		r = defaultRegistry
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.byName[name]
	return k, ok
}

// MarkSafe sets k's class-level default to safe and returns k.
// Instances constructed before the call keep their own flag.
func (r *Registry) MarkSafe(k *Kind) *Kind {
	return r.SetDefaultSafe(k, true)
}

// SetDefaultSafe records an explicit class-level default for k and returns k.
// An explicit false on a sub-kind shadows a safe parent.
func (r *Registry) SetDefaultSafe(k *Kind, safe bool) *Kind {
	if k == nil {
		return nil
	}
	r = r.use()
	r.mu.Lock()
	r.safe[k] = safe
	r.mu.Unlock()
	return k
}

// DefaultSafe resolves the nearest explicit flag along k's parent chain.
func (r *Registry) DefaultSafe(k *Kind) bool {
	if r == nil {
		r = defaultRegistry
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for cur := k; cur != nil; cur = cur.parent {
		if v, ok := r.safe[cur]; ok {
			return v
		}
	}
	return false
}

// RegisterCodec attaches c to k (and, by resolution, to its sub-kinds) and returns k.
func (r *Registry) RegisterCodec(k *Kind, c Codec) *Kind {
	if k == nil {
		return nil
	}
	r = r.use()
	r.mu.Lock()
	r.codecs[k] = c
	r.mu.Unlock()
	return k
}

// CodecFor resolves the nearest codec along k's parent chain.
func (r *Registry) CodecFor(k *Kind) (Codec, bool) {
	if r == nil {
		r = defaultRegistry
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for cur := k; cur != nil; cur = cur.parent {
		if c, ok := r.codecs[cur]; ok && c != nil {
			return c, true
		}
	}
	return nil, false
}

// Safe marks every future instance of k as safe to show to a client.
// It is meant to be applied where the kind is declared:
//
//	var Gone = stderror.Safe(stderror.Standard.Extend("GoneError"))
//
// Applying it twice has no further effect. A kind with no registry records
// its flag in Default().
func Safe(k *Kind) *Kind {
	if k == nil {
		return nil
	}
	return k.reg.MarkSafe(k)
}

// Serializable registers c as the wire codec for k and returns k.
func Serializable(k *Kind, c Codec) *Kind {
	if k == nil {
		return nil
	}
	return k.reg.RegisterCodec(k, c)
}
