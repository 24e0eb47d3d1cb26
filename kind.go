// kind.go — error kinds: the Go stand-in for an error class hierarchy.
//
// A Kind is a named node in a tree rooted at Standard. Instances record the
// kind they were built from, which gives them their display name and the
// class-level defaults resolved through the Registry.
package stderror

// Kind identifies a category of error. Kinds are immutable once defined;
// compare them by pointer.
type Kind struct {
	name   string
	parent *Kind
	reg    *Registry
}

// Name is the display name every instance of the kind carries.
func (k *Kind) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// Parent returns the kind k was extended from, or nil for a root.
func (k *Kind) Parent() *Kind {
	if k == nil {
		return nil
	}
	return k.parent
}

// Registry returns the registry that owns k. A zero-value Kind belongs to Default().
func (k *Kind) Registry() *Registry {
	if k == nil || k.reg == nil {
		return defaultRegistry
	}
	return k.reg
}

func (k *Kind) String() string { return k.Name() }

// Extend defines a sub-kind of k in k's registry. Extending a nil kind
// extends Standard.
func (k *Kind) Extend(name string) *Kind {
	if k == nil {
		k = Standard
	}
	return k.Registry().Define(name, k)
}

// Is reports whether k is ancestor or descends from it.
func (k *Kind) Is(ancestor *Kind) bool {
	if ancestor == nil {
		return false
	}
	for cur := k; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// DefaultSafe reports the class-level default new instances of k start with.
func (k *Kind) DefaultSafe() bool {
	if k == nil {
		return false
	}
	return k.Registry().DefaultSafe(k)
}

// New constructs an instance of k. The first msg, if any, becomes the message.
// The captured trace starts at the caller.
func (k *Kind) New(msg ...string) *Error {
	return newError(k, nil, 1, msg)
}

// Create is the factory form of New; the instance is always of kind k.
func (k *Kind) Create(msg ...string) *Error {
	return newError(k, nil, 1, msg)
}

// New constructs a plain StandardError.
func New(msg ...string) *Error {
	return newError(Standard, nil, 1, msg)
}
