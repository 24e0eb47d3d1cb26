// codec.go — pluggable wire codecs for error instances.
//
// Serialization is a capability attached to a kind (Serializable), resolved
// through the parent chain exactly like the safe default. The core only
// guarantees the public attributes are readable as a Payload; each Codec
// decides the bytes.
//
// The trace is not part of the wire form.
package stderror

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotSerializable is returned when no codec is registered along a kind's chain.
	ErrNotSerializable = errors.New("stderror: kind is not serializable")

	// ErrUnknownKind is returned when a payload names a kind the registry does not know.
	ErrUnknownKind = errors.New("stderror: unknown kind")
)

// Payload is the wire view of an instance. Message is nil when the instance
// was built without one, so an explicit empty message survives a round trip.
type Payload struct {
	Name        string   `json:"name" yaml:"name"`
	Message     *string  `json:"message,omitempty" yaml:"message,omitempty"`
	Code        Code     `json:"code,omitempty" yaml:"code,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Safe        bool     `json:"safe" yaml:"safe"`
}

// Codec converts payloads to and from bytes.
type Codec interface {
	Name() string
	Marshal(Payload) ([]byte, error)
	Unmarshal([]byte) (Payload, error)
}

var (
	// JSON encodes payloads with encoding/json.
	JSON Codec = jsonCodec{}

	// YAML encodes payloads with gopkg.in/yaml.v3.
	YAML Codec = yamlCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(p Payload) ([]byte, error) { return json.Marshal(p) }

func (jsonCodec) Unmarshal(data []byte) (Payload, error) {
	var p Payload
	err := json.Unmarshal(data, &p)
	return p, err
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(p Payload) ([]byte, error) { return yaml.Marshal(p) }

func (yamlCodec) Unmarshal(data []byte) (Payload, error) {
	var p Payload
	err := yaml.Unmarshal(data, &p)
	return p, err
}

// Payload returns the public attributes of e.
func (e *Error) Payload() Payload {
	if e == nil {
		return Payload{}
	}
	p := Payload{
		Name: e.name,
		Code: e.code,
		Safe: e.safe,
	}
	if e.hasMsg {
		msg := e.msg
		p.Message = &msg
	}
	if len(e.suggestions) > 0 {
		p.Suggestions = e.Suggestions()
	}
	return p
}

// MarshalJSON encodes e's payload so instances can sit inside JSON documents.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Payload())
}

// Marshal encodes e with the codec registered for its kind. An instance with
// no kind has no codec.
func Marshal(e *Error) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("marshal nil error: %w", ErrNotSerializable)
	}
	if e.kind == nil {
		return nil, fmt.Errorf("marshal %q without a kind: %w", e.name, ErrNotSerializable)
	}
	c, ok := e.kind.Registry().CodecFor(e.kind)
	if !ok {
		return nil, fmt.Errorf("marshal %s: %w", e.name, ErrNotSerializable)
	}
	data, err := c.Marshal(e.Payload())
	if err != nil {
		return nil, fmt.Errorf("marshal %s with %s codec: %w", e.name, c.Name(), err)
	}
	return data, nil
}

// Unmarshal decodes data with c and rebuilds an instance of the named kind in r.
// The safe flag, code and suggestions come from the payload; the trace is
// captured here, at the decode site. A nil r means Default(); a nil c means JSON.
func Unmarshal(r *Registry, c Codec, data []byte) (*Error, error) {
	if r == nil {
		r = defaultRegistry
	}
	if c == nil {
		c = JSON
	}
	p, err := c.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal with %s codec: %w", c.Name(), err)
	}
	k, ok := r.Lookup(p.Name)
	if !ok {
		return nil, fmt.Errorf("unmarshal %q: %w", p.Name, ErrUnknownKind)
	}

	var msg []string
	if p.Message != nil {
		msg = []string{*p.Message}
	}
	e := newError(k, nil, 1, msg)
	e.code = p.Code
	e.safe = p.Safe
	e.suggestions = append(e.suggestions, p.Suggestions...)
	return e, nil
}
