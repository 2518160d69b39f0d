package keyring

import (
	"sort"
)

type Keyable interface {
	// The key as in a key-value pair
	Key() string

	// A stringified version of the key, for logging
	String() string
}

type ByKeyable []Keyable

var _ sort.Interface = ByKeyable([]Keyable{})

func (k ByKeyable) Len() int           { return len(k) }
func (k ByKeyable) Swap(i, j int)      { k[i], k[j] = k[j], k[i] }
func (k ByKeyable) Less(i, j int) bool { return k[i].String() < k[j].String() }

type Key string

// Key returns key so it can be used as a key in a map[string].
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "http context key: " + string(k)
}

// Something Keyringable because it stores arbitrary keys, accessible by a string name,
// and makes it convenient to grab a RequestIDKey or IPAddrKey.
type Keyringable interface {
	IPAddrKey() Keyable
	Key(name string) Keyable
	RequestIDKey() Keyable
	keys() map[string]Keyable
}

// Keyring stores Keyables and cannot be mutated outside of a constructor.
type Keyring struct {
	ipAddr    string
	requestID string
	internal  map[string]Keyable
}

// NewKeyring constructs a Keyring from the given Keyables.
// NewKeyring requires the request-ID and IP-address keys to be retrieved
// through RequestIDKey() and IPAddrKey(), respectively.
// NewKeyring accepts an arbitrary number of other Keyables, accessible through the Key method.
func NewKeyring(requestIDKey, ipAddrKey Keyable, additional ...Keyable) Keyringable {
	if requestIDKey == nil || ipAddrKey == nil {
		return nil
	}
	kr := &Keyring{
		requestID: requestIDKey.Key(),
		ipAddr:    ipAddrKey.Key(),
		internal: map[string]Keyable{
			requestIDKey.Key(): requestIDKey,
			ipAddrKey.Key():    ipAddrKey,
		},
	}

	for _, k := range additional {
		if k == nil {
			continue
		}
		kr.internal[k.Key()] = k
	}

	return kr
}

// IPAddrKey returns the key set in the ipAddrKey parameter of NewKeyring or nil.
func (kr *Keyring) IPAddrKey() Keyable {
	return kr.internal[kr.ipAddr]
}

// Key returns the key by name (i.e., Keyable.Key()) or nil.
func (kr *Keyring) Key(name string) Keyable {
	return kr.internal[name]
}

// RequestIDKey returns the key set in the requestIDKey parameter of NewKeyring or nil.
func (kr *Keyring) RequestIDKey() Keyable {
	return kr.internal[kr.requestID]
}

// keys exposes the internal map of Keyables.
func (kr *Keyring) keys() map[string]Keyable { return kr.internal }

// WithKeyring constructs a new Keyringable from the parent
// and adds additional Keyables to the new Keyringable.
func WithKeyring(parent Keyringable, additional ...Keyable) Keyringable {
	rk := parent.RequestIDKey()
	ik := parent.IPAddrKey()
	kr := &Keyring{
		requestID: rk.Key(),
		ipAddr:    ik.Key(),
		internal:  make(map[string]Keyable),
	}

	for k, v := range parent.keys() {
		kr.internal[k] = v
	}

	for _, k := range additional {
		if k == nil {
			continue
		}

		kr.internal[k.Key()] = k
	}

	return kr
}
