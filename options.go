package uri

import (
	"sync"

	"github.com/rfc3986/uri/internal/idna"
)

// Option fine-tunes Parse/IsHost behavior beyond the RFC 3986 baseline.
type Option func(*options)

type options struct {
	idnaConverter    idna.Converter
	idnaConfigured   bool
	withDNSHostRules bool
	schemeIsDNSFunc  func(string) bool
}

// defaultIDNAConverter is built once and reused, per the "cache the IDNA
// availability flag as a process-wide immutable fact" guidance: building
// the x/net/idna profile allocates, so Parse calls that never touch a
// non-ASCII host pay nothing for it.
var defaultIDNAConverter = sync.OnceValue(idna.NewUTS46Converter)

var packageLevelDefaults = options{
	schemeIsDNSFunc: UsesDNSHostValidation,
}

var muxDefaults sync.Mutex

// poolOfOptions recycles the options copies borrowOptions makes for calls
// that pass options. Calls that pass no options at all use
// packageLevelDefaults directly and never touch the pool.
var poolOfOptions = sync.Pool{
	New: func() any {
		o := packageLevelDefaults
		return &o
	},
}

func borrowOptions(opts []Option) (*options, func()) {
	if len(opts) == 0 {
		return &packageLevelDefaults, func() {}
	}

	o := poolOfOptions.Get().(*options)
	*o = packageLevelDefaults

	for _, apply := range opts {
		apply(o)
	}

	return o, func() { poolOfOptions.Put(o) }
}

// idna returns the converter to use, and whether IDNA support is
// available at all (false only when a caller explicitly configured a
// nil converter via WithIDNAConverter).
func (o *options) idna() (idna.Converter, bool) {
	if o.idnaConfigured {
		return o.idnaConverter, o.idnaConverter != nil
	}

	return defaultIDNAConverter(), true
}

// WithIDNAConverter overrides the default UTS #46 converter used for
// non-ASCII hosts. Passing nil makes IDN hosts fail with
// ErrMissingIdnSupport instead of being converted.
func WithIDNAConverter(c idna.Converter) Option {
	return func(o *options) {
		o.idnaConverter = c
		o.idnaConfigured = true
	}
}

// WithDNSHostValidation additionally enforces RFC 1035 DNS-name shape
// (label/domain length limits, letter-or-digit boundary runes) on
// registered-name hosts when the URI's scheme is one of the well-known
// schemes that assume DNS names (see UsesDNSHostValidation). This is an
// opt-in strictness layer on top of the permissive RFC 3986 reg-name
// check Parse always performs; it is never applied by default.
func WithDNSHostValidation(enabled bool) Option {
	return func(o *options) {
		o.withDNSHostRules = enabled
	}
}

// WithSchemeIsDNSFunc overrides which schemes are considered to carry
// DNS-style hosts for the purpose of WithDNSHostValidation.
func WithSchemeIsDNSFunc(fn func(string) bool) Option {
	return func(o *options) {
		o.schemeIsDNSFunc = fn
	}
}

// SetDefaultOptions tweaks the package-level defaults applied when Parse
// is called without options. Intended for process initialization only.
func SetDefaultOptions(opts ...Option) {
	muxDefaults.Lock()
	defer muxDefaults.Unlock()

	for _, apply := range opts {
		apply(&packageLevelDefaults)
	}
}
