// Package codec provides the reversible transform between a structured value
// and its persisted blob representation.
//
// The transform is JSON marshaling followed by a byte-wise XOR against a fixed
// shared secret and a base64 encoding. It is explicitly NOT cryptographically
// secure: its purpose is to deter casual inspection of persisted state, not to
// provide confidentiality. Do not upgrade it to real encryption without
// treating that as a scope change; the contract here is reversibility and
// fail-soft decoding of tampered input.
package codec

import (
	"encoding/base64"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// ErrDecode is returned when a persisted blob cannot be decoded back into its
// structured value. Callers must treat a decode failure the same as an absent
// value; it never escalates into a crash.
var ErrDecode = goerr.New("failed to decode persisted blob")

// DefaultSecret is the default obfuscation secret. It is deliberately public:
// see the package comment.
const DefaultSecret = "FRONTDESK_DEMO_KEY_DO_NOT_USE_IN_PROD"

// Codec obfuscates and restores structured values. The secret is unexported
// and never logged.
type Codec struct {
	secret []byte
}

// Option is a functional option for Codec configuration
type Option func(*Codec)

// WithSecret overrides the default obfuscation secret.
func WithSecret(secret string) Option {
	return func(c *Codec) {
		if secret != "" {
			c.secret = []byte(secret)
		}
	}
}

// New creates a Codec with the default secret unless overridden.
func New(opts ...Option) *Codec {
	c := &Codec{secret: []byte(DefaultSecret)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode transforms a value into its persisted blob representation.
func (c *Codec) Encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal value for encoding")
	}

	return base64.StdEncoding.EncodeToString(c.xor(raw)), nil
}

// Decode restores a persisted blob into out. Any failure, whether malformed
// base64, tampered bytes or a JSON shape that does not match the target
// schema, is reported as ErrDecode.
func (c *Codec) Decode(blob string, out any) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return goerr.Wrap(ErrDecode, "invalid base64", goerr.V("cause", err.Error()))
	}

	if err := json.Unmarshal(c.xor(raw), out); err != nil {
		return goerr.Wrap(ErrDecode, "invalid payload", goerr.V("cause", err.Error()))
	}

	return nil
}

// xor applies the symmetric byte-wise transform. Applying it twice restores
// the input.
func (c *Codec) xor(data []byte) []byte {
	result := make([]byte, len(data))
	for i, b := range data {
		result[i] = b ^ c.secret[i%len(c.secret)]
	}
	return result
}
