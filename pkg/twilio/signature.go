// Package twilio implements the provider-facing pieces of the SMS
// webhook: request signature validation and TwiML response rendering.
package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
)

// Validator checks X-Twilio-Signature headers against the account's
// auth token, per Twilio's webhook security scheme: HMAC-SHA1 over the
// full callback URL concatenated with every POST parameter name and
// value in lexicographic name order, base64 encoded.
type Validator struct {
	authToken string
}

func NewValidator(authToken string) *Validator {
	return &Validator{authToken: authToken}
}

// ComputeSignature returns the expected signature for a request to url
// carrying the given form parameters.
func (v *Validator) ComputeSignature(url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(v.authToken))
	mac.Write([]byte(url))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(params[k]))
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Validate reports whether signature matches the recomputed value for
// (url, params). Comparison is constant-time.
func (v *Validator) Validate(signature, url string, params map[string]string) bool {
	expected := v.ComputeSignature(url, params)
	return hmac.Equal([]byte(expected), []byte(signature))
}
