// Package domain defines the fixed-size key material types shared across
// the module. Lengths are enforced at construction so that no cryptographic
// operation ever sees malformed input.
package domain
