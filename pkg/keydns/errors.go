// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package keydns publishes and discovers tunnel public keys through DNS TXT
// records. A host's keys live at "_tunnelkey.<host>." with record content
// "v=tk1; k=<base64 public key>".
package keydns

import "errors"

// DNS lookup errors indicate issues resolving key records.
var (
	// ErrNoKeyRecords indicates no valid key records were found.
	ErrNoKeyRecords = errors.New("keydns: no key records found")

	// ErrDNSLookupFailed indicates the DNS query failed.
	ErrDNSLookupFailed = errors.New("keydns: DNS lookup failed")

	// ErrDNSSECRequired indicates DNSSEC validation is required but the
	// Authenticated Data (AD) flag was not set in the DNS response.
	ErrDNSSECRequired = errors.New("keydns: DNSSEC validation required but AD flag not set")

	// ErrKeyMismatch indicates none of the published keys matched the
	// expected key.
	ErrKeyMismatch = errors.New("keydns: published key mismatch")

	// ErrRateLimited indicates the query budget could not be met before
	// the context ended.
	ErrRateLimited = errors.New("keydns: query rate limit exceeded")
)

// Record errors indicate malformed record content or parameters.
var (
	// ErrInvalidHostname indicates an empty or malformed hostname.
	ErrInvalidHostname = errors.New("keydns: invalid hostname")

	// ErrInvalidRecord indicates TXT content that is not a key record.
	ErrInvalidRecord = errors.New("keydns: invalid key record")

	// ErrUnsupportedVersion indicates a key record with an unknown version tag.
	ErrUnsupportedVersion = errors.New("keydns: unsupported record version")
)

// Configuration errors indicate issues with resolver setup.
var (
	// ErrResolverConfig indicates the resolver configuration is invalid.
	ErrResolverConfig = errors.New("keydns: invalid resolver configuration")
)
