// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues and checks identity keys.

# Identity Keys

Every principal, administrator included, authenticates with an identity and
a key derived from it:

	key := auth.GenerateIdentityKey("alice", salt)
	err := auth.ValidateIdentityKey("alice", key, salt)

Keys are HMAC-SHA256 of the identity, URL-safe base64 encoded without
padding. Since they are deterministic, the same identity and salt always
produce the same key, and nothing needs to be stored.

The administrator receives a voter's key in the response to registering
that voter and hands it over out of band.

# Headers

Requests carry the pair in two headers:

	X-Identity:     alice
	X-Identity-Key: <key>
*/
package auth
