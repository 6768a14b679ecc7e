// Package hashing derives and verifies password hashes under Argon2id and
// PBKDF2-HMAC-SHA256, stored as self-describing records.
//
// # Stored record format
//
// Every record names its scheme and carries all parameters needed to verify
// it, so no external configuration is required to check a previously stored
// credential:
//
//	argon2id$<memoryKiB>$<iterations>$<parallelism>$<saltBase64>$<hashBase64>
//	pbkdf2$<iterations>$<saltBase64>$<hashBase64>
//
// Base64 fields use the standard padded alphabet. The layout is persisted by
// callers and must stay stable.
//
// # Quick start
//
//	stored, err := hashing.Hash("my-secret-password")
//	if err != nil { log.Fatal(err) }
//
//	hashing.Verify("my-secret-password", stored) // true
//	hashing.Verify("argon2id$bad$data", stored)  // false, never panics
//
// [Hash] uses Argon2id with 64 MiB of memory, 3 iterations, parallelism 1,
// a 16-byte salt and a 32-byte key. [HashRaw] returns only the derived bytes.
//
// # Verification
//
// [Verify] never returns an error and never panics: a wrong field count, bad
// base64, a non-numeric cost field or an unknown scheme tag all simply yield
// false. Use [Manager.Check] when the reason matters. Derived and stored keys
// are compared in constant time.
//
// # Schemes and the Manager
//
// [Argon2idHasher] and [PBKDF2Hasher] implement [Scheme]. The [Manager]
// registers schemes by name, writes new records with its default scheme and
// dispatches verification on the record tag. Call [Manager.NeedsRehash]
// after a successful login to migrate records to the current parameters:
//
//	if m.Verify(password, stored) {
//	    if needs, _ := m.NeedsRehash(stored); needs {
//	        fresh, _ := m.Make(password)
//	        persist(userID, fresh)
//	    }
//	}
package hashing
