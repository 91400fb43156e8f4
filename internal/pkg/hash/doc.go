// Package hash provides salted, iterated password hashing and verification.
//
// Passwords are run through PBKDF2-HMAC with a fresh random salt and stored
// as a single self-describing string:
//
//	<algorithm>:<iterations>:<hashByteLength>:<base64Salt>:<base64DerivedKey>
//
// for example "sha1:64000:18:<32 base64 chars>:<24 base64 chars>". The
// verifier reads the parameters back from the string, so hashes created with
// an older iteration count keep verifying after the default is raised.
//
// Verification separates three outcomes. A wrong password is (false, nil).
// A corrupt or truncated string wraps [ErrInvalidHash]. A well-formed string
// naming an algorithm this build cannot evaluate wraps [ErrCannotPerform].
//
// Everything here is stateless and safe for concurrent use. Hashing is
// deliberately slow; callers that must not block should offload the work.
package hash
