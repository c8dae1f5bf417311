// Package auth implements the credential and session lifecycle for the tasks
// service: user registration, password verification, JWT issuance, and token
// validation.
//
// Credential store:
//   - Users are persisted via Bun with email as the unique login key. The
//     RegisterUserHandler checks for an existing account before any hashing
//     work happens; the unique index settles concurrent duplicate signups.
//
// Session claims:
//   - Tokens are HS256-signed and carry {id, email, userType, name, iat, exp}
//     with a 7 day expiry. There is no revocation list: once issued, a token
//     is honored until it expires, regardless of later account changes.
//
// Error taxonomy:
//   - Expected failures (duplicate signup, bad credentials, bad token) are
//     rich errors with HTTP codes attached. Unknown email and wrong password
//     intentionally share ErrInvalidCredentials so callers cannot enumerate
//     accounts.
package auth
