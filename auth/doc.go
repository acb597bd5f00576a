/*
Package auth is the authorization gate in front of the voting contract.

# Address Tokens

The contract itself never does cryptography: it receives an
already-authenticated principal. This package supplies that proof at the
HTTP edge. Tokens use HMAC-SHA256 over the claimed address:

	token := auth.GenerateAddressToken(addr, salt)
	err := auth.ValidateAddressToken(addr, token, salt)

Tokens are URL-safe base64 without padding and deterministic: the same
address and salt always produce the same token, so validation needs no
stored state. The token issuer (whoever holds the salt) decides which
addresses callers may act as.

# ID Generation

Random hex IDs, used by tests to mint fresh addresses:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
