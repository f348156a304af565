// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin-key capability, voter tokens and address
hashing.

# Admin Keys

Each question has an admin key derived with HMAC-SHA256 from its id:

	adminKey := auth.GenerateAdminKey(questionID, salt)
	err := auth.ValidateAdminKey(questionID, adminKey, salt)

The key is returned once when the question is created and must be sent in
the X-Admin-Key header for every administrative call on that question.
Since it is deterministic, nothing is stored in the database.

# Voter Tokens

Voter tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateVoterToken()

A token is issued by POST /voters/register and sent back in the
X-Voter-Token header. Requests without it vote anonymously.

# IP Hashing

Ledger entries keep a salted hash of the client address, never the address:

	hash := auth.HashIP(ipAddress, salt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
