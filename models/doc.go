/*
Package models defines the domain types shared across FundVote and the
request/response types of its HTTP API.

# Domain Types

  - Address: opaque ledger account identifier
  - Amount: signed integer with 128-bit range, JSON-encoded as a decimal string
  - Option: votable choice with recipient and running aggregates
  - VoteRecord: immutable audit entry for one cast vote

# Request Types

Types for parsing incoming JSON:

  - InitializeRequest: admin, options
  - VoteRequest: voter, option_id, amount, token
  - ToggleVotingRequest: admin
  - AddOptionRequest: admin, option

# Response Types

Types for JSON responses:

  - InitializeResponse: admin, option_count
  - VoteResponse: vote_index, message
  - ToggleVotingResponse: active
  - AddOptionResponse: option_id
  - AllResultsResponse: options
  - VoterStatusResponse: address, has_voted, option_id
  - ContractStatusResponse: initialized, active, total_votes
  - ErrorResponse: error, message

# Amounts

Amount wraps math/big.Int. Token amounts on the ledger are up to 128 bits
wide, which neither int64 nor JSON numbers can carry safely, so amounts
travel as quoted decimal strings:

	{"amount": "1000000000000000000"}
*/
package models
