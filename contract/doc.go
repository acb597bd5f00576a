/*
Package contract implements the FundVote voting state machine.

# Lifecycle

The contract moves through three states:

	Uninitialized → Active  (Initialize, fires once)
	Active ⇄ Paused         (ToggleVoting, admin only, repeatable)

Votes are accepted only while Active.

# Operations

  - Initialize(admin, options): one-time setup; stores the admin, activates
    voting, zeroes the vote counter, seeds options
  - Vote(voter, optionID, amount, token): the core transition — checks
    active / not-already-voted / positive amount / known option, moves the
    funds, bumps aggregates, appends the audit record, emits an event
  - ToggleVoting(admin): pause or resume
  - AddOption(admin, option): extend the option set

Queries (GetOptionResults, GetAllResults, HasVoted, GetUserVote,
GetTotalVotes, IsActive, IsInitialized, GetVoteRecord) are read-only
projections; unknown ids and voters come back as nil, never as errors.

# Atomicity

A mutating operation stages every write in a kv.Batch, reading through the
batch so it sees its own staged state, and commits with one atomic Apply.
The fund transfer runs after all precondition checks and before Apply, so a
failed transfer — like any failed precondition — aborts the call with zero
writes. There is no compensating or partial state, ever.

# Authorization

Operations receive an already-authenticated principal. The contract compares
it against stored identities (admin checks) but performs no cryptography;
proving control of an address is the transport layer's job (see the auth
package).

# Invariants

After every completed operation:

 1. An option's vote_count equals the number of vote records naming it, and
    its total_funds equals the sum of their amounts.
 2. Each voter appears in the voter records at most once.
 3. total_votes equals the number of stored vote records and the next free
    record index.
 4. The stored admin never changes after Initialize.
 5. Every stored vote amount is strictly positive.
*/
package contract
