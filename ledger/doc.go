/*
Package ledger is the fund transfer service the voting contract calls when a
vote is cast.

# Contract

Transfer(token, from, to, amount) moves amount of token from one account to
another. It either completes in full or fails cleanly (insufficient balance,
invalid recipient, non-positive amount) with no partial movement. The voting
contract calls it after all vote preconditions pass and before any state is
committed, so a failed transfer aborts the vote with nothing persisted.

# MemoryLedger

The in-process implementation keeps balances per (token, holder) pair and is
used by tests and the development server. Mint seeds balances; Balance reads
them. A production deployment replaces it with a client for a real
settlement ledger behind the same Ledger interface.
*/
package ledger
