/*
Package events publishes notifications of successful votes.

Each committed vote produces one VoteEvent envelope, keyed by a generated
event id and carrying (voter, option_id, amount). Emission happens after the
contract's state batch has committed and is best-effort: a lost event is
never a reason to fail or retry the vote.

LogEmitter writes envelopes to the structured log; external consumers tail
the log or substitute their own Emitter.
*/
package events
