package models

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Address identifies an account on the external funds ledger. The contract
// treats addresses as opaque strings; proving that a caller controls an
// address is the auth layer's job, never the contract's.
type Address string

// Amount is a signed integer wide enough for 128-bit token amounts.
// It marshals to JSON as a decimal string so clients never lose precision.
type Amount struct {
	big.Int
}

// NewAmount returns an Amount holding v.
func NewAmount(v int64) *Amount {
	a := new(Amount)
	a.SetInt64(v)
	return a
}

// ParseAmount parses a base-10 string into an Amount.
func ParseAmount(s string) (*Amount, error) {
	a := new(Amount)
	if _, ok := a.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return a, nil
}

func (a *Amount) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(a.String())), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return errors.New("amount must not be null")
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if _, ok := a.SetString(s, 10); !ok {
		return fmt.Errorf("invalid amount %q", s)
	}
	return nil
}

// Domain types

// Option is a votable choice. VoteCount and TotalFunds are running
// aggregates owned by the vote processor; caller-supplied values are
// ignored on creation.
type Option struct {
	ID         uint32  `json:"id"`
	Name       string  `json:"name"`
	Recipient  Address `json:"recipient"`
	VoteCount  uint64  `json:"vote_count"`
	TotalFunds *Amount `json:"total_funds"`
}

// VoteRecord is the immutable audit entry for one cast vote, stored at an
// append-only index.
type VoteRecord struct {
	Voter     Address `json:"voter"`
	OptionID  uint32  `json:"option_id"`
	Amount    *Amount `json:"amount"`
	Timestamp uint64  `json:"timestamp"`
}

// Request types

type InitializeRequest struct {
	Admin   Address  `json:"admin"`
	Options []Option `json:"options"`
}

type VoteRequest struct {
	Voter    Address `json:"voter"`
	OptionID uint32  `json:"option_id"`
	Amount   *Amount `json:"amount"`
	Token    Address `json:"token"`
}

type ToggleVotingRequest struct {
	Admin Address `json:"admin"`
}

type AddOptionRequest struct {
	Admin  Address `json:"admin"`
	Option Option  `json:"option"`
}

// Response types

type InitializeResponse struct {
	Admin       Address `json:"admin"`
	OptionCount int     `json:"option_count"`
}

type VoteResponse struct {
	VoteIndex uint32 `json:"vote_index"`
	Message   string `json:"message"`
}

type ToggleVotingResponse struct {
	Active bool `json:"active"`
}

type AddOptionResponse struct {
	OptionID uint32 `json:"option_id"`
}

type AllResultsResponse struct {
	Options []Option `json:"options"`
}

type VoterStatusResponse struct {
	Address  Address `json:"address"`
	HasVoted bool    `json:"has_voted"`
	OptionID *uint32 `json:"option_id,omitempty"`
}

type ContractStatusResponse struct {
	Initialized bool   `json:"initialized"`
	Active      bool   `json:"active"`
	TotalVotes  uint32 `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
