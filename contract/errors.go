package contract

import "errors"

// Every failure mode of the contract is one of these sentinel values,
// matched with errors.Is. A failed operation commits nothing; the contract
// stays fully usable for subsequent calls.
var (
	ErrAlreadyInitialized = errors.New("contract already initialized")
	ErrNotInitialized     = errors.New("contract not initialized")
	ErrVotingInactive     = errors.New("voting is not active")
	ErrAlreadyVoted       = errors.New("voter has already voted")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidOption      = errors.New("invalid option id")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrOptionExists       = errors.New("option already exists")
)
