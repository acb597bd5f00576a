package ledger

import (
	"errors"
	"math/big"
	"sync"

	"fundvote/models"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTransfer   = errors.New("invalid transfer")
)

// Ledger moves token funds between accounts. A transfer either completes in
// full or fails with no effect; the contract relies on that to keep vote
// state and fund movement consistent.
type Ledger interface {
	Transfer(token, from, to models.Address, amount *big.Int) error
}

// MemoryLedger is an in-process token ledger keyed by (token, holder).
// It backs tests and the development server; a production deployment
// substitutes a real settlement ledger behind the same interface.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[balanceKey]*big.Int
}

type balanceKey struct {
	token  models.Address
	holder models.Address
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[balanceKey]*big.Int)}
}

// Mint credits amount of token to an account. Dev and test seeding only.
func (l *MemoryLedger) Mint(token, to models.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := balanceKey{token: token, holder: to}
	cur, ok := l.balances[k]
	if !ok {
		cur = new(big.Int)
		l.balances[k] = cur
	}
	cur.Add(cur, amount)
}

// Balance returns the current balance of holder for token.
func (l *MemoryLedger) Balance(token, holder models.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, ok := l.balances[balanceKey{token: token, holder: holder}]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(cur)
}

func (l *MemoryLedger) Transfer(token, from, to models.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidTransfer
	}
	if token == "" || from == "" || to == "" {
		return ErrInvalidTransfer
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fromKey := balanceKey{token: token, holder: from}
	cur, ok := l.balances[fromKey]
	if !ok || cur.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	cur.Sub(cur, amount)

	toKey := balanceKey{token: token, holder: to}
	dst, ok := l.balances[toKey]
	if !ok {
		dst = new(big.Int)
		l.balances[toKey] = dst
	}
	dst.Add(dst, amount)

	return nil
}
