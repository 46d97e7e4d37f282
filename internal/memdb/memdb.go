// Package memdb holds all dashboard state in process memory. Every collection
// is a keyed map plus an insertion-order slice, guarded by one RWMutex for the
// whole database: dashboard aggregates read across collections and must see a
// single consistent snapshot.
package memdb

import (
	"sync"

	"loveadmin_backend/internal/models"
)

type DB struct {
	mu sync.RWMutex

	Users     map[string]models.User
	UserOrder []string

	Admins     map[string]models.Admin
	AdminOrder []string

	Events     map[string]models.Event
	EventOrder []string

	Messages     map[string]models.Message
	MessageOrder []string

	Transactions     map[string]models.Transaction
	TransactionOrder []string

	Reports     map[string]models.Report
	ReportOrder []string

	Verifications     map[string]models.Verification
	VerificationOrder []string

	APIKeys     map[string]models.APIKey
	APIKeyOrder []string

	APILogs     map[string]models.APILog
	APILogOrder []string

	BlockLists     map[string]models.BlockList
	BlockListOrder []string
}

// New returns an empty database. Use NewSeeded for the demo dataset.
func New() *DB {
	return &DB{
		Users:         make(map[string]models.User),
		Admins:        make(map[string]models.Admin),
		Events:        make(map[string]models.Event),
		Messages:      make(map[string]models.Message),
		Transactions:  make(map[string]models.Transaction),
		Reports:       make(map[string]models.Report),
		Verifications: make(map[string]models.Verification),
		APIKeys:       make(map[string]models.APIKey),
		APILogs:       make(map[string]models.APILog),
		BlockLists:    make(map[string]models.BlockList),
	}
}

func (db *DB) Lock()    { db.mu.Lock() }
func (db *DB) Unlock()  { db.mu.Unlock() }
func (db *DB) RLock()   { db.mu.RLock() }
func (db *DB) RUnlock() { db.mu.RUnlock() }
