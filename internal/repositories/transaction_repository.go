package repositories

import (
	"errors"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrTransactionAlreadyExists = errors.New("transaction already exists")
)

type TransactionRepository interface {
	FindByID(id string) (*models.Transaction, error)
	FindAll() ([]models.Transaction, error)
	Create(transaction *models.Transaction) error
}

type TransactionRepositoryImpl struct {
	db *memdb.DB
}

func NewTransactionRepository(db *memdb.DB) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) FindByID(id string) (*models.Transaction, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	transaction, ok := r.db.Transactions[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return &transaction, nil
}

func (r *TransactionRepositoryImpl) FindAll() ([]models.Transaction, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	transactions := make([]models.Transaction, 0, len(r.db.TransactionOrder))
	for _, id := range r.db.TransactionOrder {
		transactions = append(transactions, r.db.Transactions[id])
	}
	return transactions, nil
}

// Create stores a transaction. Transaction ids are human-assigned reference
// codes (TXN-xxx); a UUID is generated only when the caller supplies none.
func (r *TransactionRepositoryImpl) Create(transaction *models.Transaction) error {
	r.db.Lock()
	defer r.db.Unlock()

	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	} else if _, exists := r.db.Transactions[transaction.ID]; exists {
		return ErrTransactionAlreadyExists
	}

	today := dateNow()
	transaction.CreatedAt = today
	transaction.UpdatedAt = today

	r.db.Transactions[transaction.ID] = *transaction
	r.db.TransactionOrder = append(r.db.TransactionOrder, transaction.ID)
	return nil
}
