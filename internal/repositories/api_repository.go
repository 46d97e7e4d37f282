package repositories

import (
	"errors"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrAPIKeyNotFound = errors.New("api key not found")
)

type APIKeyRepository interface {
	FindByKey(key string) (*models.APIKey, error)
	FindAll() ([]models.APIKey, error)
}

type APIKeyRepositoryImpl struct {
	db *memdb.DB
}

func NewAPIKeyRepository(db *memdb.DB) APIKeyRepository {
	return &APIKeyRepositoryImpl{db: db}
}

func (r *APIKeyRepositoryImpl) FindByKey(key string) (*models.APIKey, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	apiKey, ok := r.db.APIKeys[key]
	if !ok {
		return nil, ErrAPIKeyNotFound
	}
	return &apiKey, nil
}

func (r *APIKeyRepositoryImpl) FindAll() ([]models.APIKey, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	keys := make([]models.APIKey, 0, len(r.db.APIKeyOrder))
	for _, key := range r.db.APIKeyOrder {
		keys = append(keys, r.db.APIKeys[key])
	}
	return keys, nil
}

// APILogRepository is append-only: logs are created and listed, never mutated.
type APILogRepository interface {
	FindAll() ([]models.APILog, error)
	Create(log *models.APILog) error
}

type APILogRepositoryImpl struct {
	db *memdb.DB
}

func NewAPILogRepository(db *memdb.DB) APILogRepository {
	return &APILogRepositoryImpl{db: db}
}

func (r *APILogRepositoryImpl) FindAll() ([]models.APILog, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	logs := make([]models.APILog, 0, len(r.db.APILogOrder))
	for _, id := range r.db.APILogOrder {
		logs = append(logs, r.db.APILogs[id])
	}
	return logs, nil
}

func (r *APILogRepositoryImpl) Create(log *models.APILog) error {
	r.db.Lock()
	defer r.db.Unlock()

	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	today := dateNow()
	log.CreatedAt = today
	log.UpdatedAt = today

	r.db.APILogs[log.ID] = *log
	r.db.APILogOrder = append(r.db.APILogOrder, log.ID)
	return nil
}

type BlockListRepository interface {
	FindAll() ([]models.BlockList, error)
}

type BlockListRepositoryImpl struct {
	db *memdb.DB
}

func NewBlockListRepository(db *memdb.DB) BlockListRepository {
	return &BlockListRepositoryImpl{db: db}
}

func (r *BlockListRepositoryImpl) FindAll() ([]models.BlockList, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	lists := make([]models.BlockList, 0, len(r.db.BlockListOrder))
	for _, id := range r.db.BlockListOrder {
		lists = append(lists, r.db.BlockLists[id])
	}
	return lists, nil
}
