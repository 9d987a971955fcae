package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create stores a new user and an email lookup key. Fails with ErrConflict
// when the email is already registered.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		emailKey := userEmailKey(user.Email)
		_, err := txn.Get(emailKey)
		if err == nil {
			return ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		if err := setEntity(txn, userKey(user.ID), user); err != nil {
			return err
		}

		idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
		return txn.Set(emailKey, idBytes)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, userKey(id), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email lookup key
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id int
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return err
		}
		return getEntity(txn, userKey(id), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetToken scans user documents for a matching password-reset token.
// Reset flows are rare enough that a full prefix scan is acceptable.
func (r *BadgerUserRepository) GetByResetToken(token string) (*models.User, error) {
	var found *models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return err
			}
			if user.ResetToken == token {
				found = &user
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update overwrites an existing user document
func (r *BadgerUserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := userKey(user.ID)

		// Verify user exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return setEntity(txn, key, user)
	})
}
