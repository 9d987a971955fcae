package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// Create stores a new blog and appends its id to the author's back-reference
// list. Both writes happen in one Badger transaction, so either both commit
// or neither does.
func (r *BadgerBlogRepository) Create(blog *models.Blog) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var author models.User
		if err := getEntity(txn, userKey(blog.AuthorID), &author); err != nil {
			return err
		}

		id, err := getNextID(txn, BlogSeqKey)
		if err != nil {
			return err
		}
		blog.ID = id

		if err := setEntity(txn, blogKey(blog.ID), blog); err != nil {
			return err
		}

		author.AddBlog(blog.ID)
		return setEntity(txn, userKey(author.ID), &author)
	})
}

// GetByID retrieves a blog by ID
func (r *BadgerBlogRepository) GetByID(id int) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, blogKey(id), &blog)
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// List retrieves every blog document
func (r *BadgerBlogRepository) List() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BlogKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var blog models.Blog
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &blog)
			})
			if err != nil {
				return err
			}
			blogs = append(blogs, &blog)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Update overwrites an existing blog document as a whole (load-mutate-save)
func (r *BadgerBlogRepository) Update(blog *models.Blog) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := blogKey(blog.ID)

		// Verify blog exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return setEntity(txn, key, blog)
	})
}

// Delete removes a blog and pulls its id from the author's back-reference
// list, in one transaction.
func (r *BadgerBlogRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var blog models.Blog
		if err := getEntity(txn, blogKey(id), &blog); err != nil {
			return err
		}

		if err := txn.Delete(blogKey(id)); err != nil {
			return err
		}

		var author models.User
		err := getEntity(txn, userKey(blog.AuthorID), &author)
		if err == ErrNotFound {
			// Author record already gone; nothing to unlink.
			return nil
		}
		if err != nil {
			return err
		}
		author.RemoveBlog(id)
		return setEntity(txn, userKey(author.ID), &author)
	})
}
