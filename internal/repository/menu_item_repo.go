package repository

import (
	"context"
	"errors"
	"time"

	"menucatalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MenuItemRepository defines the data access contract for menu items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
//
// A missing row is never an error: FindByID and UpdateFields return nil and
// Delete returns false.
type MenuItemRepository interface {
	Create(ctx context.Context, m *model.MenuItem) error
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (*model.MenuItem, error)
	// UpdateFields writes exactly the given columns in a single
	// UPDATE ... RETURNING statement and returns the row as committed.
	UpdateFields(ctx context.Context, id int64, columns map[string]interface{}) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type menuItemRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewMenuItemRepository returns a GORM-backed repository. A positive timeout
// bounds every call; zero leaves the caller's context untouched.
func NewMenuItemRepository(db *gorm.DB, timeout time.Duration) MenuItemRepository {
	return &menuItemRepo{db: db, timeout: timeout}
}

func (r *menuItemRepo) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if r.timeout <= 0 {
		return r.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	return r.db.WithContext(ctx), cancel
}

func (r *menuItemRepo) Create(ctx context.Context, m *model.MenuItem) error {
	db, cancel := r.conn(ctx)
	defer cancel()
	return db.Create(m).Error
}

// List orders by id so output is stable; callers must not rely on it.
func (r *menuItemRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	db, cancel := r.conn(ctx)
	defer cancel()
	list := make([]model.MenuItem, 0)
	err := db.Order("id asc").Find(&list).Error
	return list, err
}

func (r *menuItemRepo) FindByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	db, cancel := r.conn(ctx)
	defer cancel()
	var m model.MenuItem
	err := db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuItemRepo) UpdateFields(ctx context.Context, id int64, columns map[string]interface{}) (*model.MenuItem, error) {
	db, cancel := r.conn(ctx)
	defer cancel()
	var m model.MenuItem
	res := db.Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(columns)
	if res.Error != nil {
		return nil, res.Error
	}
	// A concurrent delete between the existence check and this statement.
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *menuItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	db, cancel := r.conn(ctx)
	defer cancel()
	res := db.Where("id = ?", id).Delete(&model.MenuItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
