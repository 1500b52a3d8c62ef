package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"menucatalog/internal/model"
	"menucatalog/internal/repository"
)

// ── In-memory MenuItemRepository stub ────────────────────────────────────────

type stubMenuItemRepo struct {
	items  map[int64]*model.MenuItem
	nextID int64
	writes int

	// failWith, when set, is returned by every call.
	failWith error
	// deleteBeforeUpdate simulates a concurrent delete racing an update.
	deleteBeforeUpdate bool
}

func newStubMenuItemRepo() *stubMenuItemRepo {
	return &stubMenuItemRepo{items: make(map[int64]*model.MenuItem)}
}

var _ repository.MenuItemRepository = (*stubMenuItemRepo)(nil)

func (r *stubMenuItemRepo) Create(_ context.Context, m *model.MenuItem) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.items[m.ID] = &cp
	r.writes++
	return nil
}

func (r *stubMenuItemRepo) List(_ context.Context) ([]model.MenuItem, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.MenuItem, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.items[id])
	}
	return result, nil
}

func (r *stubMenuItemRepo) FindByID(_ context.Context, id int64) (*model.MenuItem, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *stubMenuItemRepo) UpdateFields(_ context.Context, id int64, columns map[string]interface{}) (*model.MenuItem, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.deleteBeforeUpdate {
		delete(r.items, id)
	}
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	for col, v := range columns {
		switch col {
		case "name":
			cp.Name = v.(string)
		case "description":
			if v == nil {
				cp.Description = nil
			} else {
				s := v.(string)
				cp.Description = &s
			}
		case "price":
			cp.Price = v.(string)
		case "category":
			cp.Category = model.Category(v.(string))
		case "availability":
			cp.Availability = model.Availability(v.(string))
		case "updated_at":
			cp.UpdatedAt = v.(time.Time)
		default:
			return nil, fmt.Errorf("unknown column %q", col)
		}
	}
	r.items[id] = &cp
	r.writes++
	out := cp
	return &out, nil
}

func (r *stubMenuItemRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	r.writes++
	return true, nil
}
