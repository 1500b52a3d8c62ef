package service

import (
	"context"
	"errors"
	"time"

	"menucatalog/internal/dto"
	"menucatalog/internal/model"
	"menucatalog/internal/money"
	"menucatalog/internal/repository"

	"github.com/shopspring/decimal"
)

// MenuItemService is the catalog store: the only path through which menu
// items are created, read, changed or removed.
//
// GetByID and Update return (nil, nil) when the item does not exist; Delete
// returns false. Failures are *ValidationError or *PersistenceError.
type MenuItemService interface {
	Create(ctx context.Context, in dto.CreateMenuItemInput) (*dto.MenuItemResponse, error)
	List(ctx context.Context) ([]dto.MenuItemResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MenuItemResponse, error)
	Update(ctx context.Context, in dto.UpdateMenuItemInput) (*dto.MenuItemResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type menuItemService struct {
	repo repository.MenuItemRepository
	now  func() time.Time
}

func NewMenuItemService(repo repository.MenuItemRepository) MenuItemService {
	return &menuItemService{repo: repo, now: time.Now}
}

// Postgres keeps microseconds; truncating here makes the returned entity
// identical to what a later read produces.
func (s *menuItemService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// mapMenuItem converts a stored row to a DTO response.
func mapMenuItem(m model.MenuItem) (dto.MenuItemResponse, error) {
	price, err := money.Decode(m.Price)
	if err != nil {
		return dto.MenuItemResponse{}, err
	}
	return dto.MenuItemResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        price,
		Category:     m.Category,
		Availability: m.Availability,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}, nil
}

func encodePrice(price float64) (string, error) {
	raw, err := money.Encode(price)
	if err != nil {
		var encErr *money.EncodingError
		if errors.As(err, &encErr) {
			return "", invalid("price", MsgPricePositive)
		}
		return "", err
	}
	// Amounts below half a cent round to "0.00", which storage rejects.
	if !decimal.RequireFromString(raw).IsPositive() {
		return "", invalid("price", MsgPricePositive)
	}
	return raw, nil
}

func (s *menuItemService) Create(ctx context.Context, in dto.CreateMenuItemInput) (*dto.MenuItemResponse, error) {
	in, err := ValidateCreate(in)
	if err != nil {
		return nil, err
	}
	price, err := encodePrice(in.Price)
	if err != nil {
		return nil, err
	}
	availability, _ := in.Availability.Get()

	now := s.timestamp()
	m := &model.MenuItem{
		Name:         in.Name,
		Description:  in.Description.Ptr(),
		Price:        price,
		Category:     in.Category,
		Availability: availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, persistence("create", err)
	}

	resp, err := mapMenuItem(*m)
	if err != nil {
		return nil, persistence("create", err)
	}
	return &resp, nil
}

func (s *menuItemService) List(ctx context.Context) ([]dto.MenuItemResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, persistence("list", err)
	}
	result := make([]dto.MenuItemResponse, 0, len(list))
	for _, m := range list {
		resp, err := mapMenuItem(m)
		if err != nil {
			return nil, persistence("list", err)
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *menuItemService) GetByID(ctx context.Context, id int64) (*dto.MenuItemResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistence("get", err)
	}
	if m == nil {
		return nil, nil
	}
	resp, err := mapMenuItem(*m)
	if err != nil {
		return nil, persistence("get", err)
	}
	return &resp, nil
}

func (s *menuItemService) Update(ctx context.Context, in dto.UpdateMenuItemInput) (*dto.MenuItemResponse, error) {
	if in.ID <= 0 {
		return nil, nil
	}
	existing, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, persistence("update", err)
	}
	if existing == nil {
		return nil, nil
	}

	if err := ValidateUpdate(in); err != nil {
		return nil, err
	}
	columns, err := updateColumns(in)
	if err != nil {
		return nil, err
	}

	// updated_at must strictly increase even when two updates land within
	// the same microsecond.
	now := s.timestamp()
	if !now.After(existing.UpdatedAt) {
		now = existing.UpdatedAt.Add(time.Microsecond)
	}
	columns["updated_at"] = now

	updated, err := s.repo.UpdateFields(ctx, in.ID, columns)
	if err != nil {
		return nil, persistence("update", err)
	}
	if updated == nil {
		return nil, nil
	}
	resp, err := mapMenuItem(*updated)
	if err != nil {
		return nil, persistence("update", err)
	}
	return &resp, nil
}

// updateColumns builds the partial write from the present fields only. A null
// description maps to a nil column value, which clears it.
func updateColumns(in dto.UpdateMenuItemInput) (map[string]interface{}, error) {
	columns := make(map[string]interface{}, 6)
	if v, ok := in.Name.Get(); ok {
		columns["name"] = v
	}
	if in.Description.IsNull() {
		columns["description"] = nil
	} else if v, ok := in.Description.Get(); ok {
		columns["description"] = v
	}
	if v, ok := in.Price.Get(); ok {
		raw, err := encodePrice(v)
		if err != nil {
			return nil, err
		}
		columns["price"] = raw
	}
	if v, ok := in.Category.Get(); ok {
		columns["category"] = string(v)
	}
	if v, ok := in.Availability.Get(); ok {
		columns["availability"] = string(v)
	}
	return columns, nil
}

func (s *menuItemService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, persistence("delete", err)
	}
	return ok, nil
}
