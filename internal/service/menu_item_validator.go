package service

import (
	"math"

	"menucatalog/internal/dto"
	"menucatalog/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// Emptiness is checked on the raw string; "  " is a valid name.
func checkName(name string) error {
	if validate.Var(name, "min=1") != nil {
		return invalid("name", MsgNameRequired)
	}
	return nil
}

func checkPrice(price float64) error {
	if math.IsInf(price, 0) || validate.Var(price, "gt=0") != nil {
		return invalid("price", MsgPricePositive)
	}
	return nil
}

func checkCategory(c model.Category) error {
	if !c.Valid() {
		return invalid("category", MsgInvalidCategory)
	}
	return nil
}

func checkAvailability(a model.Availability) error {
	if !a.Valid() {
		return invalid("availability", MsgInvalidAvailability)
	}
	return nil
}

// ValidateCreate checks every field and returns the first violation. On
// success it returns a copy of in with the availability default filled.
func ValidateCreate(in dto.CreateMenuItemInput) (dto.CreateMenuItemInput, error) {
	if !in.Availability.Present() {
		in.Availability = dto.Set(model.AvailabilityInStock)
	}

	if err := checkName(in.Name); err != nil {
		return dto.CreateMenuItemInput{}, err
	}
	if !in.Description.Present() {
		return dto.CreateMenuItemInput{}, invalid("description", MsgDescriptionRequired)
	}
	if err := checkPrice(in.Price); err != nil {
		return dto.CreateMenuItemInput{}, err
	}
	if err := checkCategory(in.Category); err != nil {
		return dto.CreateMenuItemInput{}, err
	}
	// An explicit null availability is not an omission.
	a, _ := in.Availability.Get()
	if err := checkAvailability(a); err != nil {
		return dto.CreateMenuItemInput{}, err
	}
	return in, nil
}

// ValidateUpdate checks only the fields present in the input. Null is
// accepted for description alone.
func ValidateUpdate(in dto.UpdateMenuItemInput) error {
	if in.Name.Present() {
		v, _ := in.Name.Get()
		if err := checkName(v); err != nil {
			return err
		}
	}
	if in.Price.Present() {
		v, ok := in.Price.Get()
		if !ok {
			return invalid("price", MsgPricePositive)
		}
		if err := checkPrice(v); err != nil {
			return err
		}
	}
	if in.Category.Present() {
		v, _ := in.Category.Get()
		if err := checkCategory(v); err != nil {
			return err
		}
	}
	if in.Availability.Present() {
		v, _ := in.Availability.Get()
		if err := checkAvailability(v); err != nil {
			return err
		}
	}
	return nil
}
