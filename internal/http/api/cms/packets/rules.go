package packets

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

var statusRule = validation.By(func(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(model.Status)
	if s == "" || s.Valid() {
		return nil
	}
	return errors.New("must be one of draft, published, archived")
})

var slugRule = validation.By(func(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	if !slug.IsValid(s) {
		return errors.New("must be lowercase words separated by hyphens")
	}
	return nil
})

var notNilUUID = validation.By(func(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	// uuid.UUID is a driver.Valuer, so Indirect hands back its string form
	switch id := v.(type) {
	case uuid.UUID:
		if id == uuid.Nil {
			return errors.New("cannot be blank")
		}
	case string:
		if id == "" || id == uuid.Nil.String() {
			return errors.New("cannot be blank")
		}
	}
	return nil
})

var objectDocument = validation.By(func(value any) error {
	doc, _ := value.(model.Document)
	if doc != nil && !doc.IsObject() {
		return errors.New("must be a JSON object")
	}
	return nil
})

var presentDocument = validation.By(func(value any) error {
	if doc, _ := value.(model.Document); len(doc) == 0 {
		return errors.New("cannot be blank")
	}
	return nil
})
