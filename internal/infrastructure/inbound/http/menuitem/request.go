package menuitem_http

import (
	model "studentoffice-service/internal/domain/models"
)

type MenuItemRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Currency   string  `json:"currency" validate:"required,currency"`
	Price      string  `json:"price" validate:"required,price"`
	PictureURL *string `json:"pictureUrl" validate:"omitempty,uri"`
}

func (r MenuItemRequest) toModel(id, studentOfficeID int64) *model.MenuItem {
	return &model.MenuItem{
		ID:              id,
		Name:            r.Name,
		Currency:        model.Currency(r.Currency),
		Price:           r.Price,
		PictureURL:      r.PictureURL,
		StudentOfficeID: studentOfficeID,
	}
}
