package model

import "fmt"

type Currency string

var Currencies = []Currency{"EUR", "USD", "GBP", "CHF", "PLN", "CZK", "SEK", "NOK", "DKK", "RON", "HUF", "CAD"}

func (c Currency) IsValid() error {
	for _, known := range Currencies {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("invalid currency: %s", c)
}

type MenuItem struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Currency        Currency `json:"currency"`
	Price           string   `json:"price"`
	PictureURL      *string  `json:"pictureUrl"`
	StudentOfficeID int64    `json:"studentOfficeId"`
}
