package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleID accepts an id sent either as a JSON string or a JSON number.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

type CreateCategoryRequest struct {
	CategoryID   FlexibleID `json:"category_id"`
	CategoryName string     `json:"category_name" validate:"required"`
	Description  string     `json:"description"`
}

type CreateCompanyRequest struct {
	CompanyID   FlexibleID `json:"company_id"`
	CompanyName string     `json:"company_name" validate:"required"`
	Contact     string     `json:"contact"`
	Address     string     `json:"address"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
