package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/bfhl/internal/apperr"
)

const OperationCode = 1

// Tokens accepts JSON strings and numbers; numbers keep their literal text.
type Tokens []string

func (t *Tokens) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*t = nil
		return nil
	}

	out := make(Tokens, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if bytes.Equal(item, []byte("null")) {
			return fmt.Errorf("data[%d]: null is not a token", i)
		}

		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}

		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("data[%d]: expected string or number, got %s", i, item)
		}
		out = append(out, n.String())
	}

	*t = out
	return nil
}

type ClassifyRequest struct {
	Data Tokens `json:"data" example:"M,1,334,4,B"`
}

func (r *ClassifyRequest) Validate() error {
	if r.Data == nil {
		return apperr.NewValidation("missing data array")
	}
	return nil
}

type ClassifyResponse struct {
	IsSuccess       bool     `json:"is_success"`
	UserID          string   `json:"user_id"`
	Email           string   `json:"email"`
	RollNumber      string   `json:"roll_number"`
	Numbers         []string `json:"numbers"`
	Alphabets       []string `json:"alphabets"`
	HighestAlphabet []string `json:"highest_alphabet"`
}

type OperationResponse struct {
	OperationCode int `json:"operation_code"`
}

type ErrorResponse struct {
	IsSuccess bool   `json:"is_success"`
	Error     string `json:"error"`
}

// ParseRequest decodes a raw {"data": [...]} payload. Every failure is reported
// as an apperr.ValidationError carrying apperr.MsgInvalidInput.
func ParseRequest(raw []byte) (*ClassifyRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, apperr.NewInvalidInput(errors.New("payload must be a JSON object"))
	}

	var req ClassifyRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, apperr.NewInvalidInput(err)
	}
	if err := req.Validate(); err != nil {
		return nil, apperr.NewInvalidInput(err)
	}

	return &req, nil
}
