package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateOnlyLayout = "2006-01-02"

// referenceEpoch is 2001-01-01T00:00:00Z, the zero point of numeric dates
// written by the original app's default JSON date strategy
var referenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	ErrMissingID     = errors.New("transaction id is required")
	ErrMissingAmount = errors.New("transaction amount is required")
	ErrInvalidDate   = errors.New("invalid transaction date")
)

// transactionWire is the encoded shape of a Transaction
type transactionWire struct {
	ID       uuid.UUID           `json:"id"`
	Amount   json.Number         `json:"amount"`
	Title    string              `json:"title"`
	Category TransactionCategory `json:"category"`
	Date     string              `json:"date"`
	Type     TransactionType     `json:"type"`
	Notes    string              `json:"notes"`
}

// transactionWireIn accepts both date encodings
type transactionWireIn struct {
	ID       uuid.UUID           `json:"id"`
	Amount   json.Number         `json:"amount"`
	Title    string              `json:"title"`
	Category TransactionCategory `json:"category"`
	Date     json.RawMessage     `json:"date"`
	Type     TransactionType     `json:"type"`
	Notes    string              `json:"notes"`
}

// MarshalJSON encodes the transaction as a flat object with a numeric amount
// and an RFC 3339 date
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionWire{
		ID:       t.ID,
		Amount:   json.Number(t.Amount.String()),
		Title:    t.Title,
		Category: t.Category,
		Date:     t.Date.Format(time.RFC3339Nano),
		Type:     t.Type,
		Notes:    t.Notes,
	})
}

// UnmarshalJSON decodes a flat transaction object. Unknown fields are ignored.
// The date may be an RFC 3339 string, a plain date or a number of seconds
// since referenceEpoch.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var wire transactionWireIn
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if wire.ID == uuid.Nil {
		return ErrMissingID
	}

	if wire.Amount == "" {
		return ErrMissingAmount
	}
	amount, err := decimal.NewFromString(wire.Amount.String())
	if err != nil {
		return fmt.Errorf("invalid transaction amount %q: %w", wire.Amount, err)
	}

	if !IsValidCategory(wire.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, wire.Category)
	}

	if !IsValidTransactionType(wire.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, wire.Type)
	}

	date, err := parseWireDate(wire.Date)
	if err != nil {
		return err
	}

	*t = Transaction{
		ID:       wire.ID,
		Amount:   amount,
		Title:    wire.Title,
		Category: wire.Category,
		Date:     date,
		Type:     wire.Type,
		Notes:    wire.Notes,
	}
	return nil
}

func parseWireDate(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, ErrInvalidDate
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return parsed, nil
		}
		if parsed, err := time.Parse(dateOnlyLayout, s); err == nil {
			return parsed, nil
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	seconds, err := decimal.NewFromString(string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, raw)
	}
	whole := seconds.IntPart()
	nanos := seconds.Sub(decimal.NewFromInt(whole)).Shift(9).IntPart()
	return time.Unix(referenceEpoch.Unix()+whole, nanos).UTC(), nil
}
