package models

import "encoding/json"

// Book is a single catalog entry keyed by ISBN. Clients may submit fields
// beyond the three known ones; those land in Extra untouched so the persisted
// catalog round-trips without loss.
type Book struct {
	ISBN   string
	Title  string
	Author string
	Extra  map[string]json.RawMessage
}

// UnmarshalJSON splits the known fields out of the payload and keeps the rest
// verbatim in Extra.
func (b *Book) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, dst := range map[string]*string{
		"isbn":   &b.ISBN,
		"title":  &b.Title,
		"author": &b.Author,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return err
		}
		delete(fields, key)
	}
	if len(fields) > 0 {
		b.Extra = fields
	}
	return nil
}

// MarshalJSON flattens known and extra fields back into one object. Empty
// title/author are omitted so records a client submitted without them stay
// as submitted.
func (b Book) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b.Extra)+3)
	for k, v := range b.Extra {
		out[k] = v
	}
	for key, val := range map[string]string{
		"isbn":   b.ISBN,
		"title":  b.Title,
		"author": b.Author,
	} {
		if val == "" && key != "isbn" {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		out[key] = raw
	}
	return json.Marshal(out)
}
