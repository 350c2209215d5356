package icondb

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/fileicons/pkg/errors"
)

// Tuple slots of a raw icon
const (
	slotClass = iota
	slotColors
	slotMatch
	slotPriority
	slotMatchPath
	slotInterpreter
	slotScope
	slotLanguage
	slotSignature
	slotCount
)

// DefaultPriority is used when a tuple omits its priority or stores 0
const DefaultPriority = 1

// RawIcon is one undecorated rule tuple. Empty strings mean "absent".
type RawIcon struct {
	Class       string
	Colors      [2]string
	Match       string
	Priority    float64
	MatchPath   bool
	Interpreter string
	Scope       string
	Language    string
	Signature   string
}

// UnmarshalJSON decodes the positional tuple form
func (ri *RawIcon) UnmarshalJSON(data []byte) error {
	var slots []json.RawMessage
	if err := json.Unmarshal(data, &slots); err != nil {
		return errors.Wrap(err, errors.ErrDatabaseFormat, "icon must be an array")
	}
	if len(slots) < slotPriority || len(slots) > slotCount {
		return errors.Newf(errors.ErrDatabaseFormat, "icon must hold %d to %d slots, got %d", slotPriority, slotCount, len(slots))
	}
	for len(slots) < slotCount {
		slots = append(slots, nil)
	}

	out := RawIcon{Priority: DefaultPriority}
	var err error

	if out.Class, err = decodeString(slots[slotClass], "class"); err != nil {
		return err
	}
	if out.Class == "" {
		return errors.New(errors.ErrDatabaseFormat, "icon class cannot be empty")
	}
	if out.Colors, err = decodeColors(slots[slotColors]); err != nil {
		return err
	}
	if out.Match, err = decodeString(slots[slotMatch], "match"); err != nil {
		return err
	}
	if out.Match == "" {
		return errors.Newf(errors.ErrDatabaseFormat, "icon %s has no match pattern", out.Class)
	}

	if !isNull(slots[slotPriority]) {
		var p float64
		if err := json.Unmarshal(slots[slotPriority], &p); err != nil {
			return errors.Wrapf(err, errors.ErrDatabaseFormat, "icon %s priority must be a number", out.Class)
		}
		if p != 0 {
			out.Priority = p
		}
	}
	if !isNull(slots[slotMatchPath]) {
		if err := json.Unmarshal(slots[slotMatchPath], &out.MatchPath); err != nil {
			return errors.Wrapf(err, errors.ErrDatabaseFormat, "icon %s matchPath must be a boolean", out.Class)
		}
	}

	optional := []struct {
		slot int
		name string
		dst  *string
	}{
		{slotInterpreter, "interpreter", &out.Interpreter},
		{slotScope, "scope", &out.Scope},
		{slotLanguage, "language", &out.Language},
		{slotSignature, "signature", &out.Signature},
	}
	for _, o := range optional {
		if *o.dst, err = decodeString(slots[o.slot], o.name); err != nil {
			return err
		}
	}

	*ri = out
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage, field string) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.Wrapf(err, errors.ErrDatabaseFormat, "icon %s must be a string", field)
	}
	return s, nil
}

func decodeColors(raw json.RawMessage) ([2]string, error) {
	var colors [2]string
	if isNull(raw) {
		return colors, nil
	}
	var slots []*string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return colors, errors.Wrap(err, errors.ErrDatabaseFormat, "icon colors must be an array")
	}
	if len(slots) > len(colors) {
		return colors, errors.Newf(errors.ErrDatabaseFormat, "icon colors hold at most %d entries, got %d", len(colors), len(slots))
	}
	for i, c := range slots {
		if c != nil {
			colors[i] = *c
		}
	}
	return colors, nil
}
