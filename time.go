package vane

import (
	"encoding/json"
	"time"

	"github.com/iov-one/vane/errors"
)

// UnixTime represents a point in time as POSIX time with seconds precision.
// This is the timestamp stored with executed calls and attached to events.
type UnixTime int64

// Time returns a time.Time structure that represents the same moment in time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// IsZero returns true if this time represents a zero value.
func (t UnixTime) IsZero() bool {
	return t == 0
}

// AsUnixTime converts given Time structure into its UNIX time representation.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = UnixTime(unix)
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := UnixTime(stdtime.Unix())
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}
