package deadline

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time so the harvest time survives JSON round trips in
// RFC3339 form and tolerates the empty string the API sends for old rows.
type Timestamp struct {
	time.Time
}

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(raw)
	return err
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
