package deadline

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampJSON(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		"rfc3339":      {in: `"2025-05-10T14:30:00Z"`, want: time.Date(2025, time.May, 10, 14, 30, 0, 0, time.UTC)},
		"empty string": {in: `""`, want: time.Time{}},
		"garbage":      {in: `"yesterday"`, wantErr: true},
		"not a string": {in: `42`, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tc.in), &ts)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ts.Time.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, ts.Time)
			}

			out, err := json.Marshal(ts)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tc.in {
				t.Fatalf("round trip: expected %s, got %s", tc.in, out)
			}
		})
	}
}

func TestTimestampInRecord(t *testing.T) {
	in := `{"id":"1","title":"Club Meeting","timestamp":"2025-05-10T14:30:00Z"}`
	var r Record
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2025, time.May, 10, 14, 30, 0, 0, time.UTC)
	if !r.Timestamp.Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, r.Timestamp.Time)
	}
	if r.Timestamp.String() != "2025-05-10T14:30:00Z" {
		t.Fatalf("unexpected String: %s", r.Timestamp.String())
	}
}
