package server

import (
	"encoding/json"
	"testing"
)

func TestParseExclusions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"plain list", "4,13,29", []int{4, 13, 29}},
		{"whitespace", " 4 , 13 , 29 ", []int{4, 13, 29}},
		{"non-numeric dropped", "4,abc,13,,29,x7", []int{4, 13, 29}},
		{"out of range dropped", "0,4,46,99", []int{4}},
		{"duplicates collapsed", "4,4,13", []int{4, 13}},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		got := ParseExclusions(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("%s: ParseExclusions(%q) = %v, want %v", tc.name, tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: ParseExclusions(%q) = %v, want %v", tc.name, tc.in, got, tc.want)
				break
			}
		}
	}
}

func TestMessageEnvelopeRoundTrip(t *testing.T) {
	req := RunRequest{Fixed: []int{7, 12}, Exclude: "20", MonteCarlo: true}
	msg, err := NewMessage(TypeRunRequest, req)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if msg.Type != TypeRunRequest {
		t.Fatalf("type = %s", msg.Type)
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var decoded Message
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var got RunRequest
	if err := json.Unmarshal(decoded.Payload, &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(got.Fixed) != 2 || got.Fixed[0] != 7 || got.Fixed[1] != 12 {
		t.Fatalf("fixed = %v", got.Fixed)
	}
	if !got.MonteCarlo {
		t.Fatal("monte_carlo flag lost")
	}
}
