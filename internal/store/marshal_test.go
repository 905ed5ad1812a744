package store

import (
	"testing"
	"time"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestMarshalStrings_RoundTrip(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"one"},
		{"with \"quotes\"", "accents éèê"},
	}
	for _, in := range cases {
		data, err := marshalStrings(in)
		if err != nil {
			t.Fatalf("marshalStrings(%v) failed: %v", in, err)
		}
		out, err := unmarshalStrings(data)
		if err != nil {
			t.Fatalf("unmarshalStrings(%q) failed: %v", data, err)
		}
		if out == nil {
			t.Errorf("unmarshalStrings(%q) returned nil, want empty slice", data)
		}
		if len(out) != len(in) {
			t.Errorf("round trip of %v produced %v", in, out)
			continue
		}
		for i := range in {
			if out[i] != in[i] {
				t.Errorf("round trip of %v produced %v", in, out)
				break
			}
		}
	}
}

func TestMarshalStrings_NilBecomesEmptyArray(t *testing.T) {
	data, err := marshalStrings(nil)
	if err != nil {
		t.Fatalf("marshalStrings(nil) failed: %v", err)
	}
	if data != "[]" {
		t.Errorf("marshalStrings(nil) = %q, want %q", data, "[]")
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.FixedZone("CET", 3600))
	text := formatTime(in)

	out, err := parseTime(text)
	if err != nil {
		t.Fatalf("parseTime(%q) failed: %v", text, err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip changed instant: %v -> %v", in, out)
	}
	if out.Location() != time.UTC {
		t.Errorf("parsed time not UTC: %v", out.Location())
	}
}

func TestSpokenLanguagesRoundTrip(t *testing.T) {
	in := []model.SpokenLanguage{
		{Name: "French", Level: model.SpokenNative},
		{Name: "English", Level: model.SpokenFluent, Code: "C1"},
	}
	data, err := marshalSpokenLanguages(in)
	if err != nil {
		t.Fatalf("marshalSpokenLanguages() failed: %v", err)
	}
	out, err := unmarshalSpokenLanguages(data)
	if err != nil {
		t.Fatalf("unmarshalSpokenLanguages(%q) failed: %v", data, err)
	}
	if len(out) != 2 || out[1].Code != "C1" || out[0].Level != model.SpokenNative {
		t.Errorf("round trip produced %v", out)
	}
}
