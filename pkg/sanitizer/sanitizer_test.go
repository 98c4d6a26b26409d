package sanitizer

import (
	"testing"

	"carebook/pkg/model"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "surrounding spaces", input: "  Jane Doe  ", want: "Jane Doe"},
		{name: "inner runs collapse", input: "Jane \t  Doe", want: "Jane Doe"},
		{name: "unicode kept", input: " José  Álvarez ", want: "José Álvarez"},
		{name: "unicode separators", input: "\u00a0Jane\u2003Doe\ufeff", want: "Jane Doe"},
		{name: "only byte-order mark", input: "\ufeff", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := TrimAndNormalize(tt.want); again != tt.want {
				t.Errorf("not idempotent: %q -> %q", tt.want, again)
			}
		})
	}
}

func TestSanitizeBookingRequest(t *testing.T) {
	got := SanitizeBookingRequest(model.BookingRequest{
		PatientName:     "  Jane   Doe ",
		PatientEmail:    " Jane@Example.com ",
		AppointmentDate: "2026-11-02 ",
		AppointmentTime: " 09:00",
	})

	want := model.BookingRequest{
		PatientName:     "Jane Doe",
		PatientEmail:    "Jane@Example.com",
		AppointmentDate: "2026-11-02 ",
		AppointmentTime: " 09:00",
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u2003', '\u2028', '\u3000', '\ufeff'} {
		if !IsBlank(r) {
			t.Errorf("expected %U to be blank", r)
		}
	}
	for _, r := range []rune{'a', '@', '.', '0', '\u200b'} {
		if IsBlank(r) {
			t.Errorf("expected %U not to be blank", r)
		}
	}
}

func TestPipeline_AppliesInOrder(t *testing.T) {
	p := Pipeline{
		func(s string) string { return s + "a" },
		func(s string) string { return s + "b" },
	}
	if got := p.Apply(""); got != "ab" {
		t.Errorf("expected ab, got %q", got)
	}
}
