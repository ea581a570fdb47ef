package models_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{name: "bare number", raw: "1250.50", want: "1250.5", valid: true},
		{name: "quoted decimal", raw: `"99.99"`, want: "99.99", valid: true},
		{name: "integer", raw: "42", want: "42", valid: true},
		{name: "negative", raw: "-15.25", want: "-15.25", valid: true},
		{name: "zero", raw: "0", want: "0", valid: true},
		{name: "null", raw: "null", want: "0", valid: false},
		{name: "empty", raw: "", want: "0", valid: false},
		{name: "empty quoted", raw: `""`, want: "0", valid: false},
		{name: "garbage", raw: "abc", want: "0", valid: false},
		{name: "padded", raw: "  12.5  ", want: "12.5", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := models.ParseAmount(tt.raw)
			if ok != tt.valid {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.raw, ok, tt.valid)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestAmountUnmarshalNeverFails(t *testing.T) {
	var payload struct {
		Price models.Amount `json:"price"`
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "numeric", body: `{"price": 100.25}`, want: "100.25"},
		{name: "string", body: `{"price": "250"}`, want: "250"},
		{name: "null", body: `{"price": null}`, want: "0"},
		{name: "garbage string", body: `{"price": "n/a"}`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload.Price = models.Amount{}
			if err := sonic.Unmarshal([]byte(tt.body), &payload); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.body, err)
			}
			if payload.Price.String() != tt.want {
				t.Errorf("decoded price = %s, want %s", payload.Price.String(), tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{name: "plain date", raw: "2025-03-15", want: "2025-03-15", valid: true},
		{name: "timestamp truncated", raw: "2025-03-15T10:30:00", want: "2025-03-15", valid: true},
		{name: "empty", raw: "", valid: false},
		{name: "not a date", raw: "yesterday", valid: false},
		{name: "bad month", raw: "2025-13-01", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := models.ParseDay(tt.raw)
			if ok != tt.valid {
				t.Fatalf("ParseDay(%q) ok = %v, want %v", tt.raw, ok, tt.valid)
			}
			if !tt.valid {
				return
			}
			want, _ := time.Parse(models.DayLayout, tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}
