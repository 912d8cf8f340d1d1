package listing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefault(t *testing.T) {
	f := Default()

	if f.Address != "6777 Del Playa Dr, Isla Vista, CA 93117" {
		t.Errorf("Address = %q", f.Address)
	}
	if len(f.TargetAudiences) != 2 || f.TargetAudiences[0] != CampusUCSB || f.TargetAudiences[1] != CampusSBCC {
		t.Errorf("TargetAudiences = %v, want [UCSB SBCC]", f.TargetAudiences)
	}
	if len(f.Features) != 11 {
		t.Errorf("len(Features) = %d, want 11", len(f.Features))
	}
	if len(f.Amenities) != 8 {
		t.Errorf("len(Amenities) = %d, want 8", len(f.Amenities))
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.RoomAvailability["triple_room"] = "taken"
	if b.RoomAvailability["triple_room"] != "1 available immediately" {
		t.Error("mutating one Default() value leaked into another")
	}
}

func TestVars(t *testing.T) {
	vars := Default().Vars(CampusSBCC)

	want := map[string]string{
		"address":              "6777 Del Playa Dr, Isla Vista, CA 93117",
		"bedrooms":             "4",
		"bathrooms":            "2",
		"campus":               "SBCC",
		"virtual_tour":         "https://playalifeiv.com/virtual-tour",
		"rent":                 "$1,500",
		"deposit":              "$1,500",
		"first_month":          "$1,500",
		"last_month":           "$1,500",
		"total_due_at_signing": "$4,500",
	}
	if len(vars) != len(want) {
		t.Fatalf("len(vars) = %d, want %d", len(vars), len(want))
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%q] = %q, want %q", k, vars[k], v)
		}
	}
}

func TestPricingCheck(t *testing.T) {
	tests := []struct {
		name       string
		pricing    Pricing
		consistent bool
		wantErr    bool
	}{
		{"default listing", Default().Pricing, true, false},
		{
			name: "total off by one month",
			pricing: Pricing{
				Deposit: "$1,500", FirstMonth: "$1,500", LastMonth: "$1,500", TotalDueAtSigning: "$3,000",
			},
			consistent: false,
		},
		{
			name: "cents",
			pricing: Pricing{
				Deposit: "$999.50", FirstMonth: "$1,000.25", LastMonth: "$1,000.25", TotalDueAtSigning: "$3,000",
			},
			consistent: true,
		},
		{
			name:    "garbage amount",
			pricing: Pricing{Deposit: "call us", FirstMonth: "$1", LastMonth: "$1", TotalDueAtSigning: "$3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pricing.Check()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Consistent != tt.consistent {
				t.Errorf("Consistent = %v, want %v (computed %s, authored %s)",
					got.Consistent, tt.consistent, got.Computed, got.Authored)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4500", "$4,500"},
		{"999", "$999"},
		{"1234567", "$1,234,567"},
		{"1499.5", "$1,499.50"},
		{"-20", "-$20"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		if got := FormatAmount(d); got != tt.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
