package posts

import "testing"

func TestThemeLabel(t *testing.T) {
	tests := []struct {
		theme Theme
		want  string
	}{
		{CampusProximity, "Campus Proximity"},
		{MoveInReady, "Move In Ready"},
		{NeighborhoodHighlights, "Neighborhood Highlights"},
	}
	for _, tt := range tests {
		if got := tt.theme.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.theme, got, tt.want)
		}
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"beach_lifestyle", BeachLifestyle, false},
		{"Beach Lifestyle", BeachLifestyle, false},
		{"  move-in-ready ", MoveInReady, false},
		{"parking", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		campus  string
		want    Selection
		wantErr bool
	}{
		{"defaults", "", "", Selection{}, false},
		{"random theme", "Random", "random", Selection{Campus: CampusUniform}, false},
		{"label theme", "Student Community", "SBCC", Selection{Theme: StudentCommunity, Campus: CampusSBCCOnly}, false},
		{"bad theme", "nightlife", "", Selection{}, true},
		{"bad campus", "", "UCLA", Selection{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.theme, tt.campus)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSelection = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPoolModelTag(t *testing.T) {
	if PoolMain.ModelTag() != "template" || PoolFallback.ModelTag() != "fallback" {
		t.Errorf("model tags = %q/%q", PoolMain.ModelTag(), PoolFallback.ModelTag())
	}
}
