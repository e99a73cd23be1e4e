package parser

import "testing"

func intPtr(i int) *int { return &i }

func TestIsRemote(t *testing.T) {
	tests := []struct {
		name     string
		color    FontColor
		text     string
		expected bool
	}{
		{"plain red rgb", FontColor{RGB: "FF0000"}, "Wykład", true},
		{"full argb red", FontColor{RGB: "FFFF0000"}, "", true},
		{"legacy argb with alpha 00", FontColor{RGB: "00FF0000"}, "", true},
		{"dark red prefix", FontColor{RGB: "FFC00000"}, "", true},
		{"near red E-prefix", FontColor{RGB: "E00A0B"}, "", true},
		{"lowercase hex accepted", FontColor{RGB: "ff0000"}, "", true},
		{"black rgb", FontColor{RGB: "FF000000"}, "Wykład", false},
		{"white rgb", FontColor{RGB: "FFFFFF"}, "", false},
		{"red palette index 3", FontColor{Indexed: 3}, "", true},
		{"red palette index 10", FontColor{Indexed: 10}, "", true},
		{"blue palette index", FontColor{Indexed: 5}, "", false},
		{"red theme slot 2", FontColor{Theme: intPtr(2)}, "", true},
		{"red theme slot 6", FontColor{Theme: intPtr(6)}, "", true},
		{"other theme slot", FontColor{Theme: intPtr(1)}, "", false},
		{"keyword zdalnie", FontColor{}, "Zajęcia zdalnie", true},
		{"keyword online", FontColor{}, "spotkanie ONLINE", true},
		{"keyword teams", FontColor{}, "MS Teams", true},
		{"no signal", FontColor{}, "Bazy danych wykład", false},
		{"empty cell", FontColor{}, "", false},
	}

	for _, tt := range tests {
		if got := IsRemote(tt.color, tt.text); got != tt.expected {
			t.Errorf("%s: IsRemote(%+v, %q) = %v, expected %v",
				tt.name, tt.color, tt.text, got, tt.expected)
		}
	}
}
