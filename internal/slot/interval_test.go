package slot

import (
	"slices"
	"testing"
)

func TestNormalizeEvent(t *testing.T) {
	w := Window{Open: 540, Close: 1020}

	tests := []struct {
		name   string
		event  Event
		want   Interval
		wantOK bool
	}{
		{"inside", Event{"10:00", "11:00"}, Interval{600, 660}, true},
		{"starts before open", Event{"08:00", "09:30"}, Interval{540, 570}, true},
		{"ends after close", Event{"16:30", "18:00"}, Interval{990, 1020}, true},
		{"covers window", Event{"07:00", "19:00"}, Interval{540, 1020}, true},
		{"before open", Event{"07:00", "09:00"}, Interval{}, false},
		{"after close", Event{"17:00", "18:00"}, Interval{}, false},
		{"zero length", Event{"10:00", "10:00"}, Interval{}, false},
		{"inverted", Event{"11:00", "10:00"}, Interval{}, false},
		{"missing start", Event{End: "10:00"}, Interval{}, false},
		{"missing end", Event{Start: "10:00"}, Interval{}, false},
		{"unparsable", Event{"ten", "11:00"}, Interval{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeEvent(tt.event, w)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeEvent ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeEvent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBusySet_Lunch(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   []Interval
	}{
		{"full day", Window{Open: 540, Close: 1020}, []Interval{{720, 780}}},
		{"closes at half past twelve", Window{Open: 540, Close: 750}, []Interval{{720, 750}}},
		{"closes before noon", Window{Open: 540, Close: 690}, []Interval{}},
		{"opens after lunch", Window{Open: 800, Close: 1020}, []Interval{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusySet(nil, tt.window)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BusySet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []Interval
		want  []Interval
	}{
		{"empty", nil, []Interval{}},
		{"single", []Interval{{600, 660}}, []Interval{{600, 660}}},
		{"disjoint unsorted", []Interval{{720, 780}, {600, 660}}, []Interval{{600, 660}, {720, 780}}},
		{"overlapping", []Interval{{600, 690}, {660, 720}}, []Interval{{600, 720}}},
		{"touching", []Interval{{600, 660}, {660, 720}}, []Interval{{600, 720}}},
		{"contained", []Interval{{600, 780}, {630, 660}}, []Interval{{600, 780}}},
		{"duplicates", []Interval{{600, 660}, {600, 660}, {600, 660}}, []Interval{{600, 660}}},
		{"chain", []Interval{{700, 800}, {540, 600}, {590, 710}, {900, 960}}, []Interval{{540, 800}, {900, 960}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before []Interval
			if tt.input != nil {
				before = slices.Clone(tt.input)
			}
			got := Merge(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
			if !slices.Equal(tt.input, before) {
				t.Errorf("Merge modified its input: %v", tt.input)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Start <= got[i-1].End {
					t.Errorf("merged intervals %v and %v still touch", got[i-1], got[i])
				}
			}
		})
	}
}

func TestInterval_String(t *testing.T) {
	if got := (Interval{Start: 600, End: 780}).String(); got != "10:00-13:00" {
		t.Errorf("String() = %q, want %q", got, "10:00-13:00")
	}
}
