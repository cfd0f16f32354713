package catalog

import "testing"

func TestIconFor(t *testing.T) {
	cases := []struct {
		name     string
		activity string
		want     string
	}{
		{
			name:     "focus dish",
			activity: "古法卤肉饭 Braised Pork Rice",
			want:     "lurou",
		},
		{
			name:     "break snack",
			activity: "珍珠奶茶 Pearl Milk Tea",
			want:     "milktea",
		},
		{
			name:     "free simmer",
			activity: "自在焖煮 Free Simmer",
			want:     "stove",
		},
		{
			name:     "manually added record",
			activity: "Manually Added",
			want:     "default",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IconFor(tc.activity); got != tc.want {
				t.Errorf("expected %s, but got %s", tc.want, got)
			}
		})
	}
}

func TestCountUp(t *testing.T) {
	if !FreeSimmer.CountUp() {
		t.Error("expected the free simmer activity to count up")
	}

	if FocusItems[0].CountUp() {
		t.Errorf("expected %s to count down", FocusItems[0].Name)
	}
}
