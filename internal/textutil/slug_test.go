package textutil

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cross Body Lead", "cross-body-lead"},
		{"New Name!", "new-name"},
		{"  Séptimo  Cielo  ", "septimo-cielo"},
		{"Bachata Sensual", "bachata-sensual"},
		{"On1", "on1"},
		{"---", ""},
		{"", ""},
		{"¡Señorita!", "senorita"},
		{"a__b..c", "a-b-c"},
		{"UPPER case", "upper-case"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrimCounterSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cross-body-lead", "cross-body-lead"},
		{"cross-body-lead 2", "cross-body-lead"},
		{"cross-body-lead 17", "cross-body-lead"},
		{"cross body", "cross body"},
		{"trailing ", "trailing "},
		{" 2", " 2"},
	}
	for _, tc := range cases {
		if got := TrimCounterSuffix(tc.in); got != tc.want {
			t.Errorf("TrimCounterSuffix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
