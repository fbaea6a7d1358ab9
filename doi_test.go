package doi

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "plain DOI",
			input: "10.1109/TCSII.2024.3366282",
			want:  "10.1109/TCSII.2024.3366282",
		},
		{
			name:  "https URL prefix",
			input: "https://doi.org/10.1109/TCSII.2024.3366282",
			want:  "10.1109/TCSII.2024.3366282",
		},
		{
			name:  "doi colon prefix",
			input: "DOI:10.1145/3643832.3661865",
			want:  "10.1145/3643832.3661865",
		},
		{
			name:  "surrounding whitespace",
			input: "  10.1145/3643832.3661865\n",
			want:  "10.1145/3643832.3661865",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyDOI,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrEmptyDOI,
		},
		{
			name:    "prefix only",
			input:   "https://doi.org/",
			wantErr: ErrEmptyDOI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.input, err)
			}
			if d.String() != tt.want {
				t.Errorf("String() = %q, want %q", d.String(), tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.1038/nature12373", "10.1038/nature12373"},
		{"https://doi.org/10.1038/nature12373", "10.1038/nature12373"},
		{"http://doi.org/10.1038/nature12373", "10.1038/nature12373"},
		{"doi.org/10.1038/nature12373", "10.1038/nature12373"},
		{"doi:10.1038/nature12373", "10.1038/nature12373"},
		{"DOI:10.1038/nature12373", "10.1038/nature12373"},
		{" 10.1038/Nature12373 ", "10.1038/Nature12373"}, // case preserved
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestURL(t *testing.T) {
	d, err := New("10.1109/TCSII.2024.3366282")
	if err != nil {
		t.Fatal(err)
	}
	want := "https://doi.org/10.1109/TCSII.2024.3366282"
	if got := d.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}

	d, err = New("10.1109/TCSII.2024.3366282", WithBaseURL("http://localhost:8080/"))
	if err != nil {
		t.Fatal(err)
	}
	want = "http://localhost:8080/10.1109/TCSII.2024.3366282"
	if got := d.URL(); got != want {
		t.Errorf("URL() with custom base = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	mustNew := func(s string) *DOI {
		d, err := New(s)
		if err != nil {
			t.Fatalf("New(%q): %v", s, err)
		}
		return d
	}

	tests := []struct {
		name string
		a, b *DOI
		want bool
	}{
		{
			name: "identical",
			a:    mustNew("10.1109/TCSII.2024.3366282"),
			b:    mustNew("10.1109/TCSII.2024.3366282"),
			want: true,
		},
		{
			name: "case differs",
			a:    mustNew("10.1109/TCSII.2024.3366282"),
			b:    mustNew("10.1109/tcsii.2024.3366282"),
			want: true,
		},
		{
			name: "URL form vs plain",
			a:    mustNew("https://doi.org/10.1145/3643832.3661865"),
			b:    mustNew("10.1145/3643832.3661865"),
			want: true,
		},
		{
			name: "different DOIs",
			a:    mustNew("10.1109/TCSII.2024.3366282"),
			b:    mustNew("10.1145/3643832.3661865"),
			want: false,
		},
		{
			name: "nil other",
			a:    mustNew("10.1109/TCSII.2024.3366282"),
			b:    nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.1038/nature12373", true},
		{"10.1109/TCSII.2024.3366282", true},
		{"nature12373", false},
		{"10.1038/", false},
		{"10.1038", false},
		{"11.1038/nature12373", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.input); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	d, err := New("10.1038/nature12373",
		WithTimeout(5*time.Second),
		WithUserAgent("test-agent"),
		WithRateLimit(0),
	)
	if err != nil {
		t.Fatal(err)
	}
	if d.httpClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", d.httpClient.Timeout)
	}
	if d.userAgent != "test-agent" {
		t.Errorf("userAgent = %q, want %q", d.userAgent, "test-agent")
	}
	if d.limiter != nil {
		t.Error("WithRateLimit(0) should disable the limiter")
	}
}
