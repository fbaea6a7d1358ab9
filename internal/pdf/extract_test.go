package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain DOI in text",
			text: "This article is available at 10.1109/TCSII.2024.3366282 online.",
			want: "10.1109/TCSII.2024.3366282",
		},
		{
			name: "DOI URL form",
			text: "See https://doi.org/10.1038/nature12373 for details.",
			want: "10.1038/nature12373",
		},
		{
			name: "trailing period stripped",
			text: "The identifier is 10.1145/3643832.3661865.",
			want: "10.1145/3643832.3661865",
		},
		{
			name: "trailing paren stripped",
			text: "(doi: 10.1038/nature12373)",
			want: "10.1038/nature12373",
		},
		{
			name: "first valid match wins",
			text: "10.1038/nature12373 and later 10.1145/3643832.3661865",
			want: "10.1038/nature12373",
		},
		{
			name: "no DOI",
			text: "A paper without any identifier at all.",
			want: "",
		},
		{
			name: "registrant prefix alone is not a DOI",
			text: "Volume 10.2024 of the proceedings",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDOI_MissingFile(t *testing.T) {
	if _, err := ExtractDOI("testdata/does-not-exist.pdf"); err == nil {
		t.Error("ExtractDOI() expected error for missing file")
	}
}
