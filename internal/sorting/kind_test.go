package sorting

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "bubble", want: KindBubble},
		{input: "Selection", want: KindSelection},
		{input: "bogo-sort", want: KindBogo},
		{input: "merge sort", want: KindMerge},
		{input: "quick", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAlgorithm) {
					t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKindMetadata(t *testing.T) {
	if KindBubble.DisplayName() != "bubble sort" {
		t.Errorf("Unexpected display name %q", KindBubble.DisplayName())
	}
	if KindMerge.Supported() {
		t.Errorf("merge sort has no stepper and must not be supported")
	}
	if len(SupportedKinds()) != 3 {
		t.Errorf("Expected 3 supported kinds, got %d", len(SupportedKinds()))
	}
	if Kind(42).String() != "kind(42)" {
		t.Errorf("Unexpected string for unknown kind: %s", Kind(42).String())
	}
}
