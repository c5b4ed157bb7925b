package validation

import "testing"

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"min=1,max=3"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidateStruct(sample{Name: "RRR", Count: 2}); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ValidateStruct(sample{Count: 4})
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", errs)
	}
	if got := FormatValidationErrors(errs); got != "Count: must be at most 3; Name: is required" {
		t.Fatalf("unexpected message: %q", got)
	}
}
