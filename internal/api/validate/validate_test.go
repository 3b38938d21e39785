package validate

import "testing"

func TestRequired(t *testing.T) {
	if err := Required("source_account", "acc-1"); err != nil {
		t.Fatalf("unexpected error for non-empty value: %v", err)
	}
	if err := Required("source_account", "   "); err == nil {
		t.Fatal("expected error for blank value")
	}
}

func TestPositive(t *testing.T) {
	if err := Positive("amount", 10.5); err != nil {
		t.Fatalf("unexpected error for positive amount: %v", err)
	}
	for _, v := range []float64{0, -1} {
		if err := Positive("amount", v); err == nil {
			t.Fatalf("expected error for amount %v", v)
		}
	}
}

func TestExactLen(t *testing.T) {
	if err := ExactLen("currency", "USD", 3); err != nil {
		t.Fatalf("unexpected error for 3-char currency: %v", err)
	}
	if err := ExactLen("currency", "US", 3); err == nil {
		t.Fatal("expected error for 2-char currency")
	}
	if err := ExactLen("currency", "USDT", 3); err == nil {
		t.Fatal("expected error for 4-char currency")
	}
}

func TestErrsMessage(t *testing.T) {
	errs := Errs{
		{Field: "amount", Msg: "must be > 0"},
		{Field: "currency", Msg: "must be exactly 3 characters"},
	}
	want := "amount: must be > 0; currency: must be exactly 3 characters"
	if errs.Error() != want {
		t.Fatalf("got %q, want %q", errs.Error(), want)
	}
}
