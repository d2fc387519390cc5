package companyrates

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadDefaultsWhenPathEmpty(t *testing.T) {
	book := Load("", zap.NewNop())
	rates := book.ForCity("CAI")
	if len(rates) == 0 {
		t.Fatal("default book has no CAI rates")
	}
	if rates[0].Currency != "EGP" {
		t.Errorf("currency = %q, want EGP", rates[0].Currency)
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	payload := `{
	  "Egypt": {
	    "CAI": [{"hotelName": "Test House", "ratePerNight": 900, "currency": "EGP"}]
	  }
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatal(err)
	}

	book := Load(path, zap.NewNop())
	rates := book.ForCity("cai")
	if len(rates) != 1 || rates[0].HotelName != "Test House" {
		t.Fatalf("unexpected rates: %+v", rates)
	}
	if rates[0].RatePerNight != 900 {
		t.Errorf("rate = %v, want 900", rates[0].RatePerNight)
	}
	// The custom file replaces the default book entirely.
	if got := book.ForCity("DXB"); got != nil {
		t.Errorf("DXB rates survived a custom load: %+v", got)
	}
}

func TestLoadFallsBackOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	book := Load(path, zap.NewNop())
	if len(book.ForCity("CAI")) == 0 {
		t.Error("malformed file must fall back to the default book")
	}
}

func TestForCityUnknownIsEmpty(t *testing.T) {
	book := Load("", zap.NewNop())
	if got := book.ForCity("XXX"); len(got) != 0 {
		t.Errorf("unknown city returned rates: %+v", got)
	}
}
