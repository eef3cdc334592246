package config

import "testing"

func TestLoadFareTableDefaults(t *testing.T) {
	t.Setenv("FARE_TABLE", "")

	fares := LoadFareTable()
	cases := map[string]float64{
		"AC_Cabin": 2500,
		"AC_Chair": 1200,
		"Snigdha":  800,
		"Shovon":   400,
	}
	for class, want := range cases {
		if got := fares.Price(class); got != want {
			t.Errorf("Price(%s) = %v, want %v", class, got, want)
		}
	}
	if got := fares.Price("Sleeper"); got != 500 {
		t.Errorf("Price(unknown) = %v, want default 500", got)
	}
}

func TestLoadFareTableFromEnv(t *testing.T) {
	t.Setenv("FARE_TABLE", "Shovon=450, Snigdha=850,broken,NoPrice=,Neg=-5")

	fares := LoadFareTable()
	if got := fares.Price("Shovon"); got != 450 {
		t.Errorf("Price(Shovon) = %v, want 450", got)
	}
	if got := fares.Price("Snigdha"); got != 850 {
		t.Errorf("Price(Snigdha) = %v, want 850", got)
	}
	// Malformed entries are skipped, unknown classes fall back.
	if got := fares.Price("Neg"); got != 500 {
		t.Errorf("Price(Neg) = %v, want default 500", got)
	}
	if got := fares.Price("AC_Cabin"); got != 500 {
		t.Errorf("Price(AC_Cabin) = %v, want default when env overrides table", got)
	}
}
