package utils

import "testing"

func TestValidPassengerName(t *testing.T) {
	valid := []string{"Alice", "Alice Smith", "O'Connor", "Jean-Luc", "J. Doe", "  Bo  "}
	for _, name := range valid {
		if !ValidPassengerName(name) {
			t.Fatalf("name %q should be valid", name)
		}
	}

	invalid := []string{"", "A", " A ", "Al1ce", "Bob<script>", "名前", "a@b"}
	for _, name := range invalid {
		if ValidPassengerName(name) {
			t.Fatalf("name %q should be rejected", name)
		}
	}
}

func TestValidBusCode(t *testing.T) {
	for _, code := range []string{"BUS001", "bus001", "BUS999"} {
		if !ValidBusCode(code) {
			t.Fatalf("bus code %q should be valid", code)
		}
	}
	for _, code := range []string{"", "BUS1", "BUS0001", "BUSES1", "001"} {
		if ValidBusCode(code) {
			t.Fatalf("bus code %q should be rejected", code)
		}
	}
}

func TestValidSeatCode(t *testing.T) {
	for _, code := range []string{"S01", "s40", "S99"} {
		if !ValidSeatCode(code) {
			t.Fatalf("seat code %q should be valid", code)
		}
	}
	for _, code := range []string{"", "S1", "S001", "01", "A01"} {
		if ValidSeatCode(code) {
			t.Fatalf("seat code %q should be rejected", code)
		}
	}
}
