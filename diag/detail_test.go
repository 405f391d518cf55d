package diag

import "testing"

func TestDetailKeyConstants(t *testing.T) {
	keys := []struct {
		name  string
		value string
	}{
		{"DetailKeyExpected", DetailKeyExpected},
		{"DetailKeyGot", DetailKeyGot},
		{"DetailKeyTypeName", DetailKeyTypeName},
		{"DetailKeyDesignator", DetailKeyDesignator},
		{"DetailKeySignature", DetailKeySignature},
		{"DetailKeyCandidateCount", DetailKeyCandidateCount},
		{"DetailKeyElementName", DetailKeyElementName},
		{"DetailKeyFormal", DetailKeyFormal},
		{"DetailKeyActual", DetailKeyActual},
		{"DetailKeyUnit", DetailKeyUnit},
		{"DetailKeyReason", DetailKeyReason},
		{"DetailKeyExpectedLength", DetailKeyExpectedLength},
		{"DetailKeyGotLength", DetailKeyGotLength},
		{"DetailKeyContext", DetailKeyContext},
		{"DetailKeyRegion", DetailKeyRegion},
	}

	for _, k := range keys {
		t.Run(k.name, func(t *testing.T) {
			if k.value == "" {
				t.Errorf("%s is empty", k.name)
			}
			for _, r := range k.value {
				if r >= 'A' && r <= 'Z' {
					t.Errorf("%s contains uppercase: %q", k.name, k.value)
					break
				}
			}
		})
	}
}

func TestDetailKeyConstants_Uniqueness(t *testing.T) {
	keys := []string{
		DetailKeyExpected,
		DetailKeyGot,
		DetailKeyTypeName,
		DetailKeyDesignator,
		DetailKeySignature,
		DetailKeyCandidateCount,
		DetailKeyElementName,
		DetailKeyFormal,
		DetailKeyActual,
		DetailKeyUnit,
		DetailKeyReason,
		DetailKeyExpectedLength,
		DetailKeyGotLength,
		DetailKeyContext,
		DetailKeyRegion,
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key: %q", k)
		}
		seen[k] = true
	}
}

func TestExpectedGot(t *testing.T) {
	details := ExpectedGot("std_logic", "integer")

	if len(details) != 2 {
		t.Fatalf("ExpectedGot returned %d details; want 2", len(details))
	}
	if details[0].Key != DetailKeyExpected || details[0].Value != "std_logic" {
		t.Errorf("first detail = %v; want {%q, %q}", details[0], DetailKeyExpected, "std_logic")
	}
	if details[1].Key != DetailKeyGot || details[1].Value != "integer" {
		t.Errorf("second detail = %v; want {%q, %q}", details[1], DetailKeyGot, "integer")
	}
}

func TestTypeDesignator(t *testing.T) {
	details := TypeDesignator("state_t", "idle")

	if len(details) != 2 {
		t.Fatalf("TypeDesignator returned %d details; want 2", len(details))
	}
	if details[0].Key != DetailKeyTypeName || details[0].Value != "state_t" {
		t.Errorf("first detail = %v", details[0])
	}
	if details[1].Key != DetailKeyDesignator || details[1].Value != "idle" {
		t.Errorf("second detail = %v", details[1])
	}
}

func TestTypeElement(t *testing.T) {
	details := TypeElement("point_t", "z")

	if len(details) != 2 {
		t.Fatalf("TypeElement returned %d details; want 2", len(details))
	}
	if details[1].Key != DetailKeyElementName || details[1].Value != "z" {
		t.Errorf("second detail = %v", details[1])
	}
}

func TestGenericMapActual(t *testing.T) {
	details := GenericMapActual("WIDTH", "8")

	if len(details) != 2 {
		t.Fatalf("GenericMapActual returned %d details; want 2", len(details))
	}
	if details[0].Key != DetailKeyFormal || details[0].Value != "WIDTH" {
		t.Errorf("first detail = %v", details[0])
	}
	if details[1].Key != DetailKeyActual || details[1].Value != "8" {
		t.Errorf("second detail = %v", details[1])
	}
}

func TestBitstringLength(t *testing.T) {
	details := BitstringLength(8, 4)

	if len(details) != 2 {
		t.Fatalf("BitstringLength returned %d details; want 2", len(details))
	}
	if details[0].Key != DetailKeyExpectedLength || details[0].Value != "8" {
		t.Errorf("first detail = %v", details[0])
	}
	if details[1].Key != DetailKeyGotLength || details[1].Value != "4" {
		t.Errorf("second detail = %v", details[1])
	}
}
