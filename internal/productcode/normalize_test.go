package productcode

import "testing"

func TestNormalizeAliasTable(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"87":                   Regular,
		"Unleaded 87":          Regular,
		"REGULAR":              Regular,
		"Regular":              Regular,
		"reg unleaded":         Regular,
		"Unleaded":             Regular,
		"  regular  ":          Regular,
		"Regular 87 E10":       Regular,
		"89":                   MidGrade,
		"Mid-Grade":            MidGrade,
		"midgrade 89":          MidGrade,
		"Mid Grade":            MidGrade,
		"Unleaded Plus":        MidGrade,
		"91":                   Premium,
		"Premium":              Premium,
		"Premium Unleaded 91":  Premium,
		"PREM":                 Premium,
		"93":                   Super,
		"Super Unleaded":       Super,
		"Ultra 93":             Super,
		"E85":                  E85,
		"e-85":                 E85,
		"Flex Fuel":            E85,
		"Diesel":               Diesel,
		"ULSD":                 Diesel,
		"Clear Diesel #2":      Diesel,
		"Dyed Diesel":          DyedDiesel,
		"Off-Road Diesel":      DyedDiesel,
		"offroad diesel":       DyedDiesel,
		"dyed-diesel":          DyedDiesel,
		"DEF":                  DEF,
		"Diesel Exhaust Fluid": DEF,
	}

	for input, want := range cases {
		input, want := input, want
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(input); got != want {
				t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestNormalizeUnknownKeepsOriginalCase(t *testing.T) {
	t.Parallel()

	if got := Normalize("Kerosene"); got != "Kerosene" {
		t.Fatalf("expected Kerosene, got %q", got)
	}
	if got := Normalize("  Propane Tank Exchange "); got != "Propane Tank Exchange" {
		t.Fatalf("expected trimmed original, got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\t\n"} {
		if got := Normalize(input); got != "" {
			t.Fatalf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestNormalizeUsesWordBoundaries(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"891", "9100", "SKU-18700", "regularly scheduled delivery fee"} {
		got := Normalize(input)
		if got != input {
			t.Fatalf("Normalize(%q) = %q, expected no rule to match", input, got)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Unleaded 87", "Premium", "Mid-Grade", "Super", "E-85", "Diesel", "Dyed Diesel",
		"Diesel Exhaust Fluid", "Kerosene", "", "891", "Off Road Diesel",
	}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
	for _, code := range Codes() {
		if got := Normalize(code); got != code {
			t.Fatalf("canonical code %q normalizes to %q", code, got)
		}
	}
}

func TestNormalizeRuleOrderPrefersSpecificGrade(t *testing.T) {
	t.Parallel()

	if got := Normalize("Premium Diesel"); got != Diesel {
		t.Fatalf("expected diesel rule to win over premium, got %q", got)
	}
	if got := Normalize("Plus Unleaded"); got != MidGrade {
		t.Fatalf("expected mid-grade rule to win over unleaded, got %q", got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Equal("Regular", "87") {
		t.Fatal("expected Regular and 87 to match")
	}
	if !Equal("kerosene", "Kerosene") {
		t.Fatal("expected unrecognized names to compare case-insensitively")
	}
	if Equal("Diesel", "87") {
		t.Fatal("expected Diesel and 87 to differ")
	}
	if Equal("", "") {
		t.Fatal("expected empty names never to match")
	}
}
