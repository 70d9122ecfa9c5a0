package mode

import "testing"

func TestModeKindsAreDistinct(t *testing.T) {
	modes := []Mode{
		Splash{}, MainMenu{}, DifficultySelect{}, LevelSelect{},
		NameEntry{}, Playing{}, GameOver{}, PoweredOff{},
	}

	seen := make(map[string]bool)
	for _, m := range modes {
		k := m.Kind()
		if k == "" || seen[k] {
			t.Errorf("%T has empty or duplicate kind %q", m, k)
		}
		seen[k] = true
	}
}

func TestNameEntryFieldsAndKind(t *testing.T) {
	var m Mode = NameEntry{Name: "AB", Letter: 2}

	if m.Kind() != "name_entry" {
		t.Errorf("Kind() = %q, expected name_entry", m.Kind())
	}
	ne := m.(NameEntry)
	if ne.Name != "AB" || ne.CurrentLetter() != 'C' {
		t.Errorf("NameEntry = %+v, letter %c", ne, ne.CurrentLetter())
	}
}

func TestLevelSelectLevel(t *testing.T) {
	if got := (LevelSelect{Selected: 4}).Level(); got != 5 {
		t.Errorf("Level() = %d, expected 5", got)
	}
}
