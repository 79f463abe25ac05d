package styles

import "testing"

func TestAccentColorConstants(t *testing.T) {
	t.Parallel()

	if AccentDarkColor != "#2E6FBF" {
		t.Fatalf("unexpected AccentDarkColor: %s", AccentDarkColor)
	}
	if AccentColor != "#4C8FE0" {
		t.Fatalf("unexpected AccentColor: %s", AccentColor)
	}
	if AccentLightColor != "#8AB8F0" {
		t.Fatalf("unexpected AccentLightColor: %s", AccentLightColor)
	}
}
