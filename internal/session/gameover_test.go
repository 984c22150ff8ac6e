package session

import (
	"errors"
	"testing"

	"github.com/vovakirdan/jerry/internal/core"
)

func TestGameOverCentersOnReferenceFrame(t *testing.T) {
	audio := &fakeAudio{}
	g, err := NewGameOver(testConfig().GameOver, &fakeFonts{}, audio, nil)
	if err != nil {
		t.Fatalf("NewGameOver: %v", err)
	}
	defer g.Close()

	// A larger window still centers on 80x24.
	screen := core.NewScreen(120, 40)
	g.Step(core.NewInputFrame(), screen)

	// "Game Over" is 9 wide: x = 40 - 4, y = 12 - 0.
	if got := screen.Row(12)[36:45]; got != "Game Over" {
		t.Errorf("expected message at (36,12), row is %q", screen.Row(12))
	}
}

func TestGameOverWaitsForKey(t *testing.T) {
	audio := &fakeAudio{}
	g, err := NewGameOver(testConfig().GameOver, &fakeFonts{}, audio, nil)
	if err != nil {
		t.Fatalf("NewGameOver: %v", err)
	}
	defer g.Close()

	screen := core.NewScreen(80, 24)
	if g.Step(pressed(core.KeyOther), screen) {
		t.Fatal("expected the first frame to be shown")
	}
	for i := 0; i < 5; i++ {
		if g.Step(core.NewInputFrame(), screen) {
			t.Fatal("expected to wait without input")
		}
	}
	if !g.Step(pressed(core.KeyOther), screen) {
		t.Error("expected any key to end the phase")
	}
	if len(audio.played) != 1 || audio.played[0] != "dead.wav" {
		t.Errorf("expected dead sound once, got %v", audio.played)
	}
}

func TestGameOverClose(t *testing.T) {
	g, err := NewGameOver(testConfig().GameOver, &fakeFonts{}, &fakeAudio{}, nil)
	if err != nil {
		t.Fatalf("NewGameOver: %v", err)
	}
	g.Step(core.NewInputFrame(), core.NewScreen(80, 24))
	if !g.Step(closed(), core.NewScreen(80, 24)) {
		t.Error("expected close to end the phase")
	}
	g.Close()
}

func TestGameOverMissingFont(t *testing.T) {
	_, err := NewGameOver(testConfig().GameOver, &fakeFonts{missing: true}, &fakeAudio{}, nil)
	if !errors.Is(err, errMissing) {
		t.Errorf("expected missing font error, got %v", err)
	}
}
