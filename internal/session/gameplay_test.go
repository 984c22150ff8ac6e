package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/jerry/internal/core"
)

type gameplayFixture struct {
	session  *Session
	gameplay *Gameplay
	textures *fakeTextures
	fonts    *fakeFonts
	audio    *fakeAudio
	store    *memStore
	actor    *fakeActor
	target   *fakeTarget
}

func newGameplayFixture(t *testing.T, stored int, actor *fakeActor) *gameplayFixture {
	t.Helper()
	f := &gameplayFixture{
		session:  New(),
		textures: newFakeTextures(),
		fonts:    &fakeFonts{},
		audio:    &fakeAudio{},
		store:    &memStore{value: stored},
		actor:    actor,
		target:   &fakeTarget{},
	}
	g, err := NewGameplay(f.session, testConfig().Gameplay, GameplayDeps{
		Textures: f.textures,
		Fonts:    f.fonts,
		Audio:    f.audio,
		Store:    f.store,
	}, f.actor, f.target)
	if err != nil {
		t.Fatalf("NewGameplay: %v", err)
	}
	f.gameplay = g
	return f
}

// run steps the gameplay with empty input until it reports done.
func (f *gameplayFixture) run(t *testing.T) {
	t.Helper()
	screen := core.NewScreen(80, 24)
	for i := 0; i < scriptLimit; i++ {
		if f.gameplay.Step(core.NewInputFrame(), screen) {
			return
		}
	}
	t.Fatal("gameplay never finished")
}

func TestGameplayBiteProtocol(t *testing.T) {
	actor := &fakeActor{bites: map[int]bool{2: true, 4: true}, crashAt: 6}
	f := newGameplayFixture(t, 0, actor)
	defer f.gameplay.Close()

	f.run(t)

	if f.session.Score() != 2 {
		t.Errorf("expected score 2, got %d", f.session.Score())
	}
	if f.target.respawns != 2 {
		t.Errorf("expected 2 respawns, got %d", f.target.respawns)
	}
	if actor.grows != 2 {
		t.Errorf("expected 2 grows, got %d", actor.grows)
	}
	if len(f.audio.played) != 2 || f.audio.played[0] != "eat.wav" {
		t.Errorf("expected eat sound twice, got %v", f.audio.played)
	}
	if f.store.value != 2 {
		t.Errorf("expected store 2, got %d", f.store.value)
	}
	if f.gameplay.Quit() {
		t.Error("expected crash, not quit")
	}
}

func TestGameplayKeepsRecord(t *testing.T) {
	actor := &fakeActor{bites: map[int]bool{1: true, 2: true, 3: true}, crashAt: 4}
	f := newGameplayFixture(t, 5, actor)
	defer f.gameplay.Close()

	f.run(t)

	if f.session.Score() != 3 || f.session.HighScore() != 5 {
		t.Errorf("expected score 3 and high score 5, got %d and %d", f.session.Score(), f.session.HighScore())
	}
	if len(f.store.saves) != 0 {
		t.Errorf("expected store unchanged, saves %v", f.store.saves)
	}
}

func TestGameplayQuitFinishesFrame(t *testing.T) {
	actor := &fakeActor{}
	f := newGameplayFixture(t, 0, actor)
	defer f.gameplay.Close()

	screen := core.NewScreen(80, 24)
	if f.gameplay.Step(closed(), screen) {
		t.Fatal("expected the closing frame to complete")
	}
	if actor.moves != 1 {
		t.Errorf("expected one move, got %d", actor.moves)
	}
	if !f.gameplay.Step(core.NewInputFrame(), screen) {
		t.Error("expected loop to end after quit")
	}
	if !f.gameplay.Quit() {
		t.Error("expected quit flag")
	}
}

func TestGameplayTurnsOnlyOnDirectionKeys(t *testing.T) {
	actor := &fakeActor{}
	f := newGameplayFixture(t, 0, actor)
	defer f.gameplay.Close()

	screen := core.NewScreen(80, 24)
	f.gameplay.Step(core.NewInputFrame(), screen)
	f.gameplay.Step(pressed(core.KeyOther), screen)
	if len(actor.turns) != 0 {
		t.Fatalf("expected no turns, got %v", actor.turns)
	}

	f.gameplay.Step(pressed(core.KeyUp, core.KeyLeft), screen)
	if len(actor.turns) != 1 || actor.turns[0] != core.North {
		t.Errorf("expected one turn North, got %v", actor.turns)
	}
	if f.gameplay.Direction() != core.North {
		t.Errorf("expected heading North, got %s", f.gameplay.Direction())
	}

	f.gameplay.Step(pressed(core.KeyUp), screen)
	if len(actor.turns) != 1 {
		t.Errorf("expected holding the current heading not to turn again, got %v", actor.turns)
	}
	if got := ResolveDirection(core.North, pressed(core.KeyOther)); got != f.gameplay.Direction() {
		t.Errorf("expected the resolved heading %s to match gameplay, got %s", f.gameplay.Direction(), got)
	}
}

func TestGameplaySpriteCache(t *testing.T) {
	f := newGameplayFixture(t, 0, &fakeActor{})
	cfg := testConfig().Gameplay

	screen := core.NewScreen(80, 24)
	keys := []core.Key{core.KeyUp, core.KeyLeft, core.KeyDown, core.KeyRight}
	for i := 0; i < 40; i++ {
		f.gameplay.Step(pressed(keys[i%len(keys)]), screen)
	}

	for _, path := range []string{cfg.Mouse.North, cfg.Mouse.South, cfg.Mouse.East, cfg.Mouse.West} {
		if f.textures.loads[path] != 1 {
			t.Errorf("expected %s loaded once, got %d", path, f.textures.loads[path])
		}
	}

	f.gameplay.Close()
	if len(f.textures.live) != 0 {
		t.Errorf("expected all textures released, %d live", len(f.textures.live))
	}
	if !f.fonts.allClosed() {
		t.Error("expected font closed")
	}
	if len(f.audio.freed) != 1 {
		t.Errorf("expected eat sound freed, got %v", f.audio.freed)
	}
}

func TestGameplayHUD(t *testing.T) {
	actor := &fakeActor{bites: map[int]bool{1: true}}
	f := newGameplayFixture(t, 9, actor)
	defer f.gameplay.Close()

	screen := core.NewScreen(80, 24)
	f.gameplay.Step(core.NewInputFrame(), screen)

	row := screen.Row(0)
	if !strings.HasPrefix(row[1:], "Score: 1") {
		t.Errorf("expected score on the left, row is %q", row)
	}
	if !strings.HasSuffix(row, "Highest: 9 ") {
		t.Errorf("expected high score on the right, row is %q", row)
	}
}

func TestGameplayMissingSpriteIsFatal(t *testing.T) {
	cfg := testConfig().Gameplay
	textures := newFakeTextures(cfg.Mouse.West)
	fonts := &fakeFonts{}
	store := &memStore{}

	_, err := NewGameplay(New(), cfg, GameplayDeps{
		Textures: textures,
		Fonts:    fonts,
		Audio:    &fakeAudio{},
		Store:    store,
	}, &fakeActor{}, &fakeTarget{})
	if !errors.Is(err, errMissing) {
		t.Fatalf("expected missing sprite error, got %v", err)
	}
	if len(textures.live) != 0 {
		t.Errorf("expected acquired textures released, %d live", len(textures.live))
	}
	if !fonts.allClosed() {
		t.Error("expected font closed")
	}
}

func TestGameplayMissingSoundIsNotFatal(t *testing.T) {
	s := New()
	audio := &fakeAudio{missing: true}
	actor := &fakeActor{bites: map[int]bool{1: true}, crashAt: 2}
	g, err := NewGameplay(s, testConfig().Gameplay, GameplayDeps{
		Textures: newFakeTextures(),
		Fonts:    &fakeFonts{},
		Audio:    audio,
		Store:    &memStore{},
	}, actor, &fakeTarget{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer g.Close()

	screen := core.NewScreen(80, 24)
	for !g.Step(core.NewInputFrame(), screen) {
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	if len(audio.played) != 0 {
		t.Errorf("expected silence, got %v", audio.played)
	}
}
