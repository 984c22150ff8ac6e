package session

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

var errMissing = errors.New("missing resource")

type fakeTextures struct {
	missing map[string]bool
	loads   map[string]int
	live    map[*core.Texture]string
}

func newFakeTextures(missing ...string) *fakeTextures {
	f := &fakeTextures{
		missing: make(map[string]bool),
		loads:   make(map[string]int),
		live:    make(map[*core.Texture]string),
	}
	for _, m := range missing {
		f.missing[m] = true
	}
	return f
}

func (f *fakeTextures) LoadTexture(path string) (*core.Texture, error) {
	if f.missing[path] {
		return nil, fmt.Errorf("texture %s: %w", path, errMissing)
	}
	f.loads[path]++
	t := core.NewTexture([]string{"#"}, core.ColorDefault)
	f.live[t] = path
	return t, nil
}

func (f *fakeTextures) ReleaseTexture(t *core.Texture) {
	delete(f.live, t)
}

type fakeFont struct {
	closed bool
}

func (f *fakeFont) RenderText(text string, c core.Color) *core.Texture {
	return core.NewTexture([]string{text}, c)
}

func (f *fakeFont) Close() {
	f.closed = true
}

type fakeFonts struct {
	missing bool
	opened  []*fakeFont
}

func (f *fakeFonts) OpenFont(path string, size int) (core.Font, error) {
	if f.missing {
		return nil, fmt.Errorf("font %s: %w", path, errMissing)
	}
	font := &fakeFont{}
	f.opened = append(f.opened, font)
	return font, nil
}

func (f *fakeFonts) allClosed() bool {
	for _, font := range f.opened {
		if !font.closed {
			return false
		}
	}
	return true
}

type fakeSound string

func (s fakeSound) Name() string { return string(s) }

type fakeAudio struct {
	missing bool
	played  []string
	freed   []string
}

func (a *fakeAudio) LoadSound(path string) (core.Sound, error) {
	if a.missing {
		return nil, errMissing
	}
	return fakeSound(path), nil
}

func (a *fakeAudio) Play(s core.Sound) {
	a.played = append(a.played, s.Name())
}

func (a *fakeAudio) FreeSound(s core.Sound) {
	a.freed = append(a.freed, s.Name())
}

type memStore struct {
	value int
	saves []int
}

func (m *memStore) Load() int { return m.value }

func (m *memStore) Save(v int) {
	m.value = v
	m.saves = append(m.saves, v)
}

type fakeHistory struct {
	saved []int
}

func (h *fakeHistory) SaveScore(gameID string, score int) (int64, error) {
	h.saved = append(h.saved, score)
	return int64(len(h.saved)), nil
}

// fakeActor reaches the target on the frames listed in bites and crashes
// once crashAt moves have been made (0 never crashes).
type fakeActor struct {
	bites   map[int]bool
	crashAt int
	moves   int
	grows   int
	turns   []core.Direction
}

func (a *fakeActor) Turn(d core.Direction) { a.turns = append(a.turns, d) }
func (a *fakeActor) Move() { a.moves++ }
func (a *fakeActor) Grow() { a.grows++ }
func (a *fakeActor) CanReach(core.Target) bool { return a.bites[a.moves] }
func (a *fakeActor) Rect() core.Rect { return core.NewRect(10, 10, 2, 1) }
func (a *fakeActor) Crashed() bool { return a.crashAt > 0 && a.moves >= a.crashAt }

type fakeTarget struct {
	respawns int
}

func (t *fakeTarget) Rect() core.Rect { return core.NewRect(20, 5, 2, 1) }
func (t *fakeTarget) Respawn() { t.respawns++ }

// scriptHost steps each loop through a scripted list of frames. Once a
// script runs out it keeps sending empty frames, up to a limit.
type scriptHost struct {
	width, height int
	scripts       [][]core.InputFrame
	runs          []WindowSpec
	frames        []int
}

const scriptLimit = 1000

func (h *scriptHost) Size() (int, int) { return h.width, h.height }

func (h *scriptHost) Run(spec WindowSpec, loop Loop) error {
	h.runs = append(h.runs, spec)
	var script []core.InputFrame
	if len(h.scripts) > 0 {
		script, h.scripts = h.scripts[0], h.scripts[1:]
	}
	screen := core.NewScreen(h.width, h.height)
	for i := 0; i < scriptLimit; i++ {
		in := core.NewInputFrame()
		if i < len(script) {
			in = script[i]
		}
		in.Width, in.Height = h.width, h.height
		if loop.Step(in, screen) {
			h.frames = append(h.frames, i+1)
			return nil
		}
	}
	return errors.New("loop never finished")
}

func frames(n int) []core.InputFrame {
	return make([]core.InputFrame, n)
}

func pressed(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func closed() core.InputFrame {
	in := core.NewInputFrame()
	in.Closed = true
	return in
}

func testConfig() config.Config {
	return config.Default()
}
