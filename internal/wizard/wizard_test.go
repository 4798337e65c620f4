package wizard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/orbit"
	"github.com/san-kum/orbitgen/internal/vec"
)

func script(lines ...string) *LinePrompter {
	return NewLinePrompter(strings.NewReader(strings.Join(lines, "\n")+"\n"), &bytes.Buffer{})
}

func TestRun_Binary(t *testing.T) {
	p := script(
		"0", "100",
		"2e30", "-1e11", "0", "0", "0", "-15000", "0",
		"3e30", "1e11", "0", "0", "0", "15000", "0",
		"twins",
	)

	res, err := New(p, nil, 1, orbit.StrategyLegacy).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.Name != "twins" {
		t.Errorf("expected name twins, got %q", res.Name)
	}
	doc := res.Document
	if doc.DtMultiplier != 100 || len(doc.Bodies) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	want := celestial.Body{Mass: 3e30, Pos: vec.New(1e11, 0, 0), Velocity: vec.New(0, 15000, 0)}
	if doc.Bodies[1] != want {
		t.Errorf("body 1 = %+v, want %+v", doc.Bodies[1], want)
	}
}

func galaxyScript(sameMass bool) []string {
	lines := []string{
		"1", "1", "1",
		"0", "0", "0", // pos
		"z",
		"1e30",
		"5", "0", "0", // velocity
		"2", "3", // layers, per layer
		"1e9",
	}
	if sameMass {
		return append(lines, "y", "", "7e22", "galaxy")
	}
	lines = append(lines, "n", "n")
	for i := 1; i <= 6; i++ {
		lines = append(lines, strings.Repeat("1", i))
	}
	return append(lines, "galaxy")
}

func TestRun_GalaxySameMass(t *testing.T) {
	res, err := New(script(galaxyScript(true)...), nil, 9, orbit.StrategyLegacy).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	bodies := res.Document.Bodies
	if len(bodies) != 7 {
		t.Fatalf("expected 7 bodies, got %d", len(bodies))
	}
	for i, b := range bodies[1:] {
		if b.Mass != 7e22 {
			t.Errorf("satellite %d mass %v, want 7e22", i, b.Mass)
		}
		if b.Pos.Z != 0 {
			t.Errorf("satellite %d off plane: %v", i, b.Pos)
		}
	}
	if res.Recipe.Galaxies[0].CommonMass != 7e22 {
		t.Errorf("recipe did not record common mass: %+v", res.Recipe.Galaxies[0])
	}
}

func TestRun_GalaxyPerBodyMass(t *testing.T) {
	res, err := New(script(galaxyScript(false)...), nil, 9, orbit.StrategyLegacy).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []float64{1, 11, 111, 1111, 11111, 111111}
	for i, b := range res.Document.Bodies[1:] {
		if b.Mass != want[i] {
			t.Errorf("satellite %d mass %v, want %v", i, b.Mass, want[i])
		}
	}
	if got := res.Recipe.Galaxies[0].Masses; len(got) != 6 {
		t.Errorf("recipe recorded %d masses", len(got))
	}
}

func TestRun_RecipeReplays(t *testing.T) {
	res, err := New(script(galaxyScript(false)...), nil, 33, orbit.StrategyCross).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	replay, err := res.Recipe.Build()
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if len(replay.Bodies) != len(res.Document.Bodies) {
		t.Fatalf("replay has %d bodies, want %d", len(replay.Bodies), len(res.Document.Bodies))
	}
	for i := range replay.Bodies {
		if replay.Bodies[i] != res.Document.Bodies[i] {
			t.Errorf("body %d differs on replay", i)
		}
	}
}

func TestRun_GalaxyWithoutLayers(t *testing.T) {
	p := script("1", "1", "1", "0", "0", "0", "x", "1e30", "0", "0", "0", "0", "lonely")
	res, err := New(p, nil, 1, orbit.StrategyLegacy).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(res.Document.Bodies) != 1 {
		t.Errorf("expected only the center, got %d bodies", len(res.Document.Bodies))
	}
}

func TestRun_RetriesInvalidAnswers(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader(strings.Join([]string{
		"7", "0", // bad kind, then binary
		"fast", "1",
		"-5", "1", "0", "0", "0", "0", "0", "0",
		"1", "1", "0", "0", "0", "0", "0",
		"a/b", "ok",
	}, "\n")+"\n"), &out)

	res, err := New(p, nil, 1, orbit.StrategyLegacy).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Name != "ok" || res.Document.Bodies[0].Mass != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if strings.Count(out.String(), "! ") != 4 {
		t.Errorf("expected 4 rejection notices, got output:\n%s", out.String())
	}
}

func TestRun_GivesUpAfterMaxAttempts(t *testing.T) {
	p := script("9", "9", "9")
	_, err := New(p, nil, 1, orbit.StrategyLegacy).Run(context.Background())
	if !errors.Is(err, celestial.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRun_EOFAborts(t *testing.T) {
	_, err := New(script("0", "1"), nil, 1, orbit.StrategyLegacy).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Errorf("expected ErrAborted, got %v", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(script("0"), nil, 1, orbit.StrategyLegacy).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"", true},
		{"Y", true},
		{"yes", true},
		{"n", false},
		{"No", false},
	}

	for _, tt := range tests {
		got, err := YesNo(context.Background(), script(tt.answer), Question{Prompt: "?"})
		if err != nil || got != tt.want {
			t.Errorf("YesNo(%q) = %v, %v", tt.answer, got, err)
		}
	}
}

func TestFloat_Default(t *testing.T) {
	v, err := Float(context.Background(), script(""), Question{Prompt: "?", Default: "2.5"})
	if err != nil || v != 2.5 {
		t.Errorf("Float with default = %v, %v", v, err)
	}
}

func TestPromptModel(t *testing.T) {
	var m tea.Model = newPromptModel(Question{Prompt: "mass?"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})

	if !strings.Contains(m.View(), "mass?") {
		t.Errorf("view missing prompt: %q", m.View())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := m.(promptModel)
	if !pm.done || pm.buf != "125" {
		t.Errorf("expected done with buffer 125, got %+v", pm)
	}
	if cmd == nil {
		t.Error("expected quit command on enter")
	}
}

func TestPromptModel_Abort(t *testing.T) {
	m, cmd := newPromptModel(Question{Prompt: "?"}).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.(promptModel).aborted || cmd == nil {
		t.Error("expected abort with quit command")
	}
}

func TestLinePrompter_CancelWhileReading(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	p := NewLinePrompter(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Ask(ctx, Question{Prompt: "Mass"})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Ask still blocked after cancel")
	}
}

func TestLinePrompter_KeepsLineAfterCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	p := NewLinePrompter(r, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := p.Ask(ctx, Question{Prompt: "first"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}

	go w.Write([]byte("42\n"))

	got, err := p.Ask(context.Background(), Question{Prompt: "second"})
	if err != nil || got != "42" {
		t.Errorf("Ask = %q, %v; want 42", got, err)
	}
}
