package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hourglass-cli/hourglass/internal/countdown"
	"github.com/hourglass-cli/hourglass/internal/schedule"
)

func newTestModel(t *testing.T, total time.Duration) (Model, *schedule.ManualScheduler) {
	sched := schedule.NewManual()
	engine, err := countdown.New(total, countdown.Config{Scheduler: sched})
	testza.AssertNoError(t, err)
	return NewModel(engine, DefaultRefresh), sched
}

func sendKeys(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		newModel, _ := m.Update(msg)
		m = newModel.(Model)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSpaceTogglesCountdown(t *testing.T) {
	m, _ := newTestModel(t, 3*time.Second)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	testza.AssertTrue(t, m.engine.IsRunning())

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	testza.AssertTrue(t, m.engine.IsPaused())
}

func TestStopKeyReturnsToIdle(t *testing.T) {
	m, sched := newTestModel(t, 3*time.Second)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	sched.Advance(time.Second)
	m = sendKeys(m, runeKey("s"))

	testza.AssertTrue(t, m.engine.IsIdle())
	testza.AssertEqual(t, 2*time.Second, m.engine.Remaining())
}

func TestRestartKeyRearmsFullDuration(t *testing.T) {
	m, sched := newTestModel(t, 3*time.Second)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	sched.Advance(time.Second)
	m = sendKeys(m, runeKey("r"))

	testza.AssertTrue(t, m.engine.IsRunning())
	testza.AssertEqual(t, 3*time.Second, m.engine.Remaining())
}

func TestPlusMinusAdjustRemainder(t *testing.T) {
	m, sched := newTestModel(t, time.Minute)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	sched.Advance(30 * time.Second)

	m = sendKeys(m, runeKey("+"))
	testza.AssertEqual(t, 40*time.Second, m.engine.Remaining())

	m = sendKeys(m, runeKey("-"), runeKey("-"))
	testza.AssertEqual(t, 20*time.Second, m.engine.Remaining())
}

func TestQuitKeyStopsEngine(t *testing.T) {
	m, _ := newTestModel(t, 3*time.Second)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	newModel, cmd := m.Update(runeKey("q"))
	m = newModel.(Model)

	testza.AssertTrue(t, m.quitting)
	testza.AssertNotNil(t, cmd)
	testza.AssertTrue(t, m.engine.IsIdle())
}

func TestViewShowsFormattedTime(t *testing.T) {
	m, _ := newTestModel(t, 90*time.Second)
	testza.AssertTrue(t, strings.Contains(m.View(), "1:30"))
}

func TestViewShowsCompletion(t *testing.T) {
	m, sched := newTestModel(t, time.Second)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeySpace})
	sched.Advance(time.Second)

	testza.AssertTrue(t, m.engine.IsFinished())
	testza.AssertTrue(t, strings.Contains(m.View(), "Time's up!"))
}

func TestTickMsgSchedulesNextRender(t *testing.T) {
	m, _ := newTestModel(t, time.Second)
	_, cmd := m.Update(tickMsg(time.Now()))
	testza.AssertNotNil(t, cmd)
}
