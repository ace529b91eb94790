// Package ui provides the single-screen talking clock TUI.
package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/banglaghori/banglaghori/internal/bangla"
	"github.com/banglaghori/banglaghori/internal/clock"
	"github.com/banglaghori/banglaghori/internal/speech"
)

const advisoryText = "কোনো বাংলা কণ্ঠ পাওয়া যায়নি — সিস্টেমের ডিফল্ট কণ্ঠ ব্যবহার করা হবে।"

// NewProgram returns a new Tea program running the clock screen.
func NewProgram(cfg Config, announcer *speech.Announcer, holder *clock.Holder) *tea.Program {
	log.Debug("starting clock screen", "engine", cfg.Engine, "voice", cfg.Voice)
	m := newModel(cfg, announcer, holder)
	return tea.NewProgram(m, tea.WithAltScreen())
}

type (
	tickMsg        time.Time
	speechEventMsg speech.Event
)

type model struct {
	cfg       Config
	holder    *clock.Holder
	announcer *speech.Announcer
	keys      keyMap
	spin      spinner.Model

	now    time.Time
	flash  string // transient status, cleared on the next tick
	width  int
	height int
}

func newModel(cfg Config, announcer *speech.Announcer, holder *clock.Holder) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return model{
		cfg:       cfg,
		holder:    holder,
		announcer: announcer,
		keys:      defaultKeyMap(),
		spin:      s,
		now:       holder.Current(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		waitForTick(m.holder),
		waitForSpeech(m.announcer),
		m.spin.Tick,
	)
}

// waitForTick delivers the next clock refresh as a message.
func waitForTick(h *clock.Holder) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-h.C()
		if !ok {
			return nil
		}
		return tickMsg(t)
	}
}

// waitForSpeech delivers the next announcer lifecycle event as a message.
func waitForSpeech(a *speech.Announcer) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.Events()
		if !ok {
			return nil
		}
		return speechEventMsg(ev)
	}
}

// announceCmd issues the speak request. A request while speaking is a
// silent no-op inside the announcer, so the key can stay mapped.
func announceCmd(a *speech.Announcer) tea.Cmd {
	return func() tea.Msg {
		if err := a.Announce(); err != nil {
			return speechEventMsg(speech.Event{Kind: speech.EventError, Err: err})
		}
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.teardown()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Speak):
			return m, announceCmd(m.announcer)

		case key.Matches(msg, m.keys.Copy):
			phrase := bangla.TimePhrase(m.now)
			if err := clipboard.WriteAll(phrase); err != nil {
				log.Debug("clipboard write failed", "err", err)
				return m, nil
			}
			m.flash = "কপি হয়েছে"
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.flash = ""
		return m, waitForTick(m.holder)

	case speechEventMsg:
		// Errors are already logged by the announcer; the flag reverting
		// is the whole user-facing story.
		return m, waitForSpeech(m.announcer)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// teardown releases the periodic timer and the speech engine.
func (m model) teardown() {
	m.holder.Stop()
	if err := m.announcer.Close(); err != nil {
		log.Debug("announcer close failed", "err", err)
	}
}

func (m model) View() string {
	timeStr := bangla.FormatTime(m.now)
	rule := strings.Repeat("─", runewidth.StringWidth(timeStr))

	lines := []string{
		timeStyle.Render(timeStr),
		ruleStyle.Render(rule),
		dateStyle.Render(bangla.FormatDate(m.now)),
		"",
		m.statusLine(),
	}

	if !m.announcer.VoiceAvailable() {
		width := m.width
		if width <= 0 || width > 72 {
			width = 72
		}
		lines = append(lines, "", advisoryStyle.Render(wordwrap.String(advisoryText, width-4)))
	}

	lines = append(lines, "", m.helpLine())

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m model) statusLine() string {
	if m.announcer.Speaking() {
		return m.spin.View() + speakingStyle.Render("বলা হচ্ছে…")
	}
	if m.flash != "" {
		return statusStyle.Render(m.flash)
	}
	return statusStyle.Render(bangla.TimePhrase(m.now))
}

func (m model) helpLine() string {
	items := []string{
		m.keys.Speak.Help().Key + ": " + m.keys.Speak.Help().Desc,
		m.keys.Copy.Help().Key + ": " + m.keys.Copy.Help().Desc,
		m.keys.Quit.Help().Key + ": " + m.keys.Quit.Help().Desc,
	}
	return helpStyle.Render(strings.Join(items, " • "))
}
