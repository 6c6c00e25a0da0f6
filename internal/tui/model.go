package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/ui"
)

type boardModel struct {
	ctx        context.Context
	board      *engine.Board
	toastDelay time.Duration
	now        func() time.Time

	width  int
	height int

	stats    engine.UserStats
	quests   []engine.Quest
	selected int
	showDone bool

	adding     bool
	input      textinput.Model
	difficulty engine.Difficulty

	banner    *engine.Outcome
	bannerSeq int
	lastLog   string
}

type completedMsg struct {
	id  string
	out *engine.Outcome
}

type createdMsg struct {
	quest engine.Quest
	err   error
}

// dismissMsg clears the banner it was scheduled for; a newer banner has a newer seq.
type dismissMsg struct{ seq int }

func newBoardModel(ctx context.Context, board *engine.Board, toastDelay time.Duration) boardModel {
	ti := textinput.New()
	ti.Placeholder = "New quest title"
	ti.CharLimit = 120
	ti.Prompt = ui.IconPlus + " "

	m := boardModel{
		ctx:        ctx,
		board:      board,
		toastDelay: toastDelay,
		now:        time.Now,
		input:      ti,
		difficulty: engine.DifficultyModerate,
		lastLog:    "Loaded.",
	}
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd { return nil }

// refresh re-reads the board and keeps the cursor in range.
func (m *boardModel) refresh() {
	m.stats = m.board.Stats()
	all := m.board.Quests()
	visible := all[:0]
	for _, q := range all {
		if q.IsCompleted() && !m.showDone {
			continue
		}
		visible = append(visible, q)
	}
	engine.SortByUrgency(visible, m.now())
	m.quests = visible
	if m.selected >= len(m.quests) {
		m.selected = len(m.quests) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return completedMsg{id: id, out: m.board.CompleteQuest(m.ctx, id)}
	}
}

func (m boardModel) createCmd(title string, d engine.Difficulty) tea.Cmd {
	return func() tea.Msg {
		q, err := m.board.CreateQuest(m.ctx, engine.QuestInput{Title: title, Difficulty: d, DueDate: engine.Today()})
		return createdMsg{quest: q, err: err}
	}
}

func (m boardModel) dismissCmd() tea.Cmd {
	seq := m.bannerSeq
	return tea.Tick(m.toastDelay, func(time.Time) tea.Msg { return dismissMsg{seq: seq} })
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case completedMsg:
		if msg.out == nil {
			m.lastLog = "Nothing to complete."
			m.refresh()
			return m, nil
		}
		m.banner = msg.out
		m.bannerSeq++
		m.lastLog = fmt.Sprintf("Completed %s.", msg.out.QuestTitle)
		m.refresh()
		return m, m.dismissCmd()
	case createdMsg:
		if msg.err != nil {
			m.lastLog = "Add failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Added %q (+%d XP).", msg.quest.Title, msg.quest.XPReward)
		m.refresh()
		return m, nil
	case dismissMsg:
		if msg.seq == m.bannerSeq {
			m.banner = nil
		}
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.banner = nil
			return m, nil
		case "r":
			m.refresh()
			m.lastLog = fmt.Sprintf("Refreshed at %s.", m.now().Format("15:04:05"))
			return m, nil
		case "h":
			m.showDone = !m.showDone
			m.refresh()
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
			return m, nil
		case "a":
			m.adding = true
			m.input.Reset()
			return m, m.input.Focus()
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.quests) {
				return m, nil
			}
			q := m.quests[m.selected]
			if q.IsCompleted() {
				m.lastLog = "Already completed."
				return m, nil
			}
			return m, m.completeCmd(q.ID)
		}
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "tab":
		m.difficulty = nextDifficulty(m.difficulty)
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.lastLog = "Title is required."
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		return m, m.createCmd(title, m.difficulty)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextDifficulty(d engine.Difficulty) engine.Difficulty {
	all := engine.Difficulties()
	for i, x := range all {
		if x == d {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconQuest, "KarmQuest"))
	b.WriteString("\n")
	b.WriteString(ui.StatsLine(m.stats))
	b.WriteString("\n\n")

	if m.banner != nil {
		b.WriteString(ui.OutcomeText(*m.banner))
		b.WriteString("\n\n")
	}

	b.WriteString(ui.H2.Render("Quest Log"))
	b.WriteString("\n")
	if len(m.quests) == 0 {
		b.WriteString(ui.Muted.Render("(no quests, press a to add one)"))
		b.WriteString("\n")
	}
	now := m.now()
	for i, q := range m.quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		title := q.Title
		if q.IsCompleted() {
			title = ui.Muted.Render(ui.IconDone + " " + title)
		} else if i == m.selected {
			title = ui.SelectedRow.Render(title)
		}
		status := ""
		if m.showDone {
			status = "  " + ui.StatusText(q.Status)
		}
		fmt.Fprintf(&b, "%s%s  %s  %s%s\n", cursor, title, ui.DifficultyBadge(q.Difficulty), ui.UrgencyText(q.DueDate.UrgencyAt(now)), status)
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("  ")
		b.WriteString(ui.DifficultyBadge(m.difficulty))
		b.WriteString(ui.Muted.Render("  (tab: difficulty, enter: add, esc: cancel)"))
		b.WriteString("\n")
	} else {
		b.WriteString(ui.Muted.Render("↑/↓ move  c complete  a add  h show done  r refresh  q quit"))
		b.WriteString("\n")
	}
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}
