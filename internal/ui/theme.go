package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/up2sumit/KarmQuest/internal/engine"
)

// KarmQuest theme (CLI + TUI).

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconCoin    = "🪙"
	IconFlame   = "🔥"
	IconLock    = "🔒"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconClock   = "⏳"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cRare    = lipgloss.Color("39")  // sky
	cEpic    = lipgloss.Color("135") // purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Celebration = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cGold).Padding(0, 2)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatusText is the status column shown when completed quests are listed.
func StatusText(status engine.QuestStatus) string {
	switch status {
	case engine.QuestCompleted:
		return Good.Render("completed")
	case engine.QuestActive:
		return H2.Render("active")
	default:
		return Muted.Render(string(status))
	}
}

// DifficultyBadge renders the tier label in its catalog colour, e.g. "Kathin +50".
func DifficultyBadge(d engine.Difficulty) string {
	info, err := engine.LookupDifficulty(d)
	if err != nil {
		return Muted.Render(string(d))
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(info.Color))
	return style.Render(fmt.Sprintf("%s +%d", info.Label, info.XP))
}

func RarityText(r engine.Rarity) string {
	switch r {
	case engine.RarityRare:
		return lipgloss.NewStyle().Foreground(cRare).Render("rare")
	case engine.RarityEpic:
		return lipgloss.NewStyle().Bold(true).Foreground(cEpic).Render("epic")
	case engine.RarityLegendary:
		return Gold.Render("legendary")
	default:
		return Muted.Render(string(r))
	}
}

func UrgencyText(u engine.Urgency) string {
	switch {
	case u.IsOverdue:
		return Bad.Render(u.Label)
	case u.IsDueToday:
		return Warn.Render(u.Label)
	case u.IsDueSoon:
		return Gold.Render(u.Label)
	default:
		return Muted.Render(u.Label)
	}
}

// XPBar draws value/total as a fixed-width bar.
func XPBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + Good.Render(strings.Repeat("#", filled)) + Muted.Render(strings.Repeat("-", width-filled)) + "]"
}

// StatsLine is the one-line player summary used by status and the board header.
func StatsLine(st engine.UserStats) string {
	return fmt.Sprintf("%s %s  Level %d %s %d/%d XP  %s %d  %s %d",
		st.AvatarEmoji, st.Username, st.Level, XPBar(st.XP, st.XPToNext, 20), st.XP, st.XPToNext,
		IconCoin, st.Coins, IconFlame, st.Streak)
}

// OutcomeText renders a completion outcome. Toasts are one line; celebrations may span several.
func OutcomeText(o engine.Outcome) string {
	gain := fmt.Sprintf("+%d XP  +%d %s", o.XPEarned, o.CoinsEarned, IconCoin)
	if !o.IsCelebration() {
		return Good.Render(IconDone+" "+o.QuestTitle) + "  " + gain
	}

	lines := []string{Gold.Render(IconSparkle + " " + o.QuestTitle + " " + IconSparkle), gain}
	if o.LevelsGained > 0 {
		lines = append(lines, fmt.Sprintf("%s reached level %d", BadgeLevelUp, o.FinalLevel))
	}
	for _, a := range o.NewlyUnlocked {
		lines = append(lines, fmt.Sprintf("%s %s %s (%s)", IconTrophy, a.Icon, a.Title, RarityText(a.Rarity)))
	}
	return Celebration.Render(strings.Join(lines, "\n"))
}
