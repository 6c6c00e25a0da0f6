package engine

import "testing"

func TestEvaluateAchievements(t *testing.T) {
	all := []Achievement{
		{ID: "a", XPRequired: 0},
		{ID: "b", XPRequired: 100, Unlocked: true},
		{ID: "c", XPRequired: 150},
		{ID: "d", XPRequired: 151},
	}
	ev := EvaluateAchievements(all, 150)

	if len(ev.NewlyUnlocked) != 2 || ev.NewlyUnlocked[0].ID != "a" || ev.NewlyUnlocked[1].ID != "c" {
		t.Fatalf("NewlyUnlocked=%+v, want a and c", ev.NewlyUnlocked)
	}
	wantUnlocked := map[string]bool{"a": true, "b": true, "c": true, "d": false}
	for _, a := range ev.Updated {
		if a.Unlocked != wantUnlocked[a.ID] {
			t.Fatalf("%s unlocked=%v, want %v", a.ID, a.Unlocked, wantUnlocked[a.ID])
		}
	}
	if all[0].Unlocked || all[2].Unlocked {
		t.Fatalf("input slice was modified")
	}
}

func TestEvaluateAchievementsNeverRelocks(t *testing.T) {
	all := []Achievement{{ID: "x", XPRequired: 500, Unlocked: true}}
	ev := EvaluateAchievements(all, 0)
	if !ev.Updated[0].Unlocked {
		t.Fatalf("achievement re-locked")
	}
	if len(ev.NewlyUnlocked) != 0 {
		t.Fatalf("already unlocked achievement reported as new")
	}
}

func TestNextAndCount(t *testing.T) {
	all := DefaultAchievements()
	if got := CountUnlocked(all); got != 5 {
		t.Fatalf("CountUnlocked=%d, want 5", got)
	}
	next, ok := NextAchievement(all)
	if !ok || next.ID != "11" {
		t.Fatalf("NextAchievement=%+v ok=%v, want id 11", next, ok)
	}

	for i := range all {
		all[i].Unlocked = true
	}
	if _, ok := NextAchievement(all); ok {
		t.Fatalf("expected no next achievement when all are unlocked")
	}
}
