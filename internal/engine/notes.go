package engine

import (
	"context"

	"github.com/google/uuid"
)

type NoteInput struct {
	Title   string
	Content string
	Tags    []string
	Color   string
	Emoji   string
}

const defaultNoteEmoji = "📜"

// CreateNote prepends a note. Missing colour and emoji get defaults.
func (b *Board) CreateNote(ctx context.Context, in NoteInput) Note {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := Note{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Tags:      append([]string{}, in.Tags...),
		Color:     in.Color,
		CreatedAt: b.now(),
		Emoji:     in.Emoji,
	}
	if n.Color == "" {
		n.Color = NoteColors[len(b.state.Notes)%len(NoteColors)]
	}
	if n.Emoji == "" {
		n.Emoji = defaultNoteEmoji
	}

	b.state.Notes = append([]Note{n}, b.state.Notes...)
	b.save(ctx)
	n.Tags = append([]string{}, n.Tags...)
	return n
}

// DeleteNote removes a note. It reports false, and does nothing, for an unknown id.
func (b *Board) DeleteNote(ctx context.Context, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.state.Notes {
		if b.state.Notes[i].ID != id {
			continue
		}
		notes := make([]Note, 0, len(b.state.Notes)-1)
		notes = append(notes, b.state.Notes[:i]...)
		notes = append(notes, b.state.Notes[i+1:]...)
		b.state.Notes = notes
		b.save(ctx)
		return true
	}
	return false
}
