package playback

import (
	"testing"

	"github.com/storykeep/storykeep/internal/domain/entities"
)

func ptr(f float64) *float64 { return &f }

func sampleWords() []entities.Word {
	return []entities.Word{
		{Word: "once", StartTime: 0.0, EndTime: 0.5},
		{Word: "upon", StartTime: 0.5, EndTime: 1.0},
		{Word: "a", StartTime: 1.0, EndTime: 1.2},
		{Word: "time", StartTime: 1.5, EndTime: 2.0}, // gap before this word
		{Word: "there", StartTime: 2.0, EndTime: 2.6},
	}
}

func TestLocateActiveWord_InRange(t *testing.T) {
	words := sampleWords()

	tests := []struct {
		name string
		time float64
		want int
	}{
		{"start of first word", 0.0, 0},
		{"middle of first word", 0.25, 0},
		{"boundary belongs to earlier word", 0.5, 0},
		{"middle of second word", 0.75, 1},
		{"inclusive end of third word", 1.2, 2},
		{"after gap", 1.7, 3},
		{"inclusive end of last word", 2.6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocateActiveWord(tt.time, words); got != tt.want {
				t.Errorf("LocateActiveWord(%v) = %d, want %d", tt.time, got, tt.want)
			}
		})
	}
}

func TestLocateActiveWord_NoMatch(t *testing.T) {
	words := sampleWords()

	tests := []struct {
		name string
		time float64
	}{
		{"before first word", -0.5},
		{"in a gap", 1.3},
		{"after last word", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocateActiveWord(tt.time, words); got != NoActiveIndex {
				t.Errorf("LocateActiveWord(%v) = %d, want NoActiveIndex", tt.time, got)
			}
		})
	}

	if got := LocateActiveWord(1.0, nil); got != NoActiveIndex {
		t.Errorf("LocateActiveWord on empty transcript = %d, want NoActiveIndex", got)
	}
}

func TestLocateActiveWord_EveryWordCovered(t *testing.T) {
	words := sampleWords()
	for i, w := range words {
		for _, tm := range []float64{w.StartTime, (w.StartTime + w.EndTime) / 2, w.EndTime} {
			got := LocateActiveWord(tm, words)
			// Shared boundaries resolve to the earlier word.
			if got != i && !(got == i-1 && tm == w.StartTime && words[i-1].EndTime == tm) {
				t.Errorf("LocateActiveWord(%v) = %d, want %d", tm, got, i)
			}
		}
	}
}

func TestLocateActiveWord_OverlapReturnsFirstMatch(t *testing.T) {
	words := []entities.Word{
		{Word: "one", StartTime: 0.0, EndTime: 2.0},
		{Word: "two", StartTime: 1.0, EndTime: 3.0},
		{Word: "three", StartTime: 3.5, EndTime: 4.0},
	}

	if got := LocateActiveWord(1.5, words); got != 0 {
		t.Errorf("overlapping ranges: LocateActiveWord(1.5) = %d, want first match 0", got)
	}
	if got := LocateActiveWord(2.5, words); got != 1 {
		t.Errorf("LocateActiveWord(2.5) = %d, want 1", got)
	}

	// Tolerance boundary: a covering word separated by non-covering ones is
	// not found, the binary-search candidate stands.
	disjoint := []entities.Word{
		{Word: "long", StartTime: 0.0, EndTime: 10.0},
		{Word: "short", StartTime: 2.0, EndTime: 3.0},
		{Word: "late", StartTime: 4.0, EndTime: 5.0},
	}
	if got := LocateActiveWord(4.5, disjoint); got != 2 {
		t.Errorf("non-adjacent overlap: LocateActiveWord(4.5) = %d, want 2", got)
	}
}

func TestLocateActiveParagraph(t *testing.T) {
	paragraphs := []entities.Paragraph{
		{SequenceOrder: 0, StartTime: ptr(0.0), EndTime: ptr(5.0)},
		{SequenceOrder: 1}, // untimed, never active
		{SequenceOrder: 2, StartTime: ptr(5.0), EndTime: ptr(9.0)},
	}

	if got := LocateActiveParagraph(2.0, paragraphs); got != 0 {
		t.Errorf("LocateActiveParagraph(2.0) = %d, want 0", got)
	}
	if got := LocateActiveParagraph(7.0, paragraphs); got != 2 {
		t.Errorf("LocateActiveParagraph(7.0) = %d, want 2", got)
	}
	if got := LocateActiveParagraph(12.0, paragraphs); got != NoActiveIndex {
		t.Errorf("LocateActiveParagraph(12.0) = %d, want NoActiveIndex", got)
	}
}

func TestLocateActiveParagraph_Idempotent(t *testing.T) {
	paragraphs := []entities.Paragraph{
		{SequenceOrder: 0, StartTime: ptr(0.0), EndTime: ptr(5.0)},
		{SequenceOrder: 1, StartTime: ptr(5.0), EndTime: ptr(9.0)},
	}

	first := LocateActiveParagraph(6.0, paragraphs)
	second := LocateActiveParagraph(6.0, paragraphs)
	if first != second {
		t.Errorf("idempotence violated: %d != %d", first, second)
	}
}

func TestLocateActiveParagraph_UntimedOnly(t *testing.T) {
	paragraphs := []entities.Paragraph{
		{SequenceOrder: 0},
		{SequenceOrder: 1, StartTime: ptr(1.0)}, // missing end counts as untimed
	}

	if got := LocateActiveParagraph(1.0, paragraphs); got != NoActiveIndex {
		t.Errorf("untimed paragraphs must never be active, got %d", got)
	}
}
