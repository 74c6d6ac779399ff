package playback

import (
	"github.com/storykeep/storykeep/internal/domain/entities"
)

// Callbacks receive change notifications from a Tracker. Any callback may be
// nil. OnIllustrationChange fires together with OnParagraphChange and passes
// nil when the new paragraph has no generated illustration.
type Callbacks struct {
	OnWordChange         func(index int)
	OnParagraphChange    func(index int, paragraph *entities.Paragraph)
	OnIllustrationChange func(illustration *entities.Illustration)
}

// Tracker converts playback time updates into word/paragraph/illustration
// change notifications. It recomputes both active indices on every tick but
// notifies only on transitions, so high-frequency time updates do not cause
// redundant highlight or image work. Lookups are stateless in time, which
// makes seeks just another tick.
type Tracker struct {
	words      []entities.Word
	paragraphs []entities.Paragraph
	callbacks  Callbacks

	wordIndex      int
	paragraphIndex int
}

// NewTracker creates a tracker over the given transcript and paragraphs. Both
// active indices start at NoActiveIndex.
func NewTracker(words []entities.Word, paragraphs []entities.Paragraph, callbacks Callbacks) *Tracker {
	return &Tracker{
		words:          words,
		paragraphs:     paragraphs,
		callbacks:      callbacks,
		wordIndex:      NoActiveIndex,
		paragraphIndex: NoActiveIndex,
	}
}

// Tick recomputes the active indices for currentTime and fires callbacks for
// every index that changed since the previous tick.
func (t *Tracker) Tick(currentTime float64) {
	wordIdx := LocateActiveWord(currentTime, t.words)
	if wordIdx != t.wordIndex {
		t.wordIndex = wordIdx
		if t.callbacks.OnWordChange != nil {
			t.callbacks.OnWordChange(wordIdx)
		}
	}

	paraIdx := LocateActiveParagraph(currentTime, t.paragraphs)
	if paraIdx != t.paragraphIndex {
		t.paragraphIndex = paraIdx
		var paragraph *entities.Paragraph
		if paraIdx != NoActiveIndex {
			paragraph = &t.paragraphs[paraIdx]
		}
		if t.callbacks.OnParagraphChange != nil {
			t.callbacks.OnParagraphChange(paraIdx, paragraph)
		}
		if t.callbacks.OnIllustrationChange != nil {
			var illustration *entities.Illustration
			if paragraph != nil {
				illustration = paragraph.DisplayIllustration()
			}
			t.callbacks.OnIllustrationChange(illustration)
		}
	}
}

// WordIndex returns the most recently computed active word index
func (t *Tracker) WordIndex() int {
	return t.wordIndex
}

// ParagraphIndex returns the most recently computed active paragraph index
func (t *Tracker) ParagraphIndex() int {
	return t.paragraphIndex
}

// SetWords swaps the tracked transcript, e.g. when the listener switches to a
// translation. The word index resets so the next tick re-emits the highlight
// for the new word sequence.
func (t *Tracker) SetWords(words []entities.Word) {
	t.words = words
	t.wordIndex = NoActiveIndex
}
