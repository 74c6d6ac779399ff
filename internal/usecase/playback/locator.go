package playback

import (
	"sort"

	"github.com/storykeep/storykeep/internal/domain/entities"
)

// NoActiveIndex is the sentinel returned when no word or paragraph covers the
// current playback time: before the first word, after the last, or in a gap.
const NoActiveIndex = -1

// LocateActiveWord returns the index of the first word whose time range covers
// currentTime (inclusive bounds), or NoActiveIndex when there is no match.
// Words must be sorted by start time; transcripts can run long, so the lookup
// binary-searches the start times instead of scanning.
func LocateActiveWord(currentTime float64, words []entities.Word) int {
	idx := sort.Search(len(words), func(i int) bool {
		return words[i].StartTime > currentTime
	}) - 1
	if idx < 0 || words[idx].EndTime < currentTime {
		return NoActiveIndex
	}
	// Overlapping ranges violate the transcript contract. Tolerated to the
	// extent of a contiguous run of covering words, where the earliest wins; a
	// covering word separated from idx by non-covering ones stays undetected,
	// keeping well-formed lookups at O(log n).
	for idx > 0 && words[idx-1].StartTime <= currentTime && currentTime <= words[idx-1].EndTime {
		idx--
	}
	return idx
}

// LocateActiveParagraph returns the index of the first paragraph whose time
// range covers currentTime, or NoActiveIndex. Paragraphs without timing are
// skipped, so a plain scan is used; stories hold at most a few dozen
// paragraphs.
func LocateActiveParagraph(currentTime float64, paragraphs []entities.Paragraph) int {
	for i := range paragraphs {
		if paragraphs[i].Covers(currentTime) {
			return i
		}
	}
	return NoActiveIndex
}
