package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/storykeep/storykeep/internal/domain/entities"
)

func ptr(f float64) *float64 { return &f }

// SeedStories returns the demo stories the development backend starts with.
// The first story carries full word timing, illustrations and a translation so
// the player has something meaningful to synchronize against.
func SeedStories() []*entities.Story {
	now := time.Now().UTC()

	weaver := &entities.Story{
		ID:          uuid.MustParse("7b0c2cb4-5a3e-4a39-b1a2-9a6f0a3f51de"),
		Title:       "The Weaver and the River",
		Description: "A grandmother's tale about patience, as told in the village of Kita.",
		Language:    "en",
		AudioURL:    "/media/demo/weaver.mp3",
		Duration:    14.5,
		IsPublished: true,
		CreatedAt:   now.Add(-48 * time.Hour),
		UpdatedAt:   now.Add(-48 * time.Hour),
		Paragraphs: []entities.Paragraph{
			{
				ID:            uuid.MustParse("b1f9b2e0-30c1-4f34-a1f4-2a42cbb07a01"),
				SequenceOrder: 0,
				Content:       "Long ago a weaver lived beside the river.",
				StartTime:     ptr(0.0),
				EndTime:       ptr(6.0),
				Words: []entities.Word{
					{Word: "Long", StartTime: 0.0, EndTime: 0.6},
					{Word: "ago", StartTime: 0.6, EndTime: 1.1},
					{Word: "a", StartTime: 1.1, EndTime: 1.3},
					{Word: "weaver", StartTime: 1.3, EndTime: 2.0},
					{Word: "lived", StartTime: 2.2, EndTime: 2.8},
					{Word: "beside", StartTime: 2.8, EndTime: 3.5},
					{Word: "the", StartTime: 3.5, EndTime: 3.7},
					{Word: "river.", StartTime: 3.7, EndTime: 4.4},
				},
				Illustrations: []entities.Illustration{
					{
						ID:         uuid.MustParse("7c2b1d8e-9f44-4f6a-8d3b-0f1f2e3c4d01"),
						ImageURL:   "/media/demo/weaver-1.png",
						PromptUsed: "a weaver working beside a wide river at dawn, folk-art style",
						Style:      "folk-art",
						Status:     entities.IllustrationStatusGenerated,
					},
				},
			},
			{
				ID:            uuid.MustParse("b1f9b2e0-30c1-4f34-a1f4-2a42cbb07a02"),
				SequenceOrder: 1,
				Content:       "Each day the river asked her for a thread.",
				StartTime:     ptr(6.0),
				EndTime:       ptr(10.5),
				Words: []entities.Word{
					{Word: "Each", StartTime: 6.0, EndTime: 6.5},
					{Word: "day", StartTime: 6.5, EndTime: 7.0},
					{Word: "the", StartTime: 7.0, EndTime: 7.2},
					{Word: "river", StartTime: 7.2, EndTime: 7.8},
					{Word: "asked", StartTime: 7.8, EndTime: 8.4},
					{Word: "her", StartTime: 8.4, EndTime: 8.7},
					{Word: "for", StartTime: 8.7, EndTime: 9.0},
					{Word: "a", StartTime: 9.0, EndTime: 9.1},
					{Word: "thread.", StartTime: 9.1, EndTime: 9.8},
				},
				Illustrations: []entities.Illustration{
					{
						ID:       uuid.MustParse("7c2b1d8e-9f44-4f6a-8d3b-0f1f2e3c4d02"),
						ImageURL: "/media/demo/weaver-2.png",
						Status:   entities.IllustrationStatusPending,
					},
					{
						ID:         uuid.MustParse("7c2b1d8e-9f44-4f6a-8d3b-0f1f2e3c4d03"),
						ImageURL:   "/media/demo/weaver-2b.png",
						PromptUsed: "a river reaching for a glowing thread, folk-art style",
						Style:      "folk-art",
						Status:     entities.IllustrationStatusGenerated,
					},
				},
			},
			{
				ID:            uuid.MustParse("b1f9b2e0-30c1-4f34-a1f4-2a42cbb07a03"),
				SequenceOrder: 2,
				Content:       "And so the cloth grew wider than the water.",
				StartTime:     ptr(10.5),
				EndTime:       ptr(14.5),
				Words: []entities.Word{
					{Word: "And", StartTime: 10.5, EndTime: 10.9},
					{Word: "so", StartTime: 10.9, EndTime: 11.3},
					{Word: "the", StartTime: 11.3, EndTime: 11.5},
					{Word: "cloth", StartTime: 11.5, EndTime: 12.1},
					{Word: "grew", StartTime: 12.1, EndTime: 12.6},
					{Word: "wider", StartTime: 12.6, EndTime: 13.2},
					{Word: "than", StartTime: 13.2, EndTime: 13.5},
					{Word: "the", StartTime: 13.5, EndTime: 13.7},
					{Word: "water.", StartTime: 13.7, EndTime: 14.4},
				},
			},
		},
		Translations: []entities.Translation{
			{
				Language: "fr",
				Text:     "Il y a longtemps, une tisserande vivait au bord de la rivière.",
				Words: []entities.Word{
					{Word: "Il", StartTime: 0.0, EndTime: 0.4},
					{Word: "y", StartTime: 0.4, EndTime: 0.6},
					{Word: "a", StartTime: 0.6, EndTime: 0.8},
					{Word: "longtemps,", StartTime: 0.8, EndTime: 1.8},
					{Word: "une", StartTime: 1.8, EndTime: 2.1},
					{Word: "tisserande", StartTime: 2.1, EndTime: 3.0},
					{Word: "vivait", StartTime: 3.0, EndTime: 3.6},
					{Word: "au", StartTime: 3.6, EndTime: 3.8},
					{Word: "bord", StartTime: 3.8, EndTime: 4.2},
					{Word: "de", StartTime: 4.2, EndTime: 4.4},
					{Word: "la", StartTime: 4.4, EndTime: 4.6},
					{Word: "rivière.", StartTime: 4.6, EndTime: 5.4},
				},
			},
			// Text-only translation: shown without highlighting.
			{Language: "sw", Text: "Zamani za kale mfumaji aliishi kando ya mto."},
		},
	}

	drum := &entities.Story{
		ID:          uuid.MustParse("9e4d6f10-2b7a-4c5d-8e9f-1a2b3c4d5e6f"),
		Title:       "Why the Drum Speaks",
		Description: "Recorded at the harvest gathering, untimed transcript only.",
		Language:    "en",
		AudioURL:    "/media/demo/drum.mp3",
		Duration:    9.0,
		IsPublished: true,
		CreatedAt:   now.Add(-24 * time.Hour),
		UpdatedAt:   now.Add(-24 * time.Hour),
		Paragraphs: []entities.Paragraph{
			{
				ID:            uuid.MustParse("c2e8a1d4-7b3f-4e2a-9c1d-5f6e7a8b9c0d"),
				SequenceOrder: 0,
				Content:       "The drum remembers every hand that has struck it.",
			},
		},
	}

	return []*entities.Story{weaver, drum}
}
