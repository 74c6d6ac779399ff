package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/storykeep/storykeep/internal/adapter/api"
	dtostory "github.com/storykeep/storykeep/internal/adapter/dto/story"
	"github.com/storykeep/storykeep/internal/domain/entities"
	"github.com/storykeep/storykeep/internal/infrastructure/cache"
	"github.com/storykeep/storykeep/internal/usecase/playback"
	"github.com/storykeep/storykeep/internal/usecase/processing"
	"github.com/storykeep/storykeep/pkg/config"
)

// tickInterval mirrors the cadence of media-element time updates
const tickInterval = 250 * time.Millisecond

func main() {
	var (
		storyID  = flag.String("story", "", "id of the story to play")
		language = flag.String("lang", "", "transcript language (translation code, empty for original)")
		seek     = flag.Float64("seek", 0, "start playback at this offset in seconds")
		upload   = flag.String("upload", "", "upload this audio file first and play the resulting story")
		title    = flag.String("title", "", "title for the uploaded story")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client := api.NewClient(cfg.Client.BaseURL, cfg.Client.RequestTimeout, logger)
	if cfg.Client.Token != "" {
		client.SetToken(cfg.Client.Token)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	id := *storyID
	if *upload != "" {
		id, err = uploadAndWait(ctx, client, cfg, *upload, *title)
		if err != nil {
			log.Fatalf("Upload failed: %v", err)
		}
	}
	if id == "" {
		log.Fatal("either -story or -upload is required")
	}

	store := cache.NewStoryStore(cfg.Client.CacheTTL)
	story, ok := store.Get(id)
	if !ok {
		story, err = client.GetStory(ctx, id)
		if err != nil {
			log.Fatalf("Failed to fetch story: %v", err)
		}
		store.Put(story)
	}

	play(ctx, story, *language, *seek)
}

// uploadAndWait uploads the audio file and blocks until the backend reports a
// terminal processing state, printing progress along the way.
func uploadAndWait(ctx context.Context, client *api.Client, cfg *config.Config, path, title string) (string, error) {
	if title == "" {
		title = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	storyID, err := client.UploadStory(ctx, dtostory.UploadStoryRequest{Title: title}, path, f)
	if err != nil {
		return "", err
	}
	fmt.Printf("Uploaded. Story id: %s\n", storyID)

	watcher := processing.NewWatcher(client, zap.NewNop())
	result := make(chan error, 1)
	watch := watcher.Watch(ctx, storyID, processing.Callbacks{
		OnUpdate: func(status *entities.ProcessingStatus) {
			fmt.Printf("  %s (%d%%) %s\n", status.CurrentStep, status.ProgressPercentage, status.Message)
		},
		OnComplete: func(status *entities.ProcessingStatus) {
			fmt.Printf("  %s (%d%%) %s\n", status.CurrentStep, status.ProgressPercentage, status.Message)
			result <- nil
		},
		OnError: func(message string) {
			result <- fmt.Errorf("%s", message)
		},
	}, processing.Options{
		PollInterval:       cfg.Poller.Interval,
		MaxAttempts:        cfg.Poller.MaxAttempts,
		ErrorBackoffFactor: cfg.Poller.ErrorBackoffFactor,
	})
	defer watch.Stop()

	select {
	case err := <-result:
		if err != nil {
			return "", err
		}
		return storyID, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// play runs a wall-clock playback simulation: the ticker stands in for the
// audio element's time updates and the tracker turns them into highlight,
// paragraph and illustration transitions printed to the terminal.
func play(ctx context.Context, story *entities.Story, language string, seek float64) {
	words := story.Transcript(language)
	if len(words) == 0 && language != "" {
		fmt.Printf("No word timing for %q; showing original transcript.\n", language)
		words = story.Words()
	}

	fmt.Printf("\n▶ %s (%.1fs)\n\n", story.Title, story.Duration)

	tracker := playback.NewTracker(words, story.Paragraphs, playback.Callbacks{
		OnWordChange: func(index int) {
			if index == playback.NoActiveIndex {
				return
			}
			fmt.Printf("    %s\n", words[index].Word)
		},
		OnParagraphChange: func(index int, paragraph *entities.Paragraph) {
			if paragraph == nil {
				return
			}
			fmt.Printf("\n¶ %s\n", paragraph.Content)
		},
		OnIllustrationChange: func(illustration *entities.Illustration) {
			if illustration == nil {
				fmt.Println("  [no illustration]")
				return
			}
			fmt.Printf("  [illustration: %s]\n", illustration.ImageURL)
		},
	})

	end := story.Duration
	if last := len(words) - 1; last >= 0 && words[last].EndTime > end {
		end = words[last].EndTime
	}

	start := time.Now()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return
		case <-ticker.C:
			currentTime := seek + time.Since(start).Seconds()
			tracker.Tick(currentTime)
			if currentTime > end {
				fmt.Println("\nDone.")
				return
			}
		}
	}
}
