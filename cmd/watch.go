package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"fontembed/internal/core/domain"
	"fontembed/internal/core/services"
	"fontembed/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate headers when fonts change",
	Long: `Watch the source fonts listed in the manifest and regenerate their
headers whenever a file changes.

Useful during UI iteration: swap a font file in place and the embedded
header is rebuilt before your next compile.

Use --quiet to suppress per-change notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress regeneration notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	specs := manifestSpecs()
	if len(specs) == 0 {
		fmt.Println(ui.FormatWarning("Manifest has no fonts. Add one with 'fontembed add'."))
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify delivers reliably for directories, so watch each distinct
	// parent directory and filter events down to manifest sources
	specsBySource := make(map[string][]domain.EmbedSpec)
	for _, spec := range specs {
		specsBySource[spec.Source] = append(specsBySource[spec.Source], spec)
	}

	watched := make(map[string]bool)
	for source := range specsBySource {
		dir := filepath.Dir(source)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Watching fonts..."))
		for dir := range watched {
			fmt.Println(ui.FormatMuted("Watching: " + appProject.Rel(dir)))
		}
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce rapid event bursts (editors and downloads fire several
	// writes per save)
	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	regenerate := func() {
		for source := range pending {
			for _, spec := range specsBySource[source] {
				resp, _ := embedService.Execute(ctx, services.EmbedRequest{Spec: spec})
				if !watchQuiet {
					printEmbedResult(*resp)
				}
			}
		}
		pending = make(map[string]bool)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if _, tracked := specsBySource[event.Name]; !tracked {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Rename) {

				pending[event.Name] = true
				timer.Reset(debounce)
			}

		case <-timer.C:
			regenerate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}
