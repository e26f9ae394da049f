// Command cardseer resolves Magic card names and decklists against the
// Scryfall API and renders them as text: a terminal-hosted harness for the
// widget layer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/im-sticky/mtg-card-seer/internal/cache"
	"github.com/im-sticky/mtg-card-seer/internal/config"
	"github.com/im-sticky/mtg-card-seer/internal/decklist"
	"github.com/im-sticky/mtg-card-seer/internal/events"
	"github.com/im-sticky/mtg-card-seer/internal/export"
	"github.com/im-sticky/mtg-card-seer/internal/fetcher"
	"github.com/im-sticky/mtg-card-seer/internal/scryfall"
	"github.com/im-sticky/mtg-card-seer/internal/widget"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: cardseer <command> [flags]

Commands:
  card <name>        resolve and display a single card
  deck <file|url>    resolve and display a decklist
  export <file>      convert a decklist between formats
  watch <file>       display a decklist and re-render on file changes

Run 'cardseer <command> -h' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "card":
		err = runCard(ctx, cfg, os.Args[2:])
	case "deck":
		err = runDeck(ctx, cfg, os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "watch":
		err = runWatch(ctx, cfg, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("cardseer: %v", err)
	}
}

// buildLookup wires the process-wide cache, client, and fetcher the widgets
// share.
func buildLookup(cfg *config.Config) (widget.Lookup, error) {
	opts, err := cfg.ClientOptions()
	if err != nil {
		return widget.Lookup{}, err
	}

	client := scryfall.NewClientWithOptions(opts)
	lookupCache := cache.New()
	dispatcher := events.NewDispatcher()

	if cfg.App.DebugMode {
		dispatcher.Register(&events.ObserverFunc{
			ObserverName: "debug-log",
			Fn: func(e events.Event) error {
				log.Printf("[Event] %s from %s", e.Type, e.Source)
				return nil
			},
		})
	}

	return widget.Lookup{
		Fetcher: fetcher.New(client, lookupCache),
		Cache:   lookupCache,
		Events:  dispatcher,
	}, nil
}

func runCard(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("card", flag.ExitOnError)
	set := fs.String("set", "", "set code of the printing")
	collector := fs.String("collector", "", "collector number within the set")
	face := fs.Int("face", 0, "show only the Nth face (1-based)")
	prices := fs.Bool("prices", false, "show price quotes")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("card: missing card name")
	}
	name := strings.Join(fs.Args(), " ")

	lookup, err := buildLookup(cfg)
	if err != nil {
		return err
	}

	w, err := widget.NewCardInline(ctx, widget.CardInlineOptions{
		Name:      name,
		Set:       *set,
		Collector: *collector,
		Face:      *face,
		PriceInfo: *prices,
	}, lookup)
	if err != nil {
		return err
	}

	if !w.State().Fetched {
		return fmt.Errorf("no card found for %q", name)
	}

	printCard(os.Stdout, w)
	return nil
}

func runDeck(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("deck", flag.ExitOnError)
	heading := fs.String("heading", "", "heading label for the list")
	hidePreview := fs.Bool("hide-preview", false, "suppress the preview pane")
	inlineSideboard := fs.Bool("inline-sideboard", false, "render the sideboard inline")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("deck: missing decklist file or URL")
	}
	target := fs.Arg(0)

	lookup, err := buildLookup(cfg)
	if err != nil {
		return err
	}

	w := widget.NewDeckList(widget.DeckListOptions{
		Heading:         *heading,
		HidePreview:     *hidePreview,
		InlineSideboard: *inlineSideboard,
	}, widget.DeckListDeps{
		Fetcher: lookup.Fetcher,
		Events:  lookup.Events,
	})

	if err := loadDeck(ctx, w, target); err != nil {
		return err
	}

	printDeck(os.Stdout, w)
	return nil
}

// loadDeck loads a decklist from a URL or a local file.
func loadDeck(ctx context.Context, w *widget.DeckList, target string) error {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return w.LoadSource(ctx, target)
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("read decklist: %w", err)
	}
	return w.LoadText(ctx, string(raw))
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	to := fs.String("to", string(export.FormatMTGA), "target format: mtga or mtgo")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("export: missing decklist file")
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read decklist: %w", err)
	}

	list := decklist.Parse(string(raw))
	text, err := export.Text(list, export.Format(*to))
	if err != nil {
		return err
	}

	fmt.Print(text)
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	heading := fs.String("heading", "", "heading label for the list")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("watch: missing decklist file")
	}
	path := fs.Arg(0)

	lookup, err := buildLookup(cfg)
	if err != nil {
		return err
	}

	w := widget.NewDeckList(widget.DeckListOptions{
		Heading: *heading,
	}, widget.DeckListDeps{
		Fetcher: lookup.Fetcher,
		Events:  lookup.Events,
	})

	render := func() {
		if err := loadDeck(ctx, w, path); err != nil {
			log.Printf("Failed to load decklist: %v", err)
			return
		}
		printDeck(os.Stdout, w)
	}

	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	log.Printf("Watching %s for changes (Ctrl-C to stop)", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
