// Command stlpreview renders Structured Table Language text.
//
// It reads STL from a file argument or standard input and prints the table
// for the chosen surface. HTML input is recognised by extension or content
// and its -table'th table is converted to STL first. With -db the text is also recorded as an edit of
// the document's stlString field, the same way an editor would persist it.
//
// Usage:
//
//	stlpreview [flags] [file.stl]
//
// Modes:
//
//	-mode table    the rendered table (default)
//	-mode editor   the editing markup: text area and live preview
//	-mode summary  the compact block preview, captioned with -caption
//	-mode schema   the block declaration as JSON
//	-mode import   the input written back as canonical STL
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/tsawler/stlfield"
	"github.com/tsawler/stlfield/docstore"
	"github.com/tsawler/stlfield/field"
	"github.com/tsawler/stlfield/format"
	"github.com/tsawler/stlfield/htmldoc"
	"github.com/tsawler/stlfield/render"
	"github.com/tsawler/stlfield/schema"
	"github.com/tsawler/stlfield/stl"
)

type config struct {
	mode    string
	surface string
	class   string
	caption string
	dbPath  string
	docID   string
	logFile string
	table   int
	debug   bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "table", "output: table, editor, summary, schema or import")
	flag.StringVar(&cfg.surface, "surface", render.SurfaceHTML, "render surface: html, markdown or text")
	flag.StringVar(&cfg.class, "class", "border", "CSS class for html tables")
	flag.StringVar(&cfg.caption, "caption", "", "table caption")
	flag.StringVar(&cfg.dbPath, "db", "", "SQLite document store to record the edit in")
	flag.StringVar(&cfg.docID, "doc", "default", "document id used with -db")
	flag.StringVar(&cfg.logFile, "log-json", "", "also write JSON logs to this file")
	flag.IntVar(&cfg.table, "table", 0, "index of the table to take from HTML input")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(context.Background(), cfg, flag.Arg(0), os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("stlpreview failed", "err", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger logs text to stderr and, when configured, JSON to a file
func newLogger(cfg config) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, handlerOpts)}
	closeFn := func() {}

	if cfg.logFile != "" {
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closeFn = func() { f.Close() }
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

func run(ctx context.Context, cfg config, path string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if cfg.mode == "schema" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(schema.TableBlock)
	}

	text, err := readInput(path, stdin)
	if err != nil {
		return err
	}

	if detectInput(path, text) == format.HTML {
		text, err = importHTML(text, cfg.table)
		if err != nil {
			return err
		}
		logger.Debug("imported html table", "index", cfg.table)
	}

	if cfg.mode == "import" {
		t, err := stl.Parse(text)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, stl.Format(t))
		return err
	}

	opts := field.Options{
		Value:   text,
		Surface: cfg.surface,
		Class:   cfg.class,
		Logger:  logger,
	}

	if cfg.dbPath != "" {
		store, err := docstore.Open(cfg.dbPath, docstore.Options{Logger: logger})
		if err != nil {
			return err
		}
		defer store.Close()

		if err := recordEdit(ctx, store, cfg, text, opts); err != nil {
			return err
		}
	}

	switch cfg.mode {
	case "table":
		err := stlfield.FromText(text).Surface(cfg.surface).Class(cfg.class).Render(stdout)
		if errors.Is(err, stlfield.ErrEmptyTable) {
			logger.Warn("nothing to preview", "err", err)
			_, err = fmt.Fprintln(stdout, field.EmptyIndicator)
		}
		return err

	case "editor":
		c, err := schema.TableBlock.NewInput(schema.FieldSTL, opts)
		if err != nil {
			return err
		}
		return c.Render(stdout)

	case "summary":
		view := field.NewSummaryView(field.SummaryOptions{Surface: cfg.surface, Class: cfg.class})
		preview := schema.TableBlock.PreviewValues(map[string]string{
			schema.FieldCaption: cfg.caption,
			schema.FieldSTL:     text,
		})
		return preview.Render(stdout, view)

	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

// recordEdit replays the input as a user edit of the stlString field and
// stores the caption alongside it
func recordEdit(ctx context.Context, store *docstore.Store, cfg config, text string, opts field.Options) error {
	opts.Value = ""
	opts.OnChange = store.Channel(ctx, cfg.docID, schema.FieldSTL)

	c, err := schema.TableBlock.NewInput(schema.FieldSTL, opts)
	if err != nil {
		return err
	}
	ev := c.OnTextEdited(text)
	opts.Logger.Debug("recorded edit", "doc", cfg.docID, "patches", len(ev.Patches))

	if cfg.caption != "" {
		caption := field.PatchEventFrom(field.Set(cfg.caption, schema.FieldCaption))
		if err := store.Apply(ctx, cfg.docID, caption); err != nil {
			return err
		}
	}
	return nil
}

// detectInput prefers the file extension and falls back to the content
func detectInput(path, text string) format.Format {
	if f := format.Detect(path); f != format.Unknown {
		return f
	}
	return format.DetectFromMagic([]byte(text))
}

// importHTML converts the index'th table of an HTML document to STL text
func importHTML(text string, index int) (string, error) {
	r, err := htmldoc.OpenReader(strings.NewReader(text))
	if err != nil {
		return "", err
	}
	defer r.Close()

	t, err := r.Table(index)
	if err != nil {
		return "", err
	}
	return stl.Format(t), nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
