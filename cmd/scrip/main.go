package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/meigma/scrip"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "flatten":
		flattenCmd(os.Args[2:])
	case "restore":
		restoreCmd(os.Args[2:])
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: scrip <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  flatten  Flatten a directory tree into a single text document")
	fmt.Fprintln(os.Stderr, "  restore  Restore a directory tree from a document")
	fmt.Fprintln(os.Stderr, "  version  Print the version")
}

func flattenCmd(args []string) {
	flags := flag.NewFlagSet("flatten", flag.ExitOnError)
	output := flags.String("o", "", "output file (default stdout)")
	textOnly := flags.Bool("text", false, "fail on content that would need base64 framing")
	exclude := flags.String("exclude", "", "comma-separated exclude patterns")
	configPath := flags.String("config", "", "YAML config file with defaults")
	maxFiles := flags.Int("max-files", 0, "entry limit (0 = default, negative = no limit)")
	progress := flags.Bool("progress", false, "report progress on stderr")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Parse(args)

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: scrip flatten <directory> [options]")
		os.Exit(2)
	}
	dir := flags.Arg(0)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fail(err)
	}
	cfg = mergeConfig(cfg, *exclude, *textOnly, *maxFiles)

	opts := []scrip.FlattenOption{
		scrip.FlattenWithLogger(newLogger(*verbose)),
	}
	if len(cfg.Exclude) > 0 {
		opts = append(opts, scrip.FlattenWithExclude(cfg.Exclude...))
	}
	if cfg.Text {
		opts = append(opts, scrip.FlattenWithTextOnly(true))
	}
	if cfg.MaxFiles != 0 {
		opts = append(opts, scrip.FlattenWithMaxFiles(cfg.MaxFiles))
	}
	if *progress {
		opts = append(opts, scrip.FlattenWithProgress(printProgress))
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fail(err)
		}
		out = f
	}

	w := bufio.NewWriter(out)
	err = scrip.Flatten(ctx, dir, w, opts...)
	if err == nil {
		err = w.Flush()
	}
	if out != os.Stdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		// Do not leave a partial document behind.
		if err != nil {
			os.Remove(*output)
		}
	}
	if err != nil {
		fail(err)
	}
}

func restoreCmd(args []string) {
	flags := flag.NewFlagSet("restore", flag.ExitOnError)
	output := flags.String("o", "", "destination directory (default: input name without extension)")
	maxFiles := flags.Int("max-files", 0, "entry limit (0 = default, negative = no limit)")
	maxFileSize := flags.Int64("max-file-size", 0, "per-file size limit in bytes (0 = default)")
	progress := flags.Bool("progress", false, "report progress on stderr")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Parse(args)

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: scrip restore <document|-> [options]")
		os.Exit(2)
	}
	input := flags.Arg(0)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var in io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		in = f
	}

	dest := *output
	if dest == "" {
		if input == "-" {
			fmt.Fprintln(os.Stderr, "reading from stdin requires -o <directory>")
			os.Exit(2)
		}
		dest = defaultDest(input)
	}

	opts := []scrip.RestoreOption{
		scrip.RestoreWithLogger(newLogger(*verbose)),
	}
	if *maxFiles != 0 {
		opts = append(opts, scrip.RestoreWithMaxFiles(*maxFiles))
	}
	if *maxFileSize != 0 {
		opts = append(opts, scrip.RestoreWithMaxFileSize(*maxFileSize))
	}
	if *progress {
		opts = append(opts, scrip.RestoreWithProgress(printProgress))
	}

	if err := scrip.Restore(ctx, bufio.NewReader(in), dest, opts...); err != nil {
		fail(err)
	}
}

// defaultDest strips the document extension, so tree.scrip restores
// into tree.
func defaultDest(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// newLogger returns a stderr debug logger, or nil when quiet.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func printProgress(e scrip.ProgressEvent) {
	switch {
	case e.Path == "":
		fmt.Fprintf(os.Stderr, "%s...\n", e.Stage)
	case e.FilesTotal > 0:
		fmt.Fprintf(os.Stderr, "%s %d/%d %s\n", e.Stage, e.FilesDone, e.FilesTotal, e.Path)
	default:
		fmt.Fprintf(os.Stderr, "%s %d %s\n", e.Stage, e.FilesDone, e.Path)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
