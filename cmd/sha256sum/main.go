// Command sha256sum prints the SHA-256 digest of a message given as an
// argument, of files, or of standard input.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/zeebo/sha256"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type args struct {
	Message  *string  `arg:"positional" help:"text to hash; standard input is read when no message or file is given"`
	Encoding string   `arg:"--encoding,env:SHA256SUM_ENCODING" default:"utf-8" help:"encoding applied to MESSAGE before hashing"`
	Files    []string `arg:"-f,--file,separate" help:"hash the contents of a file; may be repeated"`
	Check    string   `arg:"--check" help:"expected hex digest; prints OK or FAILED"`
	Workers  int      `arg:"--workers,env:SHA256SUM_WORKERS" help:"files hashed in parallel; defaults to GOMAXPROCS"`
	Verbose  bool     `arg:"-v,--verbose" help:"log debug output to stderr"`
}

func (args) Description() string {
	return "sha256sum prints the SHA-256 digest of a message, files or standard input."
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "sha256sum"}, &a)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return exitOK
	case err != nil:
		p.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if a.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	lines, err := digest(context.Background(), log, &a, stdin)
	var match error
	if err == nil && a.Check != "" {
		match = check(log, &a, lines)
		if errors.Is(match, errUsage) {
			err = match
		}
	}
	if err != nil {
		printErr(stderr, err)
		if errors.Is(err, errUsage) {
			p.WriteUsage(stderr)
			return exitUsage
		}
		return exitFail
	}

	for _, l := range lines {
		if l.name == "" {
			fmt.Fprintln(stdout, l.digest)
		} else {
			fmt.Fprintf(stdout, "%s  %s\n", l.digest, l.name)
		}
	}
	if a.Check == "" {
		return exitOK
	}
	if match != nil {
		fmt.Fprintln(stdout, "FAILED")
		printErr(stderr, match)
		return exitFail
	}
	fmt.Fprintln(stdout, "OK")
	return exitOK
}

type line struct {
	digest sha256.Digest
	name   string
}

func digest(ctx context.Context, log *slog.Logger, a *args, stdin io.Reader) ([]line, error) {
	switch {
	case a.Message != nil && len(a.Files) > 0:
		return nil, errors.Wrap(errUsage, "a message and --file are mutually exclusive")

	case a.Message != nil:
		enc, err := sha256.LookupEncoding(a.Encoding)
		if err != nil {
			return nil, err
		}
		log.Debug("hashing message", "bytes", len(*a.Message), "encoding", a.Encoding)

		d, err := sha256.HashText(*a.Message, enc)
		if err != nil {
			return nil, err
		}
		return []line{{digest: d}}, nil

	case len(a.Files) > 0:
		return hashFiles(ctx, log, a.Files, a.Workers)

	default:
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errors.Wrap(errUsage, "no message given and standard input is a terminal")
		}

		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading standard input")
		}
		log.Debug("hashing standard input", "bytes", len(data))

		d, err := sha256.Hash(data)
		if err != nil {
			return nil, err
		}
		return []line{{digest: d}}, nil
	}
}

func hashFiles(ctx context.Context, log *slog.Logger, names []string, workers int) ([]line, error) {
	msgs := make([][]byte, len(names))
	for i, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %q", name)
		}
		log.Debug("read file", "name", name, "bytes", len(data))
		msgs[i] = data
	}

	digests, err := sha256.HashAll(ctx, msgs, workers)
	if err != nil {
		return nil, err
	}

	lines := make([]line, len(names))
	for i, d := range digests {
		lines[i] = line{digest: d, name: names[i]}
	}
	return lines, nil
}

var errMismatch = errors.New("digest mismatch")

func check(log *slog.Logger, a *args, lines []line) error {
	if len(lines) != 1 {
		return errors.Wrap(errUsage, "--check needs exactly one input")
	}

	exp, err := sha256.ParseDigest(a.Check)
	if err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	if !lines[0].digest.Equal(exp) {
		log.Debug("digest mismatch", "got", lines[0].digest, "expected", exp)
		return errors.Wrapf(errMismatch, "expected %s", exp)
	}
	return nil
}

func printErr(w io.Writer, err error) {
	_, _ = color.New(color.FgHiRed).Fprintf(w, "sha256sum: %v\n", err)
}
