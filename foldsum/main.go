package main

import (
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"github.com/p7r0x7/foldhash"
	"github.com/p7r0x7/foldhash/internal/config"
	"github.com/p7r0x7/foldhash/internal/logger"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

/* Set by init on platforms whose console cannot render formatting codes. */
var noCodesDefault = false

type program struct {
	cfg      config.Config
	fs       *pflag.FlagSet
	log      *zap.SugaredLogger
	hasher   *foldhash.Hasher
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	key      [32]byte
	star     string
	warnings int

	yell, purp, und, zero string
}

func main() { os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }

// run is a command-line interface for foldhash: It handles various flags and an unlimited number
// of arguments, processing files or strings as required by the command-line operator.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	p := &program{stdin: stdin, stdout: stdout, stderr: stderr}
	p.codes(args)
	p.fs = config.Flags(config.AppName, func(s string) string { return p.purp + s + p.zero })
	p.fs.SetOutput(io.Discard) /* Parse errors are reported below. */
	p.fs.Usage = func() {}

	if err := p.fs.Parse(args); err != nil {
		Fprint(stderr, p.purp, err, p.zero, n)
		return invalid
	}
	cfgFile, _ := p.fs.GetString("config")
	cfg, err := config.Load(p.fs, cfgFile)
	if err != nil {
		Fprint(stderr, p.purp, err, p.zero, n)
		return invalid
	}
	p.cfg = cfg
	if cfg.NoCodes { /* The environment or a config file may ask for this too. */
		p.yell, p.purp, p.und, p.zero = "", "", "", ""
	}

	if help, _ := p.fs.GetBool("help"); help || p.fs.NArg() == 0 {
		p.help()
		return success
	}

	sink := zapcore.AddSync(stderr)
	if p.log, err = logger.New(logger.Config{Debug: cfg.Debug, Format: cfg.LogFormat}, sink); err != nil {
		Fprint(stderr, p.purp, err, p.zero, n)
		return invalid
	}
	defer p.log.Sync()

	opts := cfg.Options()
	if cfg.Trace {
		opts = append(opts, foldhash.WithTracer(logger.Tracer{Log: p.log}))
	}
	p.hasher = foldhash.NewHasher(opts...)

	if cfg.Keyed {
		if _, err := io.ReadFull(stdin, p.key[:]); err != nil {
			p.log.Errorw("reading key", "error", err)
			return failure
		}
		p.stdin = strings.NewReader("") /* STDIN should not be reused. */
		p.star = "(*)"
	}
	return p.targets(p.fs.Args())
}

// codes decides, before flags are defined, whether usage text may carry formatting codes. run
// revisits the decision once the environment and config file have been read.
func (p *program) codes(args []string) {
	noCodes := noCodesDefault
	for _, arg := range args {
		switch arg {
		case "--no-codes=false":
			noCodes = false
		case "--quiet", "--quiet=true", "--no-codes", "--no-codes=true":
			noCodes = true
		}
	}
	if !noCodes {
		p.yell, p.purp, p.und, p.zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"
	}
}

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func (p *program) help() {
	origin, err := os.Executable()
	if err != nil {
		origin = config.AppName /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(p.stderr, p.yell, "A demonstrative XOR-fold checksum. Not a cryptographic hash.", p.zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bxKt] [-l <uint>] [--seed <uint>] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-bxKt] [-l <uint>] [--seed <uint>] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	p.fs.SetOutput(p.stderr)
	p.fs.PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(p.stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Every flag may also be set as"+
		n+"FOLDSUM_<FLAG> in the environment. `-` is treated as a reference to STDIN."+n)
}

func (p *program) targets(args []string) int {
	for _, target := range args {
		start, delta := time.Now(), ""

		msg, err := p.read(target)
		if err != nil {
			if p.warn(target, err) {
				return failure
			}
			continue
		}
		sum, err := p.hasher.Sum64(msg)
		if err != nil {
			if p.warn(target, err) {
				return failure
			}
			continue
		}

		if p.cfg.Time {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		str := p.render(sum)
		switch {
		case p.cfg.Quiet:
			Fprint(p.stdout, str, n)
		case p.cfg.String:
			Fprint(p.stdout, p.star, p.yell, str, p.zero, `  "`, target, `"`, delta, n)
		case p.cfg.NoCodes:
			Fprint(p.stdout, p.star, str, `  `, filepath.Clean(target), delta, n)
		default:
			Fprint(p.stdout, p.star, p.yell, str, p.zero, `  `, p.und, vainpath.Simplify(target), p.zero, delta, n)
		}
	}

	if !p.cfg.Quiet {
		if p.warnings == 1 {
			Fprint(p.stderr, "1 ", p.purp, "target could not be read or hashed.", p.zero, n)
		} else if p.warnings > 1 {
			Fprint(p.stderr, p.warnings, " ", p.purp, "targets could not be read or hashed.", p.zero, n)
		}
	}
	if p.warnings > 0 {
		return failure
	}
	return success
}

func (p *program) read(target string) ([]byte, error) {
	switch {
	case p.cfg.String:
		return []byte(target), nil
	case target == "-" || target == os.Stdin.Name():
		msg, err := io.ReadAll(p.stdin)
		p.stdin = strings.NewReader("") /* STDIN should not be reused. */
		return msg, err
	default:
		return os.ReadFile(target)
	}
}

// render formats sum per the output flags. Without --length the integer itself is printed.
func (p *program) render(sum uint64) string {
	if p.cfg.Length == 0 {
		switch {
		case p.cfg.Base64:
			return base64.StdEncoding.EncodeToString(foldhash.AppendBytes(nil, sum))
		case p.cfg.Hex:
			return foldhash.Format(sum, 16)
		default:
			return foldhash.Format(sum, 10)
		}
	}
	out := foldhash.Expand(sum, p.key, int(p.cfg.Length))
	if p.cfg.Base64 {
		return base64.StdEncoding.EncodeToString(out)
	}
	return hex.EncodeToString(out)
}

// warn records a failed target and reports whether the run must stop.
func (p *program) warn(target string, err error) bool {
	p.warnings++
	if !p.cfg.Quiet {
		p.log.Errorw("skipping target", "target", target, "error", err)
	}
	return p.cfg.Strict
}
