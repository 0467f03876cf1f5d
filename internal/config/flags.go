package config

import (
	"github.com/p7r0x7/foldhash"
	"github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"

// Flags defines every foldsum flag on a new set. paint wraps each description, letting the caller
// add terminal formatting codes; it may be nil.
func Flags(name string, paint func(string) string) *pflag.FlagSet {
	if paint == nil {
		paint = func(s string) string { return s }
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.BoolP("help", "h", false,
		paint("print this help menu")+n)

	fs.BoolP("base64", "b", false,
		paint("render digests as base64 of their bytes")+" (default decimal)")

	fs.String("config", "",
		paint("read settings from this YAML file")+" (default ./"+AppName+".yaml)")

	fs.Bool("debug", false, "")
	_ = fs.MarkHidden("debug")

	fs.BoolP("hex", "x", false,
		paint("render digests in hexadecimal")+" (default decimal)")

	fs.BoolP("keyed", "K", false,
		paint("use the first 32 bytes of STDIN as the --length key"))

	fs.UintP("length", "l", 0,
		paint("expand each digest to this many bytes; 0 prints the")+
			n+paint("integer itself"))

	fs.String("log-format", "human",
		paint("log encoding: human or json"))

	fs.Int("max-length", 0,
		paint("reject messages longer than this many bytes")+" (0 = no limit)")

	fs.Bool("no-codes", false,
		paint("print to console w/o formatting codes or simplified")+
			n+paint("filepaths"))

	fs.Bool("quiet", false,
		paint("suppress non-breaking errors and print ONLY digests")+
			n+"(enables --no-codes)")

	fs.Uint64("seed", foldhash.Seed,
		paint("value XORed into the first block"))

	fs.Bool("strict", false,
		paint("stop at the first error"))

	fs.BoolP("string", "s", false,
		paint("process arguments instead as UTF-8 strings to be hashed"))

	fs.BoolP("time", "t", false,
		paint("print time taken to read and hash each message"))

	fs.Bool("trace", false,
		paint("log the numeral, blocks and running value of each")+
			n+paint("digest to STDERR"))

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	fs.SortFlags = false
	return fs
}
