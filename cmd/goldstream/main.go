package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"goldstream/pkg/entropy"
	"goldstream/pkg/hybrid"
	"goldstream/pkg/seed"
	"goldstream/pkg/stream"
	"goldstream/pkg/trace"
)

// envConfig is populated from the environment. A custom seed must come
// with its own checksum; the pair is verified before any output is
// produced.
type envConfig struct {
	SeedHex  string `env:"GOLDSTREAM_SEED"`
	Checksum string `env:"GOLDSTREAM_CHECKSUM"`
	Verbose  bool   `env:"GOLDSTREAM_VERBOSE"`
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  goldstream vectors [-n N] [-offset K] [-json] [-verbose]
  goldstream direct [-n N] [-json] [-verbose]
  goldstream hybrid -alg ALGORITHM [-n N] [-context HEX] [-json] [-verbose]
  goldstream validate [-n N] [-verbose]
  goldstream verify

Commands:
  vectors   Emit N 16-byte stream blocks as hex (default N=10)
  direct    Emit N direct-profile keys as hex
  hybrid    Emit (block, seed) pairs for a PQC algorithm family
  validate  Generate N blocks and print a statistical validation report
  verify    Verify the seed checksum and exit

Environment:
  GOLDSTREAM_SEED / GOLDSTREAM_CHECKSUM  Override the golden-ratio seed
  GOLDSTREAM_VERBOSE                     Enable debug tracing
`)
	os.Exit(1)
}

func loadConfig() (seed.Config, envConfig, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return seed.Config{}, ec, fmt.Errorf("parsing environment: %w", err)
	}
	if ec.SeedHex == "" {
		return seed.GoldenRatio(), ec, nil
	}
	if ec.Checksum == "" {
		return seed.Config{}, ec, fmt.Errorf("GOLDSTREAM_SEED requires GOLDSTREAM_CHECKSUM")
	}
	cfg, err := seed.NewConfig(ec.SeedHex, ec.Checksum)
	if err != nil {
		return seed.Config{}, ec, err
	}
	return cfg, ec, nil
}

func traceContext(verbose bool) context.Context {
	level := trace.LogLevelNormal
	if verbose {
		level = trace.LogLevelVerbose
	}
	return trace.WithContext(context.Background(), trace.NewTracer("GOLDSTREAM", level))
}

func emit(lines []string, asJSON bool, label string) {
	if asJSON {
		out, _ := json.MarshalIndent(map[string]interface{}{label: lines}, "", "  ")
		fmt.Println(string(out))
		return
	}
	for _, l := range lines {
		fmt.Println(l)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, ec, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "goldstream: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "vectors":
		fs := flag.NewFlagSet("vectors", flag.ExitOnError)
		n := fs.Int("n", 10, "number of blocks")
		offset := fs.Uint64("offset", 0, "blocks to skip before emitting")
		asJSON := fs.Bool("json", false, "JSON output")
		verbose := fs.Bool("verbose", ec.Verbose, "debug tracing")
		fs.Parse(os.Args[2:])

		ctx := traceContext(*verbose)
		s, err := stream.New(cfg)
		if err != nil {
			fatal(err)
		}
		if err := s.Skip(ctx, *offset); err != nil {
			fatal(err)
		}
		lines := make([]string, 0, *n)
		for i := 0; i < *n; i++ {
			block, err := s.Next(ctx)
			if err != nil {
				fatal(err)
			}
			lines = append(lines, hex.EncodeToString(block[:]))
		}
		emit(lines, *asJSON, "blocks")

	case "direct":
		fs := flag.NewFlagSet("direct", flag.ExitOnError)
		n := fs.Int("n", 10, "number of keys")
		asJSON := fs.Bool("json", false, "JSON output")
		verbose := fs.Bool("verbose", ec.Verbose, "debug tracing")
		fs.Parse(os.Args[2:])

		ctx := traceContext(*verbose)
		d, err := stream.NewDirect(cfg)
		if err != nil {
			fatal(err)
		}
		lines := make([]string, 0, *n)
		for i := 0; i < *n; i++ {
			key, err := d.Next(ctx)
			if err != nil {
				fatal(err)
			}
			lines = append(lines, hex.EncodeToString(key[:]))
		}
		emit(lines, *asJSON, "keys")

	case "hybrid":
		fs := flag.NewFlagSet("hybrid", flag.ExitOnError)
		alg := fs.String("alg", "", "algorithm family (e.g. Kyber-768)")
		n := fs.Int("n", 1, "number of pairs")
		contextHex := fs.String("context", "", "hex-encoded derivation context")
		asJSON := fs.Bool("json", false, "JSON output")
		verbose := fs.Bool("verbose", ec.Verbose, "debug tracing")
		fs.Parse(os.Args[2:])

		if *alg == "" {
			fmt.Fprintln(os.Stderr, "goldstream: -alg is required; one of:")
			for _, a := range hybrid.Algorithms() {
				fmt.Fprintf(os.Stderr, "  %s\n", a)
			}
			os.Exit(1)
		}
		info, err := hex.DecodeString(*contextHex)
		if err != nil {
			fatal(fmt.Errorf("invalid -context hex: %w", err))
		}

		ctx := traceContext(*verbose)
		s, err := stream.New(cfg)
		if err != nil {
			fatal(err)
		}
		pairs, err := hybrid.DeriveSequence(ctx, s, hybrid.Algorithm(*alg), info, *n)
		if err != nil {
			fatal(err)
		}
		if *asJSON {
			type pair struct {
				Block string `json:"block"`
				Seed  string `json:"seed"`
			}
			out := make([]pair, len(pairs))
			for i, m := range pairs {
				out[i] = pair{hex.EncodeToString(m.Block[:]), hex.EncodeToString(m.Seed)}
			}
			enc, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(enc))
		} else {
			for _, m := range pairs {
				fmt.Printf("%s %s\n", hex.EncodeToString(m.Block[:]), hex.EncodeToString(m.Seed))
			}
		}

	case "validate":
		fs := flag.NewFlagSet("validate", flag.ExitOnError)
		n := fs.Int("n", 625, "number of blocks to sample")
		verbose := fs.Bool("verbose", ec.Verbose, "debug tracing")
		fs.Parse(os.Args[2:])

		ctx := traceContext(*verbose)
		s, err := stream.New(cfg)
		if err != nil {
			fatal(err)
		}
		data, err := s.Read(ctx, *n)
		if err != nil {
			fatal(err)
		}
		report, err := entropy.Analyze(data, entropy.StreamThresholds)
		if err != nil {
			fatal(err)
		}
		enc, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(enc))
		if !report.Pass() {
			os.Exit(2)
		}

	case "verify":
		if err := cfg.Verify(); err != nil {
			fatal(err)
		}
		fmt.Printf("seed checksum verified: %s\n", cfg.Checksum())

	default:
		usage()
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "goldstream: %v\n", err)
	os.Exit(1)
}
