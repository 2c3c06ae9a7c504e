// Command hexbondgen generates a chemical-bond puzzle with a unique
// solution from a template file.
package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/amterp/color"

	"github.com/hexbond/hexbond"
	"github.com/hexbond/hexbond/internal/logging"
	"github.com/hexbond/hexbond/internal/puzzletext"
)

var (
	hicyanf = color.New(color.FgHiCyan).SprintfFunc()
	greenf  = color.New(color.FgGreen).SprintfFunc()
)

var slogLevel = func() *slog.LevelVar {
	lvl := &slog.LevelVar{}
	lvl.Set(logging.LevelInfo)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
	return lvl
}()

func usage(argv0 string) {
	fmt.Printf("Usage: %s <template-path> [#H #O #N #C]\n"+
		"where <template-path> names a puzzle template (for example 'templates/medium')\n"+
		"and #H, #O, #N, #C are integers weighting how often the generator picks each\n"+
		"respective element while filling in the puzzle.\n\n"+
		"The program generates a puzzle with a unique solution and writes it to\n"+
		"'puzzle.txt'.\n", argv0)
}

func ver() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "(devel)" {
		return ""
	}
	return bi.Main.Version
}

func parseFlags() (templatePath string, cfg hexbond.Config, workers int) {
	workersFlag := flag.Int("workers", 1, "Run `n` independent generator attempts concurrently and keep whichever finishes first.")
	bumpLogLevel := func(lower bool) {
		slogLevel.Set(logging.BumpLevel(slogLevel.Level(), lower))
	}
	flag.BoolFunc("v", "Increase log verbosity.", func(arg string) error {
		switch arg {
		case "", "true":
			bumpLogLevel(true)
		default:
			lvl, err := logging.StringToLevel(arg)
			if err != nil {
				return err
			}
			slogLevel.Set(lvl)
		}
		return nil
	})
	flag.BoolFunc("q", "Decrease log verbosity.", func(string) error {
		bumpLogLevel(false)
		return nil
	})
	colorChoices := map[string]bool{"auto": color.NoColor, "never": true, "always": false}
	flag.Func("color", "Output colors according to `mode` (one of: always, auto, never; default: auto).", func(arg string) error {
		if arg == "" {
			arg = "auto"
		}
		v, ok := colorChoices[arg]
		if !ok {
			return fmt.Errorf("expected one of: always, auto, never")
		}
		color.NoColor = v
		return nil
	})
	flag.BoolFunc("version", "Print the version and exit.", func(string) error {
		v := ver()
		if v == "" {
			log.Fatal("the Go build information is unavailable; try passing the \"-buildvcs=true\" build option to go")
		}
		fmt.Println(v)
		os.Exit(0)
		return nil
	})
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 && len(args) != 5 {
		usage(os.Args[0])
		os.Exit(1)
	}
	templatePath = args[0]
	cfg = hexbond.DefaultConfig()
	if len(args) == 5 {
		for i, kind := range []hexbond.AtomKind{hexbond.AtomH, hexbond.AtomO, hexbond.AtomN, hexbond.AtomC} {
			w, err := strconv.Atoi(args[i+1])
			if err != nil {
				log.Fatalf("invalid weight %q: %v", args[i+1], err)
			}
			cfg.Distribution[int(kind)] = w
		}
	}
	return templatePath, cfg, *workersFlag
}

func run(ctx context.Context, templatePath string, cfg hexbond.Config, workers int) error {
	f, err := os.Open(templatePath)
	if err != nil {
		usage(os.Args[0])
		return fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()
	g, err := puzzletext.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	var seedBytes [32]byte
	if _, err := rand.Read(seedBytes[:]); err != nil {
		return fmt.Errorf("seeding random source: %w", err)
	}
	seed1 := binary.LittleEndian.Uint64(seedBytes[0:8])
	seed2 := binary.LittleEndian.Uint64(seedBytes[8:16])

	var final *hexbond.Graph
	if workers <= 1 {
		rng := rand.New(rand.NewPCG(seed1, seed2))
		gen := hexbond.NewGenerator(g, cfg, rng, slog.Default())
		if err := gen.Run(ctx); err != nil {
			return err
		}
		final = g
	} else {
		bg := hexbond.NewBatchGenerator(g, cfg, workers, slog.Default())
		final, err = bg.Run(ctx)
		if err != nil {
			return err
		}
	}

	out, err := os.Create("puzzle.txt")
	if err != nil {
		return fmt.Errorf("creating puzzle.txt: %w", err)
	}
	defer out.Close()
	if err := hexbond.WritePuzzle(out, final); err != nil {
		return fmt.Errorf("writing puzzle.txt: %w", err)
	}
	fmt.Println(hicyanf("generated puzzle with a unique solution"))
	fmt.Println(greenf("wrote puzzle.txt"))
	return nil
}

func main() {
	templatePath, cfg, workers := parseFlags()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := run(ctx, templatePath, cfg, workers); err != nil {
		slog.ErrorContext(ctx, "failed", "error", err)
		os.Exit(1)
	}
}
