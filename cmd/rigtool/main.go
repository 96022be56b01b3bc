// rigtool is a CLI utility for inspecting rigging skeletons.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/rigkit/internal/config"
	"github.com/Faultbox/rigkit/internal/logger"
	"github.com/Faultbox/rigkit/pkg/skeleton"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	skeleton.SetLogger(logger.Log)

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch command := args[0]; command {
	case "presets":
		cmdPresets()
	case "show":
		cmdShow(cfg, args[1:])
	case "file":
		cmdFile(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`rigtool - rigging skeleton inspector

Usage:
  rigtool [options] <command> [args]

Commands:
  presets                 List the built-in species presets
  show <preset>           Show a preset skeleton (full and compressed graphs)
  file <path>             Load and show a text skeleton file

Options:
  -config <path>          Config file (default ./rigtool.yaml)
  -debug                  Debug logging
  -scale <factor>         Uniform scale applied after loading

Examples:
  rigtool show human
  rigtool -scale 2 file ./dog.sk`)
}

var presets = map[string]func() *skeleton.Skeleton{
	"human":   skeleton.Human,
	"quad":    skeleton.Quad,
	"horse":   skeleton.Horse,
	"centaur": skeleton.Centaur,
}

func cmdPresets() {
	for _, name := range []string{"human", "quad", "horse", "centaur"} {
		s := presets[name]()
		fmt.Printf("%-8s %2d joints, %d after compression\n",
			name, s.FullCount(), s.CompressedCount())
	}
}

func cmdShow(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: rigtool show <human|quad|horse|centaur>")
		os.Exit(1)
	}
	build, ok := presets[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown preset: %s\n", args[0])
		os.Exit(1)
	}
	printSkeleton(cfg, build())
}

func cmdFile(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: rigtool file <path>")
		os.Exit(1)
	}
	s := skeleton.FromFile(args[0])
	if s.FullCount() == 0 {
		fmt.Fprintf(os.Stderr, "No joints loaded from %s\n", args[0])
		os.Exit(1)
	}
	printSkeleton(cfg, s)
}

func printSkeleton(cfg *config.Config, s *skeleton.Skeleton) {
	if cfg.Rig.Scale != 1 {
		s.Scale(cfg.Rig.Scale)
	}

	names := s.Names()

	fmt.Printf("Full graph: %d joints\n", s.FullCount())
	for i := 0; i < s.FullCount(); i++ {
		p := s.FullPosition(i)
		parent := "-"
		if pi := s.Parent(i); pi >= 0 {
			parent = names[pi]
		}
		sym := ""
		if si := s.Symmetric(i); si >= 0 {
			sym = "  sym=" + names[si]
		}
		fmt.Printf("  %2d %-12s (%7.3f %7.3f %7.3f)  parent=%s%s\n",
			i, names[i], p.X, p.Y, p.Z, parent, sym)
	}

	fmt.Printf("Compressed graph: %d joints\n", s.CompressedCount())
	for j := 0; j < s.CompressedCount(); j++ {
		full := s.CompressedToFull(j)
		var flags string
		if s.IsFoot(j) {
			flags += " foot"
		}
		if s.IsFat(j) {
			flags += " fat"
		}
		fmt.Printf("  %2d %-12s length=%.4f parent=%2d sym=%2d%s\n",
			j, names[full], s.BoneLength(j), s.CompressedParent(j),
			s.CompressedSymmetric(j), flags)
	}
}
