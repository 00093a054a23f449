package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nihei9/ll1tab/config"
	"github.com/nihei9/ll1tab/grammar"
	"github.com/nihei9/ll1tab/log"
	"github.com/nihei9/ll1tab/parser"
	"github.com/nihei9/ll1tab/render"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	configPath := pflag.String("config", "", "path to an optional TOML config file")
	pflag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg = loaded
	}
	render.TableWidth = cfg.TableWrap
	if !cfg.Color {
		log.DisableColor()
	}

	args := pflag.Args()
	if len(args) > 0 && args[0] == "repl" {
		return runREPL(cfg)
	}

	if err := run(args, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func run(args []string, cfg config.Config) error {
	var src io.Reader
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		src = file
	} else {
		src = os.Stdin
	}

	logPath := cfg.TraceLog
	if logPath == "" {
		logPath = "ll1tab.log"
	}
	if err := log.Init(logPath); err != nil {
		return err
	}
	defer log.Close()

	prods, err := parser.Parse(src)
	if err != nil {
		log.Log("failed to parse grammar: %v", err)
		return err
	}

	g, err := grammar.Load(prods)
	if err != nil {
		log.Log("failed to load grammar: %v", err)
		return err
	}
	fmt.Print(render.Grammar(g))

	grammar.LeftFactor(g)
	fmt.Println("--- after left factoring ---")
	fmt.Print(render.Grammar(g))

	grammar.RemoveLeftRecursion(g)
	fmt.Println("--- after left-recursion removal ---")
	fmt.Print(render.Grammar(g))

	fst := grammar.ComputeFirst(g)
	fmt.Println("--- FIRST ---")
	fmt.Print(render.FirstSet(g, fst))

	flw := grammar.ComputeFollow(g, fst)
	fmt.Println("--- FOLLOW ---")
	fmt.Print(render.FollowSet(g, flw))

	table, conflicts := grammar.BuildTable(g, fst, flw)
	fmt.Println("--- parse table ---")
	fmt.Print(render.ParseTable(g, table))

	if len(conflicts) > 0 {
		log.Warn("grammar is not LL(1): %d conflict(s)", len(conflicts))
		fmt.Print(render.Conflicts(g, conflicts))
	}

	return nil
}

// runREPL reads one grammar line at a time, accumulating it into an
// in-memory source buffer, and re-runs the full pipeline after each
// line so the user can watch FIRST/FOLLOW/the table update live.
func runREPL(cfg config.Config) int {
	repl, err := newREPL()
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	defer repl.Close()

	log.Info("enter grammar lines one at a time; Ctrl-D to stop")

	var src strings.Builder
	for {
		line, err := repl.Readline()
		if err != nil {
			break
		}
		src.WriteString(line)
		src.WriteByte('\n')

		prods, err := parser.Parse(strings.NewReader(src.String()))
		if err != nil {
			log.Error("%v", err)
			continue
		}
		g, err := grammar.Load(prods)
		if err != nil {
			log.Error("%v", err)
			continue
		}

		grammar.LeftFactor(g)
		grammar.RemoveLeftRecursion(g)
		fst := grammar.ComputeFirst(g)
		flw := grammar.ComputeFollow(g, fst)
		table, conflicts := grammar.BuildTable(g, fst, flw)

		fmt.Print(render.FirstSet(g, fst))
		fmt.Print(render.FollowSet(g, flw))
		fmt.Print(render.ParseTable(g, table))
		if len(conflicts) > 0 {
			log.Warn("grammar is not LL(1): %d conflict(s)", len(conflicts))
		}
	}
	return 0
}
