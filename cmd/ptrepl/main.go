// Command ptrepl is an interactive driver for the piece-table engine.
// It exposes every buffer operation as a line command, which makes it a
// convenient manual test bench for chain surgery and undo/redo behavior.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/piecetable/internal/config"
	"github.com/dshills/piecetable/internal/engine"
)

func main() {
	os.Exit(run())
}

func run() int {
	initFile := flag.String("f", "", "load initial content from file")
	configPath := flag.String("config", "piecetable.json", "settings file")
	writeConfig := flag.Bool("writeconfig", false, "write default settings file and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.Write(*configPath, config.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write config: %v\n", err)
			return 1
		}
		fmt.Println("wrote", *configPath)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	load := *initFile
	if load == "" {
		load = cfg.InitialFile
	}
	opts := []engine.Option{
		engine.WithMaxUndoEntries(cfg.MaxUndoEntries),
		engine.WithMaxAddBytes(cfg.MaxAddBytes),
	}

	var buf *engine.TextBuffer
	if load != "" {
		data, err := os.ReadFile(load)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", load, err)
			return 1
		}
		buf = engine.New(append(opts, engine.WithContent(string(data)))...)
	} else {
		buf = engine.New(opts...)
	}

	fmt.Println("piece-table REPL. 'help' for commands, 'quit' to exit")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pt> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return 0
		}
		input = strings.TrimRight(input, "\n")
		if strings.TrimSpace(input) == "" {
			continue
		}
		if !handle(buf, input) {
			return 0
		}
	}
}

// handle executes one command line. It returns false to quit.
func handle(buf *engine.TextBuffer, input string) bool {
	cmd, rest, _ := strings.Cut(input, " ")

	switch strings.ToLower(cmd) {
	case "help":
		printHelp()

	case "quit", "exit":
		return false

	case "print", "show":
		fmt.Printf("%q\n", buf.String())

	case "len":
		fmt.Println(buf.Len())

	case "pieces":
		fmt.Println(buf.PieceCount())

	case "dump":
		buf.Dump(os.Stdout)

	case "insert":
		pos, text, ok := posAndText(rest)
		if !ok {
			fmt.Println("usage: insert <pos> <text>")
			break
		}
		report(buf.Insert(pos, text))

	case "remove":
		args, ok := ints(rest, 2)
		if !ok {
			fmt.Println("usage: remove <pos> <len>")
			break
		}
		report(buf.Remove(args[0], args[1]))

	case "replace":
		first, more, _ := strings.Cut(rest, " ")
		second, text, _ := strings.Cut(more, " ")
		pos, err1 := strconv.Atoi(first)
		length, err2 := strconv.Atoi(second)
		if err1 != nil || err2 != nil || text == "" {
			fmt.Println("usage: replace <pos> <len> <text>")
			break
		}
		report(buf.Replace(pos, length, unescape(text)))

	case "undo":
		report(buf.Undo())

	case "redo":
		report(buf.Redo())

	case "char":
		args, ok := ints(rest, 1)
		if !ok {
			fmt.Println("usage: char <pos>")
			break
		}
		b, err := buf.ByteAt(args[0])
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Printf("%q\n", b)

	case "slice":
		args, ok := ints(rest, 2)
		if !ok {
			fmt.Println("usage: slice <pos> <len>")
			break
		}
		s, err := buf.Slice(args[0], args[1])
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Printf("%q\n", s)

	case "line":
		args, ok := ints(rest, 1)
		if !ok {
			fmt.Println("usage: line <n>")
			break
		}
		s, err := buf.Line(args[0])
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Printf("%q\n", s)

	case "start":
		args, ok := ints(rest, 1)
		if !ok {
			fmt.Println("usage: start <pos>   (open micro-insert session)")
			break
		}
		report(buf.StartMicroInserts(args[0]))

	case "key":
		if rest == "" {
			fmt.Println("usage: key <text>")
			break
		}
		report(buf.MicroInsert(unescape(rest)))

	case "stop":
		report(buf.StopMicroInserts())

	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
	return true
}

func report(err error) {
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ok")
}

// posAndText parses "<pos> <text>" where text runs to end of line.
func posAndText(s string) (int, string, bool) {
	first, text, _ := strings.Cut(s, " ")
	pos, err := strconv.Atoi(first)
	if err != nil || text == "" {
		return 0, "", false
	}
	return pos, unescape(text), true
}

// ints parses exactly n space-separated integers.
func ints(s string, n int) ([]int, bool) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// unescape turns literal \n sequences into newlines so multi-line
// documents can be driven from a single input line.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func printHelp() {
	fmt.Print(`Commands:
  print                 show the document
  len                   document length in bytes
  pieces                piece count
  dump                  diagnostic chain/history dump
  insert <pos> <text>   insert text at byte position
  remove <pos> <len>    remove a byte range
  replace <pos> <len> <text>
  undo / redo
  char <pos>            byte at position
  slice <pos> <len>     copy of a byte range
  line <n>              n-th line (1-based)
  start <pos>           open a micro-insert session
  key <text>            append to the open session
  stop                  close the session (one undo unit)
  help, quit
Text arguments may contain \n for newlines.
`)
}
