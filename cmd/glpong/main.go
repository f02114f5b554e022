package main

import (
	"fmt"
	"os"

	"github.com/michaelg29/glpong/internal/app"
	"github.com/michaelg29/glpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  glpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --width <units>     Court width (default: 800)")
	fmt.Fprintln(os.Stderr, "  --height <units>    Court height (default: 600)")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Target frames per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --log <file>        Append score events to a file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w/s                 Left paddle")
	fmt.Fprintln(os.Stderr, "  up/down             Right paddle")
	fmt.Fprintln(os.Stderr, "  r                   Reset match")
	fmt.Fprintln(os.Stderr, "  q, Esc              Quit")
}
