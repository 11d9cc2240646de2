package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kittleik/intrusive-thoughts/internal/override"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region main

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "check":
		os.Exit(runCheck(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "clear":
		os.Exit(runClear(os.Args[2:]))
	case "restore":
		os.Exit(runRestore(os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: override check <text> [--source S] [--dir D]")
	fmt.Fprintln(os.Stderr, "       override status [--dir D]")
	fmt.Fprintln(os.Stderr, "       override clear [--reason R] [--dir D]")
	fmt.Fprintln(os.Stderr, "       override restore [--dir D]")
}

// #endregion main

// #region check

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	source := fs.String("source", "cli", "source identifier")
	dir := fs.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	fs.Parse(args)

	if fs.NArg() < 1 {
		usage()
		return 2
	}
	text := fs.Arg(0)

	ctrl := override.NewController(statefile.NewDir(*dir))
	o, activated, err := ctrl.CheckAndApply(text, *source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if !activated {
		fmt.Println("No priority trigger detected")
		return 1
	}
	printJSON(o)
	return 0
}

// #endregion check

// #region status

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	dir := fs.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	fs.Parse(args)

	ctrl := override.NewController(statefile.NewDir(*dir))
	if o, ok := ctrl.Active(); ok {
		printJSON(o)
	} else {
		fmt.Println("No active override")
	}
	return 0
}

// #endregion status

// #region clear

func runClear(args []string) int {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	reason := fs.String("reason", "manual", "reason for clearing")
	dir := fs.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	fs.Parse(args)

	ctrl := override.NewController(statefile.NewDir(*dir))
	if cleared, ok := ctrl.Clear(*reason); ok {
		fmt.Printf("Cleared override: %s\n", cleared.Trigger)
	} else {
		fmt.Println("No active override to clear")
	}
	return 0
}

// #endregion clear

// #region restore

func runRestore(args []string) int {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	dir := fs.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	fs.Parse(args)

	ctrl := override.NewController(statefile.NewDir(*dir))
	if restored, ok := ctrl.Restore(); ok {
		fmt.Printf("Restored mood: %s\n", restored)
	} else {
		fmt.Println("No override to restore from")
	}
	return 0
}

// #endregion restore

// #region helpers

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
