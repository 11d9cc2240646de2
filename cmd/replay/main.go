package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kittleik/intrusive-thoughts/internal/replay"
)

// #region main

func main() {
	jsonOut := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [--json] fixture.json [fixture.json ...]")
		os.Exit(2)
	}

	failed := 0
	type namedResult struct {
		Fixture string        `json:"fixture"`
		Result  replay.Result `json:"result"`
	}
	var results []namedResult

	for _, path := range flag.Args() {
		fixture, err := replay.LoadFixture(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		res, err := replay.Run(fixture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		results = append(results, namedResult{Fixture: path, Result: res})

		if !*jsonOut {
			status := "PASS"
			if !res.Pass {
				status = "FAIL"
			}
			fmt.Printf("%s  %s  %s\n", status, path, fixture.Description)
			for _, f := range res.Failures {
				fmt.Printf("      %s\n", f)
			}
		}
		if !res.Pass {
			failed++
		}
	}

	if *jsonOut {
		out, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(out))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d fixture(s) failed\n", failed)
		os.Exit(1)
	}
}

// #endregion main
