// Command generate-goldens regenerates the golden fixtures under testdata/
// from the canonical rendering algorithm. Run it after a deliberate layout
// change and review the diff before committing.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bbsfont/blockart"
)

var outDir = flag.String("out", "testdata", "Output directory")

// goldenCases covers a single pixel, a merged horizontal pair, separated
// pixels on different rows, and a pixel away from the origin.
var goldenCases = []struct {
	name string
	rows []string
}{
	{"single", []string{"1"}},
	{"corner", []string{"10", "00"}},
	{"pair", []string{"110", "000"}},
	{"split", []string{"100", "001"}},
	{"offset", []string{"000", "010", "000"}},
	{"far", []string{"100000", "000000", "000010", "000000"}},
}

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory %s: %v", *outDir, err)
	}

	for _, gc := range goldenCases {
		art, err := blockart.Render(gc.rows)
		if err != nil {
			log.Fatalf("Failed to render %s: %v", gc.name, err)
		}

		input := filepath.Join(*outDir, gc.name+"_input.txt")
		output := filepath.Join(*outDir, gc.name+"_output.txt")
		if err := os.WriteFile(input, []byte(strings.Join(gc.rows, "\n")+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", input, err)
		}
		if err := os.WriteFile(output, []byte(art+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", output, err)
		}
		log.Printf("Generated %s (%d rows)", gc.name, len(gc.rows))
	}
}
