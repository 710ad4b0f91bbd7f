// Command blockart generates random bitmaps and prints their pseudo-3D
// ASCII block renderings.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/bbsfont/blockart"
	"github.com/bbsfont/blockart/internal/debug"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		width       int
		height      int
		count       int
		prob        float64
		seed        int64
		showStats   bool
		showVersion bool
		showHelp    bool
		debugMode   bool
		debugFile   string
		debugPretty bool
	)

	pflag.IntVarP(&width, "width", "w", 6, "Bitmap width in cells")
	pflag.IntVar(&height, "height", 4, "Bitmap height in cells")
	pflag.IntVarP(&count, "count", "n", 5, "Number of bitmaps to render")
	pflag.Float64VarP(&prob, "prob", "p", 0.5, "Probability of a second active pixel (0-1)")
	pflag.Int64VarP(&seed, "seed", "s", 0, "Random seed (0 = time-based)")
	pflag.BoolVar(&showStats, "stats", false, "Print render cache statistics to stderr on exit")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.BoolVar(&debugMode, "debug", false, "Enable debug mode (outputs to stderr)")
	pflag.StringVar(&debugFile, "debug-file", "", "Write debug output to file instead of stderr")
	pflag.BoolVar(&debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}

	if showVersion {
		fmt.Printf("blockart version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	if count < 1 {
		fmt.Fprintln(os.Stderr, "Error: count must be at least 1")
		return 1
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Setup debug if enabled
	var debugSession *debug.Session
	if debugMode || debugFile != "" || os.Getenv("BLOCKART_DEBUG") == "1" {
		debug.SetEnabled(true)
		debug.InitFromEnv()

		var output io.Writer = os.Stderr
		if debugFile != "" {
			file, err := os.Create(debugFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating debug file: %v\n", err)
				return 1
			}
			defer file.Close()
			output = file
		}

		var sink debug.Sink
		if debugPretty || os.Getenv("BLOCKART_DEBUG_PRETTY") == "1" {
			sink = debug.NewPrettySink(output)
		} else {
			sink = debug.NewJSONSink(output)
		}

		session := debug.NewSession(sink)
		if session != nil {
			defer session.Close()
			debugSession = session
		}
	}

	for i := 0; i < count; i++ {
		rows, err := blockart.RandomBitmap(rng, width, height, prob)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating bitmap: %v\n", err)
			return 1
		}

		var art string
		if debugSession != nil {
			// Tracing wants the full pipeline to run, so skip the cache.
			art, err = blockart.Render(rows, blockart.WithDebug(debugSession))
		} else {
			art, err = blockart.RenderCached(rows)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering bitmap: %v\n", err)
			return 1
		}

		fmt.Println(art)
		if i < count-1 {
			fmt.Println()
		}
	}

	if showStats {
		stats := blockart.DefaultCacheStats()
		fmt.Fprintf(os.Stderr, "cache: size=%d hits=%d misses=%d evictions=%d hit_rate=%.1f%%\n",
			stats.Size, stats.Hits, stats.Misses, stats.Evictions, stats.HitRate())
	}

	return 0
}

func printHelp() {
	fmt.Println("blockart - pseudo-3D ASCII block generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  blockart [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  blockart                    # five random 6x4 bitmaps")
	fmt.Println("  blockart -w 8 --height 3    # wider, shallower grid")
	fmt.Println("  blockart -n 1 -s 42         # one bitmap, repeatable seed")
}
