package main

import (
	"flag"
	"fmt"
	"lintang/minpq/pkg/verify"
	"log"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/rand"
)

var (
	numOps    = flag.Int("ops", 100000, "jumlah operasi random per seed")
	numSeeds  = flag.Int("seeds", 8, "jumlah seed yang dijalankan")
	keySpace  = flag.Int("keys", 512, "jumlah item berbeda yang dipakai operasi")
	firstSeed = flag.Uint64("seed", 1, "seed pertama")
)

// heapcheck differential test IndexedMinHeap vs sorted list oracle untuk banyak seed.
func main() {
	flag.Parse()

	for i := 0; i < *numSeeds; i++ {
		seed := *firstSeed + uint64(i)
		rng := rand.New(rand.NewSource(seed))
		ops := verify.GenerateOps(rng, *numOps, *keySpace)

		bar := progressbar.NewOptions(len(ops),
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription(fmt.Sprintf("[cyan][%d/%d][reset] seed %d...", i+1, *numSeeds, seed)),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		report, err := verify.Run(ops, verify.Options{Progress: func(step int) {
			bar.Add(1)
		}})
		fmt.Println()
		if err != nil {
			log.Fatalf("seed %d: %v", seed, err)
		}
		log.Printf("seed %d ok: ops=%d inserts=%d removes=%d changes=%d usage errors=%d max size=%d",
			seed, report.Ops, report.Inserts, report.Removes, report.Changes, report.Errors, report.MaxSize)
	}
}
