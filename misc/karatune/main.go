package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	bigint "github.com/shabbyrobe/go-bigint"
)

// This is a rough tool for picking a value for bigint.KaratsubaThreshold on a
// given machine. It times multiplication of random operands of increasing size
// with schoolbook multiplication forced on, then with Karatsuba enabled at the
// default threshold, and prints the two timings side by side. The crossover
// is where the ratio column drops below 1.
//
// Timings are noisy; run it a few times with a decent -iter before trusting
// the result.

const usage = `Karatsuba threshold tuner

Usage: karatune [-min <words>] [-max <words>] [-step <words>] [-iter <n>] [-seed <n>] [-dump]`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type result struct {
	Words     int
	Basic     time.Duration
	Karatsuba time.Duration
}

func run() error {
	var (
		minWords = 8
		maxWords = 128
		step     = 8
		iter     = 200
		seed     int64
		dump     bool
	)

	flags := flag.NewFlagSet("karatune", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprintln(os.Stderr, usage); flags.PrintDefaults() }
	flags.IntVar(&minWords, "min", minWords, "Smallest operand length in 32-bit words")
	flags.IntVar(&maxWords, "max", maxWords, "Largest operand length in 32-bit words")
	flags.IntVar(&step, "step", step, "Operand length increment")
	flags.IntVar(&iter, "iter", iter, "Multiplications per measurement")
	flags.Int64Var(&seed, "seed", seed, "Seed the RNG (0 == current nanotime)")
	flags.BoolVar(&dump, "dump", dump, "Dump the raw measurements")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	if minWords < 1 || maxWords < minWords || step < 1 || iter < 1 {
		return fmt.Errorf("invalid range: -min %d -max %d -step %d -iter %d", minWords, maxWords, step, iter)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Println("seed:", seed)
	rng := rand.New(rand.NewSource(seed))

	defaultThreshold := bigint.KaratsubaThreshold
	defer func() { bigint.KaratsubaThreshold = defaultThreshold }()

	var results []result
	for words := minWords; words <= maxWords; words += step {
		x, y := bigint.RandInt(rng, words), bigint.RandInt(rng, words)

		bigint.KaratsubaThreshold = words + 1
		basic, basicOut := measure(x, y, iter)

		bigint.KaratsubaThreshold = defaultThreshold
		kara, karaOut := measure(x, y, iter)

		if !basicOut.Equal(karaOut) {
			return fmt.Errorf("products differ at %d words:\nbasic:     %s\nkaratsuba: %s", words, basicOut, karaOut)
		}
		results = append(results, result{Words: words, Basic: basic, Karatsuba: kara})
	}

	if dump {
		spew.Dump(results)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Words", "Basic", "Karatsuba", "Ratio"})
	for _, r := range results {
		table.Append([]string{
			fmt.Sprint(r.Words),
			r.Basic.String(),
			r.Karatsuba.String(),
			fmt.Sprintf("%.3f", float64(r.Karatsuba)/float64(r.Basic)),
		})
	}
	table.Render()

	fmt.Printf("default threshold: %d words\n", defaultThreshold)
	return nil
}

// measure returns the mean duration of x*y over iter runs, along with the
// product.
func measure(x, y bigint.Int, iter int) (time.Duration, bigint.Int) {
	var out bigint.Int
	start := time.Now()
	for i := 0; i < iter; i++ {
		out = x.Mul(y)
	}
	return time.Since(start) / time.Duration(iter), out
}
