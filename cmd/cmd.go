package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/pfactor/PFactor-core/batch"
	"github.com/pfactor/PFactor-core/config"
	"github.com/pfactor/PFactor-core/factor"
	"github.com/pfactor/PFactor-core/factorlog"
	"github.com/pfactor/PFactor-core/printer"
	"github.com/pfactor/PFactor-core/server"
	"github.com/pfactor/PFactor-core/util"
)

func Execute() {
	parser := argparse.NewParser("pfactor", "Find a nontrivial factor with Pollard's p-1 smooth-exponent search")
	num := parser.StringPositional(&argparse.Options{Help: "The value to find a divisor of"})
	boundArg := parser.StringPositional(&argparse.Options{Help: "Smoothness bound: primes up to this value are folded into the exponent"})
	attempts := parser.Int("a", "attempts", &argparse.Options{Help: "The number of randomized attempts before giving up"})
	parallel := parser.Int("r", "parallel", &argparse.Options{Help: "Run this many attempts concurrently"})
	method := parser.Selector("M", "method", factor.Methods(), &argparse.Options{
		Help: "Choose the factoring method [pminus1, rho, trial]"})
	seed := parser.Int("", "seed", &argparse.Options{Help: "Fix the random streams for reproducible runs (0 picks a fresh seed)"})
	batchFile := parser.String("f", "batch", &argparse.Options{Help: "Factor every candidate listed in a file (one per line, CSV tolerated, .json for JSON batches)"})
	batchWorkers := parser.Int("w", "workers", &argparse.Options{Default: 4, Help: "Concurrent candidates in batch mode"})
	tablePrint := parser.Flag("t", "table", &argparse.Options{Help: "Output results as table"})
	jsonPrint := parser.Flag("j", "json", &argparse.Options{Help: "Output results as JSON"})
	rawPrint := parser.Flag("", "raw", &argparse.Options{Help: "An output easy to parse"})
	output := parser.Flag("o", "output", &argparse.Options{Help: "Append results to the log file as well"})
	logPath := parser.String("", "log-file", &argparse.Options{Help: "Where --output writes (default /tmp/pfactor.log)"})
	quiet := parser.Flag("q", "quiet", &argparse.Options{Help: "No per-attempt progress lines"})
	noColor := parser.Flag("C", "no-color", &argparse.Options{Help: "Disable colored output"})
	serverMode := parser.Flag("S", "server", &argparse.Options{Help: "Serve the factoring API over HTTP"})
	listenAddr := parser.String("l", "listen", &argparse.Options{Help: "Server listen address (default :1080)"})
	ver := parser.Flag("v", "version", &argparse.Options{Help: "Print version info and exit"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}

	if !*jsonPrint && !*rawPrint {
		printer.Version()
	}
	if *ver {
		printer.CopyRight()
		os.Exit(0)
	}

	config.InitConfig()
	bound, err := parseBound(*boundArg)
	if err != nil {
		log.Fatalln(err)
	}
	applyDefaults(&bound, attempts, parallel, method, listenAddr)

	if !*tablePrint {
		*tablePrint = viper.GetBool("tablePrintDefault")
	}
	if *noColor || viper.GetBool("noColor") || !util.IsTerminal() {
		color.NoColor = true
	}
	factorlog.SetPath(*logPath)

	if *serverMode {
		if err := server.Run(*listenAddr); err != nil {
			log.Fatalln(err)
		}
		return
	}

	cfg := factor.Config{
		Bound:    int64(bound),
		Attempts: *attempts,
		Parallel: *parallel,
		Seed:     int64(*seed),
	}

	if *batchFile != "" {
		runBatch(*batchFile, factor.Method(*method), cfg, *batchWorkers, *jsonPrint, *rawPrint, *output)
		return
	}

	if *num == "" {
		fmt.Print(parser.Usage(err))
		return
	}
	runSingle(*num, factor.Method(*method), cfg, *tablePrint, *jsonPrint, *rawPrint, *output, *quiet)
}

// applyDefaults lets the config file fill everything the flags left unset.
func applyDefaults(bound, attempts, parallel *int, method, listenAddr *string) {
	if *bound == 0 {
		*bound = viper.GetInt("bound")
	}
	if *attempts == 0 {
		*attempts = viper.GetInt("attempts")
	}
	if *parallel == 0 {
		*parallel = viper.GetInt("parallel")
	}
	if *method == "" {
		*method = viper.GetString("method")
	}
	if *listenAddr == "" {
		*listenAddr = viper.GetString("listenAddr")
	}
}

func runSingle(raw string, method factor.Method, cfg factor.Config, tablePrint, jsonPrint, rawPrint, output, quiet bool) {
	num, err := util.ParseNum(raw)
	if err != nil {
		log.Fatalln(err)
	}

	interactive := !tablePrint && !jsonPrint && !rawPrint
	if interactive {
		printer.PrintSearchNav(num.String(), method, cfg.Bound, cfg.Attempts, cfg.Parallel)
		if !quiet {
			cfg.OnProgress = printer.AttemptPrinter
		}
	}

	res, err := factor.Find(method, num, cfg)
	if err != nil {
		log.Fatalln(err)
	}

	switch {
	case jsonPrint:
		printer.JSONPrinter([]*factor.Result{res})
	case tablePrint:
		printer.BatchTablePrinter([]*factor.Result{res})
	case rawPrint:
		printer.RawPrinter(res)
	default:
		printer.ResultPrinter(res)
	}
	if output {
		factorlog.ResultLogger(res)
	}
}

// runBatch prints a table unless json or raw output was asked for; a batch is
// table-shaped by nature.
func runBatch(filename string, method factor.Method, cfg factor.Config, workers int, jsonPrint, rawPrint, output bool) {
	targets, err := loadTargets(filename)
	if err != nil {
		log.Fatalln(err)
	}
	if len(targets) == 0 {
		log.Fatalln("batch file holds no candidates")
	}

	outcomes := batch.Run(targets, method, cfg, workers)

	results := make([]*factor.Result, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			log.Printf("%s: %v", outcome.Target.Raw, outcome.Err)
			continue
		}
		results = append(results, outcome.Res)
	}

	switch {
	case jsonPrint:
		printer.JSONPrinter(results)
	case rawPrint:
		for _, res := range results {
			printer.RawPrinter(res)
		}
	default:
		printer.BatchTablePrinter(results)
	}
	if output {
		for _, res := range results {
			factorlog.ResultLogger(res)
		}
	}
}

func loadTargets(filename string) ([]batch.Target, error) {
	if isJSONFile(filename) {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return batch.LoadJSON(data)
	}
	return batch.LoadFile(filename)
}
