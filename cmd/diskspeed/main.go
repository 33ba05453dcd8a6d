package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cloud-Foundations/Dominator/lib/flags/loadflags"
	"github.com/Cloud-Foundations/Dominator/lib/flagutil"
	"github.com/Cloud-Foundations/Dominator/lib/format"
	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/Dominator/lib/log/cmdlogger"
	"github.com/Cloud-Foundations/diskspeed/lib/cachedrop"
	"github.com/Cloud-Foundations/diskspeed/lib/diskbench"
)

var (
	directIO = flag.Bool("direct", false,
		"If true, bypass the page cache with O_DIRECT (F_NOCACHE on Darwin)")
	filename = flag.String("file",
		filepath.Join(os.TempDir(), "diskspeed.test"),
		"The file to write to and read from")
	jsonOutput = flag.Bool("json", false, "If true, print the report as JSON")
	portNum    = flag.Uint("portNum", 0,
		"Port number to serve metrics on while running (0: disabled)")
	seed    = flag.Int64("seed", 0, "Random seed (0: seed from the clock)")
	verbose = flag.Bool("verbose", true, "If true, show progress")

	dropCaches     = cachedrop.ModeAuto
	offsetPolicy   = diskbench.OffsetPolicyInclusive
	readBlockSize  = flagutil.Size(1 << 20)
	totalSize      = flagutil.Size(128 << 20)
	writeBlockSize = flagutil.Size(1 << 20)
)

func init() {
	flag.Var(&dropCaches, "dropCaches",
		"How to drop caches between phases: auto, proc, fadvise or none")
	flag.Var(&offsetPolicy, "offsetPolicy",
		"Range for random read offsets: inclusive or within-extent")
	flag.Var(&readBlockSize, "readBlockSize", "The block size for reading")
	flag.Var(&totalSize, "size", "Total size to write")
	flag.Var(&writeBlockSize, "writeBlockSize", "The block size for writing")
}

func printUsage() {
	fmt.Fprintln(os.Stderr,
		"Usage: diskspeed [flags...]")
	fmt.Fprintln(os.Stderr,
		"Test the sequential write and random read speed of a file-system")
	fmt.Fprintln(os.Stderr, "Common flags:")
	flag.PrintDefaults()
}

func makeConfig() diskbench.Config {
	return diskbench.Config{
		Filename:       *filename,
		TotalSize:      uint64(totalSize),
		WriteBlockSize: uint64(writeBlockSize),
		ReadBlockSize:  uint64(readBlockSize),
		Verbose:        *verbose,
		DirectIO:       *directIO,
		OffsetPolicy:   offsetPolicy,
		Seed:           *seed,
	}
}

func doMain(logger log.DebugLogger) error {
	config := makeConfig()
	if err := config.Check(); err != nil {
		return err
	}
	logger.Printf("Try write and read file: %s, size: %s\n",
		config.Filename, format.FormatBytes(config.TotalSize))
	if err := checkSpace(config, logger); err != nil {
		return err
	}
	var progress diskbench.Progress
	if config.Verbose {
		progress = newProgressBar(os.Stderr)
	}
	session, err := diskbench.New(config, progress, logger)
	if err != nil {
		return err
	}
	if *portNum > 0 {
		if err := startMetricsServer(session, *portNum, logger); err != nil {
			return err
		}
	}
	report, err := session.Run(cachedrop.New(dropCaches, logger))
	if err != nil {
		return err
	}
	if *jsonOutput {
		return report.WriteJSON(os.Stdout)
	}
	return report.WriteText(os.Stdout)
}

func main() {
	flag.CommandLine.Init(filepath.Base(os.Args[0]), flag.ContinueOnError)
	if err := loadflags.LoadForCli("diskspeed"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Usage = printUsage
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		printUsage()
		os.Exit(1)
	}
	logger := cmdlogger.New()
	logger.Printf("Command line: %s\n", strings.Join(os.Args, " "))
	if err := doMain(logger); err != nil {
		logger.Fatalln(err)
	}
	logger.Println("Done!")
}
