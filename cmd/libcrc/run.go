package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash"
	"io"
	"log"
	"strings"

	"github.com/JoseAmador95/libcrc/internal/config"
	"github.com/JoseAmador95/libcrc/internal/source"
	"github.com/JoseAmador95/libcrc/pkg/crc"
	"github.com/JoseAmador95/libcrc/pkg/nmea"
)

const defaultConfigPath = "./libcrc.yaml"

var checkInput = []byte("123456789")

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "libcrc: ", 0)

	fs := flag.NewFlagSet("libcrc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", defaultConfigPath, "Path to YAML config")
	algs := fs.String("alg", "", "Comma-separated algorithms, overrides the config")
	list := fs.Bool("list", false, "List supported algorithms and exit")
	nmeaMode := fs.Bool("nmea", false, "Check or complete NMEA sentences, one per line")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	// The default config path is optional; an explicit one must exist.
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := config.Load(*configPath, !explicit)
	if err != nil {
		logger.Printf("config load failed: %v", err)
		return 1
	}

	if *algs != "" {
		names := strings.Split(*algs, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		cfg.Checksum.Algorithms = names
	}
	variants, err := cfg.Variants()
	if err != nil {
		logger.Printf("algorithm selection failed: %v", err)
		return 1
	}

	if *nmeaMode {
		return runNMEA(fs.Args(), stdin, stdout, logger)
	}

	opts := source.Options{MMap: cfg.Input.MMapEnabled(), MMapMinBytes: cfg.Input.MMapMinBytes}
	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	status := 0
	for _, path := range files {
		hs := make([]hash.Hash64, len(variants))
		for i, v := range variants {
			hs[i] = v.NewHash()
		}

		var res source.Result
		if path == "-" {
			res.Size, err = source.Stream(stdin, hs...)
		} else {
			res, err = source.File(path, opts, hs...)
		}
		if err != nil {
			logger.Printf("read failed path=%s err=%v", path, err)
			status = 1
			continue
		}
		if *verbose {
			logger.Printf("source path=%s size=%d mmap=%t", path, res.Size, res.Mapped)
		}
		for i, v := range variants {
			fmt.Fprintf(stdout, "%s  %s  %s\n", formatSum(cfg.Checksum, v.Width(), hs[i].Sum64()), v, path)
		}
	}
	return status
}

func formatSum(c config.ChecksumConfig, width int, sum uint64) string {
	if c.Format == "dec" {
		return fmt.Sprintf("%d", sum)
	}
	verb := "%0*x"
	if c.Uppercase {
		verb = "%0*X"
	}
	return fmt.Sprintf(verb, width/4, sum)
}

func printList(w io.Writer) {
	for _, name := range crc.Names() {
		v, err := crc.Lookup(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-12s width=%-2d check=0x%0*X\n", name, v.Width(), v.Width()/4, v.Checksum64(checkInput))
	}
}

// runNMEA reads sentences line by line. Lines carrying a checksum are
// verified; lines without one are printed with their checksum appended.
func runNMEA(files []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) int {
	if len(files) > 0 {
		logger.Printf("nmea mode reads stdin only, ignoring %d file argument(s)", len(files))
	}
	status := 0
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.Contains(line, "*") {
			fmt.Fprintln(stdout, nmea.Format(strings.TrimPrefix(line, "$")))
			continue
		}
		if err := nmea.Verify(line); err != nil {
			fmt.Fprintf(stdout, "bad  %s  (%v)\n", line, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "ok   %s\n", line)
	}
	if err := sc.Err(); err != nil {
		logger.Printf("nmea read failed: %v", err)
		return 1
	}
	return status
}
