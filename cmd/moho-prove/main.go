// Copyright 2025 Certen Protocol
//
// Command moho-prove is the native harness around the recursion driver: it
// reads a single RecInput from its configured input, runs one recursion
// step, and commits the resulting RecOutput to its configured output. It
// exists to give the driver a process to run in outside of a real zkVM
// guest, not to make any protocol decisions of its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/moho-network/attest-engine/internal/buildinfo"
	"github.com/moho-network/attest-engine/pkg/codec"
	"github.com/moho-network/attest-engine/pkg/hostsim"
	"github.com/moho-network/attest-engine/pkg/recursion"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "path to a canonically-encoded RecInput (defaults to stdin)")
		outputPath = flag.String("output", "", "path to write the canonically-encoded RecOutput (defaults to stdout)")
		selftest   = flag.Bool("selftest", false, "run the built-in recursion scenario suite instead of reading a RecInput")
		showHelp   = flag.Bool("help", false, "show help message")
	)
	flag.Parse()

	if *showHelp {
		flag.Usage()
		return
	}

	cfg := buildinfo.Load()
	logger := buildinfo.NewLogger("moho-prove")

	if *selftest || cfg.SelfTest {
		logger.Printf("running self-test scenario suite")
		if err := runSelfTest(logger); err != nil {
			logger.Fatalf("self-test failed: %v", err)
		}
		logger.Printf("self-test suite passed")
		return
	}

	in, err := os.Open(orStdin(*inputPath))
	if err != nil {
		logger.Fatalf("opening input: %v", err)
	}
	defer in.Close()

	out, err := openOutput(*outputPath)
	if err != nil {
		logger.Fatalf("opening output: %v", err)
	}
	defer out.Close()

	host := hostsim.NewStreamHost(in, out)
	if err := runOnce(host, cfg.MaxWitnessBytes, logger); err != nil {
		logger.Fatalf("recursion step failed: %v", err)
	}
}

func orStdin(path string) string {
	if path == "" {
		return "/dev/stdin"
	}
	return path
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func runOnce(host hostsim.Host, maxWitnessBytes int, logger *log.Logger) error {
	raw, err := host.ReadInputBytes()
	if err != nil {
		return err
	}
	if len(raw) > maxWitnessBytes {
		logger.Printf("warning: input of %d bytes exceeds configured MOHO_MAX_WITNESS_BYTES=%d", len(raw), maxWitnessBytes)
	}

	in, err := codec.DecodeRecInput(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", recursion.ErrDecodeError, err)
	}

	out, err := recursion.Step(context.Background(), in)
	if err != nil {
		return err
	}

	return host.CommitOutputBytes(codec.EncodeRecOutput(out))
}
