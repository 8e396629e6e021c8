package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"rubbishrsa/src/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "gen":
		err = cmd.GenerateCommand(ctx, args)
	case "enc":
		err = cmd.EncryptCommand(args)
	case "dec":
		err = cmd.DecryptCommand(args)
	case "sign":
		err = cmd.SignCommand(args)
	case "verify":
		err = cmd.VerifyCommand(args)
	case "crack":
		err = cmd.CrackCommand(ctx, args)
	case "brute":
		err = cmd.BruteCommand(ctx, args)
	case "brute-sig":
		err = cmd.BruteSigCommand(ctx, args)
	case "forge":
		err = cmd.ForgeCommand(ctx, args)
	case "enc-multiply":
		err = cmd.EncMultiplyCommand(args)
	case "sig-forge-multiply":
		err = cmd.SigForgeMultiplyCommand(args)
	case "benchmark":
		err = cmd.BenchmarkCommand(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("rubbishrsa - a textbook (unpadded) RSA toolkit\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s <command> [options]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  gen                  Generate a new private key\n")
	fmt.Printf("  enc                  Raw RSA-encrypt a message\n")
	fmt.Printf("  dec                  Raw RSA-decrypt a ciphertext\n")
	fmt.Printf("  sign                 Raw RSA-sign a message\n")
	fmt.Printf("  verify               Raw RSA-verify a signature\n")
	fmt.Printf("  crack                Factor a public key into its private key\n")
	fmt.Printf("  brute                Brute-force a plaintext\n")
	fmt.Printf("  brute-sig            Brute-force a signature against a target\n")
	fmt.Printf("  forge                Forge an invisible-suffix-tolerant signature\n")
	fmt.Printf("  enc-multiply         Homomorphically scale an unknown plaintext\n")
	fmt.Printf("  sig-forge-multiply   Combine two signatures into a forged one\n")
	fmt.Printf("  benchmark            Benchmark primality testing throughput\n")
	fmt.Printf("  help                 Show this help message\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s gen --bits 512 --output alice.key\n", os.Args[0])
	fmt.Printf("  %s enc --key alice.key --message \"hello\"\n", os.Args[0])
	fmt.Printf("  %s crack --key alice.key --output alice.cracked.key\n", os.Args[0])
	fmt.Printf("\nFor detailed help on a command, use:\n")
	fmt.Printf("  %s <command> --help\n", os.Args[0])
}
