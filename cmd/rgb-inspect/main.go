// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

// rgb-inspect decodes RGB Bech32 strings and prints what they
// contain, without touching any wallet or node state. It exists so
// that payload contents can be examined on demand — the codec library
// itself never logs or prints what it decodes.
//
// Decode a string:
//
//	rgb-inspect transition1q935qqsqpr0f9t
//	rgb-inspect --hex sch1...
//
// Wrap raw hex bytes under an arbitrary tag (useful for producing
// test inputs for kinds this build does not know):
//
//	rgb-inspect --wrap mykind --payload 00ff12
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/grunch/rgb-core/lib/payload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var showHex bool
	var wrapTag string
	var payloadHex string
	var verbose bool

	flagSet := pflag.NewFlagSet("rgb-inspect", pflag.ContinueOnError)
	flagSet.BoolVar(&showHex, "hex", false, "print the payload body as hex alongside the summary")
	flagSet.StringVar(&wrapTag, "wrap", "", "encode mode: wrap --payload bytes under this tag")
	flagSet.StringVar(&payloadHex, "payload", "", "hex bytes to wrap (with --wrap)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log decoding detail to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if wrapTag != "" {
		return wrapBytes(wrapTag, payloadHex)
	}

	arguments := flagSet.Args()
	if len(arguments) != 1 {
		printHelp(flagSet)
		return fmt.Errorf("expected exactly one bech32 string, got %d arguments", len(arguments))
	}
	return inspect(logger, arguments[0], showHex)
}

func inspect(logger *slog.Logger, text string, showHex bool) error {
	decoded, err := payload.Parse(text)
	if err != nil {
		return err
	}
	logger.Debug("parsed payload", "tag", decoded.Tag(), "kind", decoded.Kind().String())

	fmt.Printf("kind: %s\n", decoded.Kind())
	fmt.Printf("tag:  %s\n", decoded.Tag())

	if showHex {
		_, body, err := decoded.Encode()
		if err != nil {
			return err
		}
		fmt.Printf("body: %s\n", hex.EncodeToString(body))
	}

	return summarize(decoded)
}

// summarize prints one kind-specific line per payload.
func summarize(p payload.Payload) error {
	switch p.Kind() {
	case payload.KindBlindedOutpoint:
		outpoint, err := p.BlindedOutpoint()
		if err != nil {
			return err
		}
		fmt.Printf("outpoint: %s\n", outpoint)

	case payload.KindSchemaID:
		id, err := p.SchemaID()
		if err != nil {
			return err
		}
		fmt.Printf("schema id: %s\n", id)

	case payload.KindContractID:
		id, err := p.ContractID()
		if err != nil {
			return err
		}
		fmt.Printf("contract id: %s\n", id)

	case payload.KindSchema:
		schema, err := p.Schema()
		if err != nil {
			return err
		}
		id, err := schema.ID()
		if err != nil {
			return err
		}
		fmt.Printf("schema v%d: %d field types, %d transition types (id %s)\n",
			schema.Version, len(schema.FieldTypes), len(schema.TransitionTypes), id)

	case payload.KindGenesis:
		genesis, err := p.Genesis()
		if err != nil {
			return err
		}
		id, err := genesis.ContractID()
		if err != nil {
			return err
		}
		fmt.Printf("genesis under schema %s: %d metadata fields, %d assignments (contract %s)\n",
			genesis.SchemaID, len(genesis.Metadata), len(genesis.Assignments), id)

	case payload.KindTransition:
		transition, err := p.Transition()
		if err != nil {
			return err
		}
		fmt.Printf("transition type %d: %d parents, %d assignments, %d metadata fields\n",
			transition.TransitionType, len(transition.Parents),
			len(transition.Assignments), len(transition.Metadata))

	case payload.KindExtension:
		extension, err := p.Extension()
		if err != nil {
			return err
		}
		fmt.Printf("extension type %d under contract %s\n",
			extension.ExtensionType, extension.ContractID)

	case payload.KindAnchor:
		anchor, err := p.Anchor()
		if err != nil {
			return err
		}
		fmt.Printf("anchor in tx %s output %d (%d proof nodes)\n",
			hex.EncodeToString(anchor.TxID[:]), anchor.OutputIndex, len(anchor.MerkleProof))

	case payload.KindDisclosure:
		disclosure, err := p.Disclosure()
		if err != nil {
			return err
		}
		fmt.Printf("disclosure: %d anchors, %d transitions, %d extensions\n",
			len(disclosure.Anchors), len(disclosure.Transitions), len(disclosure.Extensions))

	case payload.KindOther:
		_, body, err := p.Other()
		if err != nil {
			return err
		}
		fmt.Printf("unrecognized kind, %d payload bytes\n", len(body))
	}
	return nil
}

func wrapBytes(tag, payloadHex string) error {
	body, err := hex.DecodeString(payloadHex)
	if err != nil {
		return fmt.Errorf("decoding --payload hex: %w", err)
	}
	text, err := payload.Format(payload.WrapOther(tag, body))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `rgb-inspect — decode RGB bech32 strings

Usage:
  rgb-inspect [--hex] <bech32-string>
  rgb-inspect --wrap <tag> --payload <hex>

Flags:
%s`, flagSet.FlagUsages())
}
