package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/transferworks/storage-transfer-backend/pkg/config"
	"github.com/transferworks/storage-transfer-backend/pkg/inventory"
)

func main() {
	args := os.Args
	config.Load()
	config.ConfigureLogging()

	if len(args) < 2 {
		log.Fatal().Msg("Requires arguments: map, fetch")
	}

	docs := config.Get().Docs
	mapping := inventory.BuildMapping(docs.RootDir, docs.Version, docs.Packages, docs.CurrentPackage)

	if args[1] == "map" {
		printMapping(mapping)
	} else if args[1] == "fetch" {
		cacheDir := "_inventory_cache"
		if len(args) > 2 {
			flagset := flag.NewFlagSet("fetch", flag.ExitOnError)
			flagset.StringVar(&cacheDir, "cache-dir", cacheDir, "Directory to download inventories into")
			if err := flagset.Parse(args[2:]); err != nil {
				log.Error().Err(err).Msg("Usage:  ./inventory fetch [--cache-dir DIR]")
				os.Exit(1)
			}
		}
		err := inventory.FetchInventories(context.Background(), docs.Server, mapping, cacheDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to fetch inventories")
		}
	} else {
		log.Fatal().Msgf("Unknown argument: %s", args[1])
	}
}

func printMapping(mapping inventory.Mapping) {
	out, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to serialize mapping")
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
