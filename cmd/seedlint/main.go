package main

import (
	"flag"
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"homebase/internal/adapters/observability"
	"homebase/internal/domain"
	"homebase/internal/storage/memory"
)

// seedlint validates a catalog seed file before it is handed to the API:
// unique ids, valid categories, spot counts inside [0,total], and
// zero-padded date/time strings. The padding check is what keeps the query
// engine's lexical date/time ordering correct.
func main() {
	path := flag.String("seed", "", "path to seed JSON; built-in seed when empty")
	flag.Parse()

	log.Logger = observability.NewLogger("dev")

	entries := memory.DefaultSeed()
	if *path != "" {
		var err error
		entries, err = memory.LoadSeedFile(*path)
		if err != nil {
			log.Error().Err(err).Str("path", *path).Msg("seed invalid")
			os.Exit(1)
		}
	} else if err := memory.ValidateSeed(entries); err != nil {
		log.Error().Err(err).Msg("built-in seed invalid")
		os.Exit(1)
	}

	byTag := map[string]int{}
	events, services := 0, 0
	for _, e := range entries {
		for _, t := range e.Tags {
			byTag[t]++
		}
		if e.Category == domain.CategoryService {
			services++
		} else {
			events++
		}
	}

	tags := make([]string, 0, len(byTag))
	for t := range byTag {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	log.Info().
		Int("entries", len(entries)).
		Int("events", events).
		Int("services", services).
		Msg("seed ok")
	for _, t := range tags {
		log.Info().Str("tag", t).Int("entries", byTag[t]).Msg("tag usage")
	}
}
