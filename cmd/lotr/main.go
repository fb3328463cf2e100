package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/armon/go-metrics"
	"github.com/pkg/errors"

	"github.com/scottcagno/hashmap/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashmap/pkg/logger"
)

// config mirrors the toml file given with -config
type config struct {
	Map openaddr.MapConfig `toml:"map"`
	Log logger.Config      `toml:"log"`
}

var characters = []struct {
	race, name string
}{
	{"Hobbit", "Bilbo"},
	{"Hobbit", "Frodo"},
	{"Wizard", "Gandalf"},
	{"Human", "Aragorn"},
	{"Elf", "Legolas"},
	{"Maiar", "The Necromancer"},
	{"Maiar", "Sauron"},
	{"RingBearer", "Gollum"},
	{"LadyOfLight", "Galadriel"},
	{"HalfElven", "Arwen"},
	{"Ent", "Treebeard"},
}

func loadConfig(path string) (*config, error) {
	conf := &config{
		Map: openaddr.MapConfig{
			InitialCapacity: 8,
			MaxLoadRatio:    0.5,
			GrowthFactor:    3,
		},
	}
	if path == "" {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, errors.Wrapf(err, "lotr: loading config %s", path)
	}
	return conf, nil
}

func run(w io.Writer, conf *config) error {
	log, err := logger.New(&conf.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	sink := metrics.NewInmemSink(time.Minute, time.Minute)
	mconf := metrics.DefaultConfig("lotr")
	mconf.EnableHostname = false
	mconf.EnableRuntimeMetrics = false
	met, err := metrics.New(mconf, sink)
	if err != nil {
		return errors.Wrap(err, "lotr: metrics")
	}

	conf.Map.Logger = log
	conf.Map.Metrics = met
	hm := openaddr.New[string](&conf.Map)
	for _, c := range characters {
		hm.Set(c.race, c.name)
	}

	fmt.Fprintf(w, "%s\n", hm)
	fmt.Fprintf(w, "length: %d (set %d times)\n", hm.Len(), len(characters))
	fmt.Fprintf(w, "capacity: %d\n", hm.Cap())
	for _, race := range []string{"Maiar", "Hobbit"} {
		name, err := hm.Get(race)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", race, name)
	}
	fmt.Fprintf(w, "resizes: %d\n", countResizes(sink))
	return nil
}

func countResizes(sink *metrics.InmemSink) int {
	var n int
	for _, intv := range sink.Data() {
		intv.RLock()
		for name, c := range intv.Counters {
			if strings.HasSuffix(name, "hashmap.resize") {
				n += c.Count
			}
		}
		intv.RUnlock()
	}
	return n
}

func main() {
	path := flag.String("config", "", "toml file with [map] and [log] tables")
	flag.Parse()

	conf, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(os.Stdout, conf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
