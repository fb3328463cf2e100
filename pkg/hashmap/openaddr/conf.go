package openaddr

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/armon/go-metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scottcagno/hashmap/pkg/hash"
)

const (

	// defaults
	defaultInitialCapacity = 8
	defaultMaxLoadRatio    = 0.5
	defaultGrowthFactor    = 3
	defaultHash            = hash.DJB2

	// bounds
	minInitialCapacity = 1
	maxInitialCapacity = 1 << 30
	maxLoadRatioBound  = 0.90 // must stay below 1 so an empty bucket always remains
	minGrowthFactor    = 1.25
	maxGrowthFactor    = 16
)

// MapConfig holds configuration settings for a Map instance
type MapConfig struct {
	InitialCapacity int              `toml:"initial_capacity"` // starting bucket count
	MaxLoadRatio    float64          `toml:"max_load_ratio"`   // (live+deleted)/capacity that triggers growth
	GrowthFactor    float64          `toml:"growth_factor"`    // capacity multiplier on growth
	Hash            string           `toml:"hash"`             // registered hash function name
	HashFunc        hash.Func        `toml:"-"`                // overrides Hash when set
	Logger          *zap.Logger      `toml:"-"`                // defaults to a no-op logger
	Metrics         *metrics.Metrics `toml:"-"`                // nil disables metrics
}

func defaultMapConfig() *MapConfig {
	return &MapConfig{
		InitialCapacity: defaultInitialCapacity,
		MaxLoadRatio:    defaultMaxLoadRatio,
		GrowthFactor:    defaultGrowthFactor,
		Hash:            defaultHash,
	}
}

func (conf *MapConfig) String() string {
	var sb strings.Builder
	sb.WriteString("InitialCapacity: ")
	sb.WriteString(strconv.Itoa(conf.InitialCapacity))
	sb.WriteString("\n")
	sb.WriteString("MaxLoadRatio: ")
	sb.WriteString(strconv.FormatFloat(conf.MaxLoadRatio, 'g', -1, 64))
	sb.WriteString("\n")
	sb.WriteString("GrowthFactor: ")
	sb.WriteString(strconv.FormatFloat(conf.GrowthFactor, 'g', -1, 64))
	sb.WriteString("\n")
	sb.WriteString("Hash: ")
	if conf.HashFunc != nil && conf.Hash == "" {
		sb.WriteString("custom")
	} else {
		sb.WriteString(conf.Hash)
	}
	return sb.String()
}

// LoadMapConfig decodes a toml file into a MapConfig and checks it
func LoadMapConfig(path string) (*MapConfig, error) {
	conf := new(MapConfig)
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, errors.Wrapf(err, "openaddr: loading config %s", path)
	}
	return checkMapConfig(conf), nil
}

// checkMapConfig is a helper to make sure the configuration options are
// correct and handles any missing options. It never modifies the caller's
// config; a checked copy is returned.
func checkMapConfig(conf *MapConfig) *MapConfig {
	if conf == nil {
		conf = defaultMapConfig()
	} else {
		c := *conf
		conf = &c
	}
	if conf.Logger == nil {
		conf.Logger = zap.NewNop()
	}
	if conf.InitialCapacity <= 0 {
		conf.InitialCapacity = defaultInitialCapacity
	}
	if conf.InitialCapacity < minInitialCapacity {
		conf.InitialCapacity = minInitialCapacity
	}
	if conf.InitialCapacity > maxInitialCapacity {
		conf.InitialCapacity = maxInitialCapacity
	}
	if conf.MaxLoadRatio <= 0 {
		conf.MaxLoadRatio = defaultMaxLoadRatio
	}
	if conf.MaxLoadRatio > maxLoadRatioBound {
		conf.Logger.Warn("max load ratio clamped",
			zap.Float64("requested", conf.MaxLoadRatio), zap.Float64("used", maxLoadRatioBound))
		conf.MaxLoadRatio = maxLoadRatioBound
	}
	if conf.GrowthFactor <= 1 {
		conf.GrowthFactor = defaultGrowthFactor
	}
	if conf.GrowthFactor < minGrowthFactor {
		conf.GrowthFactor = minGrowthFactor
	}
	if conf.GrowthFactor > maxGrowthFactor {
		conf.GrowthFactor = maxGrowthFactor
	}
	if conf.HashFunc == nil {
		fn, err := hash.Lookup(conf.Hash)
		if err != nil {
			conf.Logger.Warn("falling back to default hash", zap.Error(err))
			conf.Hash = defaultHash
			fn, _ = hash.Lookup(defaultHash)
		}
		if conf.Hash == "" {
			conf.Hash = defaultHash
		}
		conf.HashFunc = fn
	}
	return conf
}
