// Package bench drives the trees with random workloads, checking them against a sorted
// slice and timing every operation.
package bench

import (
	"github.com/pkg/errors"
	"github.com/sephirothx/dstruct/Trees"
	"github.com/spf13/viper"
)

// Config of a run. The keys are also the viper keys.
type Config struct {
	Tree       string `mapstructure:"tree"`
	Ops        int    `mapstructure:"ops"`
	KeyRange   int    `mapstructure:"key_range"`
	Seed       int64  `mapstructure:"seed"`
	AuditEvery int    `mapstructure:"audit_every"` // 0 audits only once, at the end.
	LogLevel   string `mapstructure:"log_level"`
}

// SetDefaults registers the default of every key in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tree", "rb")
	v.SetDefault("ops", 100000)
	v.SetDefault("key_range", 1000)
	v.SetDefault("seed", 1)
	v.SetDefault("audit_every", 1000)
	v.SetDefault("log_level", "info")
}

// Load the Config from v and validate it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decoding config")
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if _, err := NewTree(c.Tree); err != nil {
		return err
	}
	if c.Ops < 0 {
		return errors.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.KeyRange <= 0 {
		return errors.Errorf("key_range must be positive, got %d", c.KeyRange)
	}
	if c.AuditEvery < 0 {
		return errors.Errorf("audit_every must not be negative, got %d", c.AuditEvery)
	}
	return nil
}

// Engines names every tree NewTree can build.
var Engines = []string{"avl", "rb", "bst"}

// NewTree returns an empty tree of the named kind.
func NewTree(name string) (Trees.Tree[int], error) {
	switch name {
	case "avl":
		return Trees.NewAVL[int](), nil
	case "rb":
		return Trees.NewRB[int, uint32](0), nil
	case "bst":
		return Trees.NewBST[int](), nil
	}
	return nil, errors.Errorf("unknown tree %q, want one of %v", name, Engines)
}
