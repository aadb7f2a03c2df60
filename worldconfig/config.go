// Package worldconfig loads the server-wide feature-flag and tuning-constant
// set that gates optional skill-engine behavior: which switch skills persist
// across logout, whether AoE bullet decompression is automatic, and the
// handful of bonus multipliers and spam-guard thresholds a deployment can
// tune without a code change.
package worldconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of world-tunable flags and constants.
type Config struct {
	// SaveSwitchSkills persists a character's ON_TOGGLE switch-skill states
	// across logout/login instead of resetting them to off.
	SaveSwitchSkills bool `yaml:"saveSwitchSkills"`

	// AutoDecompressForSkillUses expands a compressed bullet/shot count into
	// individual hits for skill-use bookkeeping (XP, familiarity) rather than
	// crediting the compressed skill use once.
	AutoDecompressForSkillUses bool `yaml:"autoDecompressForSkillUses"`

	// NRAStatusNull makes a NULL-class NRA outcome also block any on-hit
	// status roll, not just the damage/heal channel.
	NRAStatusNull bool `yaml:"NRAStatusNull"`

	// CritDefenseReduction is the percent a target's defense is reduced by
	// on a critical hit, consumed by DamageMath.Defense.
	CritDefenseReduction float64 `yaml:"critDefenseReduction"`

	// IFramesEnabled toggles whether a dodge/guard window grants full
	// invulnerability frames rather than just a damage-reduction modifier.
	IFramesEnabled bool `yaml:"IFramesEnabled"`

	// AIEstomaChargeIgnore lets AI-controlled entities ignore the enemy's
	// charge-time window for threat evaluation (they react as if every
	// charged skill were already INSTANT).
	AIEstomaChargeIgnore bool `yaml:"AIEstomaChargeIgnore"`

	// AIEstomaDuration is how long, in milliseconds, an Estoma-style
	// aggro-suppression effect lasts once triggered.
	AIEstomaDuration int64 `yaml:"AIEstomaDuration"`

	// FusionGaugeBonus scales fusion-gauge gain from skill use, as a
	// percent multiplier (100 = unchanged).
	FusionGaugeBonus float64 `yaml:"fusionGaugeBonus"`

	// XPBonus scales AddXP calls the same way, percent multiplier.
	XPBonus float64 `yaml:"xpBonus"`

	// BethelBonus scales Bethel-point gain, percent multiplier.
	BethelBonus float64 `yaml:"bethelBonus"`

	// DigitalizePointBonus scales digitalize-point gain, percent multiplier.
	DigitalizePointBonus float64 `yaml:"digitalizePointBonus"`

	// SpawnSpamWindow is the sliding window, in milliseconds, over which
	// repeated summon/spawn-producing skill uses are counted.
	SpawnSpamWindow int64 `yaml:"spawnSpamWindow"`

	// SpawnSpamLimit is the max spawn count allowed within SpawnSpamWindow
	// before further spawns are rejected with CodeGenericUse.
	SpawnSpamLimit int `yaml:"spawnSpamLimit"`
}

// Default returns the conservative baseline a fresh deployment starts from:
// every bonus multiplier at 100% (unchanged), every behavioral flag off, and
// spam guard thresholds wide enough not to interfere with legitimate play.
func Default() Config {
	return Config{
		SaveSwitchSkills:           false,
		AutoDecompressForSkillUses: false,
		NRAStatusNull:              false,
		CritDefenseReduction:       0,
		IFramesEnabled:             false,
		AIEstomaChargeIgnore:       false,
		AIEstomaDuration:           10_000,
		FusionGaugeBonus:           100,
		XPBonus:                    100,
		BethelBonus:                100,
		DigitalizePointBonus:       100,
		SpawnSpamWindow:            5_000,
		SpawnSpamLimit:             10,
	}
}

// Load reads a YAML world-config file at path, starting from Default and
// overriding whatever fields the file sets.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("worldconfig: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("worldconfig: parse %s: %w", path, err)
	}

	return cfg, nil
}
