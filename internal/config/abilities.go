package config

type AbilitiesConfig struct {
	Abilities []AbilityDef `yaml:"abilities"`
}

type AbilityDef struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	HitRates []HitRateDef `yaml:"hit_rates"`
	Note     string       `yaml:"note"`
}

type HitRateDef struct {
	Kind       string `yaml:"kind"`
	AngleBased bool   `yaml:"angle_based"`
}
