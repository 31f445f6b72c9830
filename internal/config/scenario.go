package config

type Scenario struct {
	ID      string      `yaml:"id"`
	Note    string      `yaml:"note"`
	Board   BoardDef    `yaml:"board"`
	Victory string      `yaml:"victory"`
	Units   []UnitDef   `yaml:"units"`
	Options []OptionDef `yaml:"options"`
}

type BoardDef struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PointDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type UnitDef struct {
	ID       string `yaml:"id"`
	Alliance string `yaml:"alliance"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Dir      string `yaml:"dir"`
	HP       int    `yaml:"hp"`
}

// OptionDef is one (target, direction) attack option as the area-of-effect
// resolver would hand it over: affected tiles, marks and launch tiles.
type OptionDef struct {
	ID          string     `yaml:"id"`
	Caster      string     `yaml:"caster"`
	Ability     string     `yaml:"ability"`
	Target      PointDef   `yaml:"target"`
	Direction   string     `yaml:"direction"`
	Area        []PointDef `yaml:"area"`
	CasterMatch bool       `yaml:"caster_match"`
	Marks       []MarkDef  `yaml:"marks"`
	MoveTargets []PointDef `yaml:"move_targets"`
	Note        string     `yaml:"note"`
}

type MarkDef struct {
	At    PointDef `yaml:"at"`
	Match bool     `yaml:"match"`
}
