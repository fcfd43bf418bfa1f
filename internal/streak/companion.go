package streak

// CompanionType selects one of the four evolution lines.
type CompanionType string

const (
	Plant  CompanionType = "plant"
	Pet    CompanionType = "pet"
	Dragon CompanionType = "dragon"
	Robot  CompanionType = "robot"
)

// CompanionTypes lists the selectable lines in onboarding order.
func CompanionTypes() []CompanionType {
	return []CompanionType{Plant, Pet, Dragon, Robot}
}

// Valid reports whether t names a known evolution line.
func (t CompanionType) Valid() bool {
	_, ok := evolutions[t]
	return ok
}

// MaxStage is the final evolution stage.
const MaxStage = 10

// EvolveVitality is the minimum vitality for an evolution to trigger.
const EvolveVitality = 70

// Companion is a view over a learner's companion fields. It carries no state
// of its own; construct one on demand from the aggregate.
type Companion struct {
	Type     CompanionType
	Stage    int
	Vitality int
}

type evolution struct {
	names       [MaxStage + 1]string
	art         [MaxStage + 1]string
	description string
}

var evolutions = map[CompanionType]evolution{
	Plant: {
		names: [...]string{
			"Seed", "Sprout", "Seedling", "Young Plant", "Bush",
			"Small Tree", "Tree", "Great Tree", "Ancient Oak", "Mystical Ent",
			"World Tree",
		},
		art: [...]string{
			"  .  ",
			" \\|/ \n  |  ",
			" \\|/ \n  |  \n -+- ",
			"  Y  \n  |  \n -+- ",
			" \\|/ \n\\|||/\n -+- ",
			"  🌿 \n \\|/ \n  |  \n _|_ ",
			"  🌳 \n /|\\ \n  |  \n_/|\\_",
			"  🌲 \n /|\\ \n//|\\\\\n _|_ ",
			" 🌟🌳🌟\n//|||\\\\\n  |||  \n_/|||\\_",
			"✨ 🌳 ✨\n //|||\\\\\n   |||  \n _/|||\\_",
			"   ★   \n 🌳🌟🌳 \n //|||\\\\\n   |||  \n _/|||\\_",
		},
		description: "Grows from a tiny seed into a legendary World Tree",
	},
	Pet: {
		names: [...]string{
			"Egg", "Hatchling", "Chick", "Young Bird", "Adult Bird",
			"Swift Falcon", "Guardian Eagle", "Majestic Phoenix", "Star Phoenix",
			"Cosmic Phoenix", "Eternal Phoenix",
		},
		art: [...]string{
			" (O) ",
			" ^v^ ",
			" >v< \n  V  ",
			" >O< \n  V  \n  W  ",
			" \\o/ \n  V  \n /W\\ ",
			"  🐦 \n <|> \n /W\\ ",
			"  🦅 \n <||>\n /WW\\",
			" 🔥🐦🔥\n  <||> \n  /WW\\ ",
			"✨🔥🐦🔥✨\n   <||>  \n   /WW\\  ",
			"  ★ 🔥 ★ \n  🐦🔥🐦 \n   <||>  \n   /WW\\  ",
			"  ★ 🔥 ★  \n 🐦🔥🐦🔥🐦\n   <||>   \n   /WW\\   ",
		},
		description: "Hatches from an egg and becomes an Eternal Phoenix",
	},
	Dragon: {
		names: [...]string{
			"Dragon Egg", "Wyrmling", "Drake", "Young Dragon", "Dragon",
			"Great Dragon", "Elder Dragon", "Ancient Wyrm", "Sky Wyrm",
			"Cosmic Dragon", "Primordial Dragon",
		},
		art: [...]string{
			" {O} ",
			" <o> \n  ~  ",
			" <O> \n  ~~ ",
			" /^^\\\n<O  >\n  ~~ ",
			" /^^\\ \n <OO> \n ~~~~ ",
			"  🐲  \n /^^\\ \n<O  O>\n ~~~~ ",
			"  🐉   \n /^^^\\ \n<O   O>\n ~~~~~ ",
			" 🔥🐉🔥 \n /^^^\\  \n<O   O> \n ~~~~~  ",
			"✨🔥🐉🔥✨\n  /^^^\\  \n <O   O> \n  ~~~~~  ",
			"  ★ 🔥 ★ \n  🐉🔥🐉 \n  /^^^\\  \n <O   O> \n  ~~~~~  ",
			"  ★ 🔥 ★  \n 🐉🔥🐉🔥🐉\n  /^^^\\   \n <O   O>  \n  ~~~~~   ",
		},
		description: "Rises from dragon egg to become a Primordial Dragon",
	},
	Robot: {
		names: [...]string{
			"Parts", "Basic Frame", "Simple Bot", "Advanced Bot", "AI Unit",
			"Smart System", "Quantum Processor", "Neural Network",
			"Singularity Core", "Transcendent AI", "Digital God",
		},
		art: [...]string{
			" [_] ",
			" [o] \n |_| ",
			" [O] \n<|_|>",
			" [O] \n<|||>\n |_| ",
			"  🤖  \n [O_O]\n <|||>\n  |_| ",
			"  🤖   \n[O___O]\n <|||> \n  |_|  ",
			" ⚡🤖⚡ \n[O___O] \n <|||>  \n  |_|   ",
			" ⚡🤖⚡  \n[O_____O]\n  <|||>  \n   |_|   ",
			"✨⚡🤖⚡✨\n[O_____O] \n <|||||>  \n   |_|    ",
			"  ★ ⚡ ★  \n  🤖⚡🤖  \n[O_____O] \n <|||||>  \n   |_|    ",
			"  ★ ⚡ ★   \n 🤖⚡🤖⚡🤖\n[O_____O]  \n <|||||>   \n   |_|     ",
		},
		description: "Assembles from parts into a transcendent Digital God",
	},
}

func (c Companion) clampedStage() int {
	s := c.Stage
	if s < 0 {
		s = 0
	}
	if s > MaxStage {
		s = MaxStage
	}
	return s
}

// Name returns the stage name, e.g. "Wyrmling" for a stage-1 dragon.
func (c Companion) Name() string {
	return evolutions[c.Type].names[c.clampedStage()]
}

// Art returns the multi-line ASCII portrait for the current stage.
func (c Companion) Art() string {
	return evolutions[c.Type].art[c.clampedStage()]
}

// Description returns the one-line arc summary for the evolution line.
func (c Companion) Description() string {
	return evolutions[c.Type].description
}

// CanEvolve reports whether the companion is below the final stage and
// healthy enough to advance.
func (c Companion) CanEvolve() bool {
	return c.Stage < MaxStage && c.Vitality >= EvolveVitality
}
