package cracktime

import "strings"

// Attacker is an assumed brute-force throughput in guesses per second against
// an unsalted, single-round hash.
type Attacker struct {
	Name             string
	GuessesPerSecond uint64
}

// Algorithm is a relative cost multiplier modelling how much a hashing scheme
// slows each guess compared to a raw hash. Throughput is divided by Cost.
type Algorithm struct {
	Name string
	Cost uint64
}

var (
	VerySlow  = Attacker{Name: "VerySlow", GuessesPerSecond: 1}
	Slow      = Attacker{Name: "Slow", GuessesPerSecond: 100}
	Medium    = Attacker{Name: "Medium", GuessesPerSecond: 10_000}
	Fast      = Attacker{Name: "Fast", GuessesPerSecond: 1_000_000}
	VeryFast  = Attacker{Name: "VeryFast", GuessesPerSecond: 100_000_000}
	UltraFast = Attacker{Name: "UltraFast", GuessesPerSecond: 10_000_000_000}
	Insane    = Attacker{Name: "Insane", GuessesPerSecond: 1_000_000_000_000}
)

var (
	RawHash         = Algorithm{Name: "RawHash", Cost: 1}
	PBKDF2Medium    = Algorithm{Name: "PBKDF2Medium", Cost: 200}
	PBKDF2High      = Algorithm{Name: "PBKDF2High", Cost: 1_000}
	Bcrypt12        = Algorithm{Name: "Bcrypt12", Cost: 800}
	Argon2id64MBt3  = Algorithm{Name: "Argon2id64MBt3", Cost: 20_000}
	Argon2id512MBt4 = Algorithm{Name: "Argon2id512MBt4", Cost: 200_000}
)

// DefaultAttacker and DefaultAlgorithm are used when a caller does not choose.
var (
	DefaultAttacker  = Medium
	DefaultAlgorithm = RawHash
)

var attackers = []Attacker{VerySlow, Slow, Medium, Fast, VeryFast, UltraFast, Insane}

var algorithms = []Algorithm{RawHash, PBKDF2Medium, PBKDF2High, Bcrypt12, Argon2id64MBt3, Argon2id512MBt4}

// Attackers returns the attacker table ordered from slowest to fastest.
func Attackers() []Attacker {
	return append([]Attacker(nil), attackers...)
}

// Algorithms returns the algorithm cost table.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// AttackerByName looks up an attacker profile. Matching ignores case and the
// separators '_', '-' and ' ', so "very_fast" finds VeryFast.
func AttackerByName(name string) (Attacker, bool) {
	key := normalizeName(name)
	for _, a := range attackers {
		if normalizeName(a.Name) == key {
			return a, true
		}
	}
	return Attacker{}, false
}

// AlgorithmByName looks up an algorithm cost model using the same matching
// rules as AttackerByName, so "argon2id_64mb_t3" finds Argon2id64MBt3.
func AlgorithmByName(name string) (Algorithm, bool) {
	key := normalizeName(name)
	for _, a := range algorithms {
		if normalizeName(a.Name) == key {
			return a, true
		}
	}
	return Algorithm{}, false
}

var nameReplacer = strings.NewReplacer("_", "", "-", "", " ", "")

func normalizeName(s string) string {
	return strings.ToLower(nameReplacer.Replace(strings.TrimSpace(s)))
}
