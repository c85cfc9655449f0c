// Package prefs persists the user's preferences: the starting life total,
// the backlight policy and whether key presses give audio feedback.
//
// The on-store encoding is three LF-terminated text lines in fixed order:
// starting life, backlight flag (0/1), sound flag (0/1). Counter values are
// never persisted, only preferences.
package prefs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/antsy/Lifecounter/hal"
)

// FileName is the blob name in the app's private data area.
const FileName = "lifecounter.cfg"

// StartingLives is the enumerated set of selectable starting life totals.
// The settings screen only ever cycles through this set.
var StartingLives = [...]int{0, 10, 20, 40, 100}

var startingLifeLabels = [...]string{"Zero", "Ten", "Twenty", "Forty", "Hundred"}

const (
	defaultLife      = 20
	defaultLifeIndex = 2
)

// Record is the persisted preferences blob.
type Record struct {
	DefaultLife int
	BacklightOn bool
	SoundOn     bool
}

// Default returns the record used when nothing is stored or the stored
// blob cannot be read.
func Default() Record {
	return Record{DefaultLife: defaultLife, BacklightOn: false, SoundOn: false}
}

// StartingLifeIndex returns the position of v in StartingLives, or the
// index of the stock value when v was never a selectable choice (for
// example a hand-edited store).
func StartingLifeIndex(v int) int {
	for i, s := range StartingLives {
		if s == v {
			return i
		}
	}
	return defaultLifeIndex
}

// StartingLifeLabel returns the human-readable name of a starting life value.
func StartingLifeLabel(v int) string {
	return startingLifeLabels[StartingLifeIndex(v)]
}

// NextStartingLife returns the value after v in the cycle.
func NextStartingLife(v int) int {
	return StartingLives[(StartingLifeIndex(v)+1)%len(StartingLives)]
}

// PrevStartingLife returns the value before v in the cycle.
func PrevStartingLife(v int) int {
	n := len(StartingLives)
	return StartingLives[(StartingLifeIndex(v)+n-1)%n]
}

// Load reads the record from the store. A store that cannot be opened, a
// truncated blob or a malformed line all degrade per-field to Default();
// Load never fails.
func Load(store hal.Store, log hal.Logger) Record {
	rec := Default()

	r, err := store.Open(FileName)
	if err != nil {
		logLine(log, "prefs: open for read failed, using defaults")
		return rec
	}
	defer r.Close()

	sc := bufio.NewScanner(r)
	for i := 0; i < 3; i++ {
		if !sc.Scan() {
			logLine(log, fmt.Sprintf("prefs: short read at line %d, keeping defaults for the rest", i))
			break
		}
		v := atoi(sc.Text())
		switch i {
		case 0:
			rec.DefaultLife = v
		case 1:
			rec.BacklightOn = v != 0
		case 2:
			rec.SoundOn = v != 0
		}
	}
	return rec
}

// Save writes the record to the store, replacing any prior content.
func Save(store hal.Store, rec Record) error {
	w, err := store.Create(FileName)
	if err != nil {
		return fmt.Errorf("prefs: open for write: %w", err)
	}

	if _, err := io.WriteString(w, encode(rec)); err != nil {
		_ = w.Close()
		return fmt.Errorf("prefs: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("prefs: close: %w", err)
	}
	return nil
}

func encode(rec Record) string {
	return fmt.Sprintf("%d\n%d\n%d\n", rec.DefaultLife, boolToInt(rec.BacklightOn), boolToInt(rec.SoundOn))
}

// atoi parses a leading optional sign and decimal digits; anything else
// yields 0. Malformed lines are silently treated as zero, not as errors.
func atoi(s string) int {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func logLine(log hal.Logger, s string) {
	if log != nil {
		log.WriteLineString(s)
	}
}
