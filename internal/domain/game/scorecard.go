package game

import (
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

const (
	// UpperBonusThreshold is the upper subtotal that earns the bonus
	UpperBonusThreshold = 63

	// UpperBonus is awarded when the upper subtotal reaches the threshold
	UpperBonus = 35
)

// Slot pairs a category with its score once played
type Slot struct {
	Category scoring.Category
	score    int
	filled   bool
}

// Score returns the recorded score and whether the slot has been played
func (s Slot) Score() (int, bool) {
	return s.score, s.filled
}

// Scorecard holds one slot per category for a single player.
// Recorded slots never change; totals are derived on every call.
type Scorecard struct {
	slots [scoring.CategoryCount]Slot
}

// NewScorecard creates an empty scorecard
func NewScorecard() *Scorecard {
	sc := &Scorecard{}
	for _, c := range scoring.Categories() {
		sc.slots[c] = Slot{Category: c}
	}
	return sc
}

// Record fills the slot for category. A slot can be filled once; zero is a valid score.
func (s *Scorecard) Record(category scoring.Category, score int) error {
	if !category.Valid() {
		return apperr.InvalidCategoryf("no such category %d", int(category))
	}
	if score < 0 {
		return apperr.InvalidArgumentf("score cannot be negative: %d", score)
	}

	slot := &s.slots[category]
	if slot.filled {
		return apperr.CategoryAlreadyScored(category.String())
	}

	slot.score = score
	slot.filled = true
	return nil
}

// Read returns the score for category; false means the slot is still open
func (s *Scorecard) Read(category scoring.Category) (int, bool) {
	if !category.Valid() {
		return 0, false
	}
	return s.slots[category].Score()
}

// IsFilled reports whether category has been played
func (s *Scorecard) IsFilled(category scoring.Category) bool {
	_, filled := s.Read(category)
	return filled
}

// OpenCategories returns the categories that can still be played, in scorecard order
func (s *Scorecard) OpenCategories() []scoring.Category {
	var open []scoring.Category
	for _, slot := range s.slots {
		if !slot.filled {
			open = append(open, slot.Category)
		}
	}
	return open
}

// IsComplete reports whether every slot has been played
func (s *Scorecard) IsComplete() bool {
	for _, slot := range s.slots {
		if !slot.filled {
			return false
		}
	}
	return true
}

// UpperSubtotal is the raw sum of the six number categories
func (s *Scorecard) UpperSubtotal() int {
	return s.subtotal(scoring.UpperCategories())
}

// UpperBonus returns 35 when the upper subtotal is at least 63
func (s *Scorecard) UpperBonus() int {
	if s.UpperSubtotal() >= UpperBonusThreshold {
		return UpperBonus
	}
	return 0
}

// UpperTotal is the upper subtotal plus bonus
func (s *Scorecard) UpperTotal() int {
	return s.UpperSubtotal() + s.UpperBonus()
}

// LowerSubtotal is the sum of the seven combination categories
func (s *Scorecard) LowerSubtotal() int {
	return s.subtotal(scoring.LowerCategories())
}

// GrandTotal is the upper total plus the lower subtotal
func (s *Scorecard) GrandTotal() int {
	return s.UpperTotal() + s.LowerSubtotal()
}

func (s *Scorecard) subtotal(categories []scoring.Category) int {
	total := 0
	for _, c := range categories {
		// open slots hold zero
		total += s.slots[c].score
	}
	return total
}

// ScorecardEntry is one row of a scorecard snapshot
type ScorecardEntry struct {
	Category scoring.Category `json:"category"`
	Score    int              `json:"score"`
	Filled   bool             `json:"filled"`
}

// ScorecardView is a read-only snapshot of a scorecard for display
type ScorecardView struct {
	PlayerIndex   int              `json:"player_index"`
	Upper         []ScorecardEntry `json:"upper"`
	Lower         []ScorecardEntry `json:"lower"`
	UpperSubtotal int              `json:"upper_subtotal"`
	UpperBonus    int              `json:"upper_bonus"`
	UpperTotal    int              `json:"upper_total"`
	LowerTotal    int              `json:"lower_total"`
	GrandTotal    int              `json:"grand_total"`
	Complete      bool             `json:"complete"`
}

// View snapshots the scorecard; later records do not change the returned value
func (s *Scorecard) View() *ScorecardView {
	view := &ScorecardView{
		UpperSubtotal: s.UpperSubtotal(),
		UpperBonus:    s.UpperBonus(),
		UpperTotal:    s.UpperTotal(),
		LowerTotal:    s.LowerSubtotal(),
		GrandTotal:    s.GrandTotal(),
		Complete:      s.IsComplete(),
	}

	for _, slot := range s.slots {
		score, filled := slot.Score()
		entry := ScorecardEntry{Category: slot.Category, Score: score, Filled: filled}
		if slot.Category.IsUpper() {
			view.Upper = append(view.Upper, entry)
		} else {
			view.Lower = append(view.Lower, entry)
		}
	}

	return view
}

// Entry looks up the row for category in the snapshot
func (v *ScorecardView) Entry(category scoring.Category) (ScorecardEntry, bool) {
	for _, rows := range [][]ScorecardEntry{v.Upper, v.Lower} {
		for _, e := range rows {
			if e.Category == category {
				return e, true
			}
		}
	}
	return ScorecardEntry{}, false
}
