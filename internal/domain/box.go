package domain

import "fmt"

// Box is one of the six Leitner buckets.
type Box string

const (
	BoxZero  Box = "boxZero"
	BoxOne   Box = "boxOne"
	BoxTwo   Box = "boxTwo"
	BoxThree Box = "boxThree"
	BoxFour  Box = "boxFour"
	BoxFive  Box = "boxFive"
)

// BoxCount is the number of Leitner buckets.
const BoxCount = 6

// AllBoxes lists boxes in progression order.
var AllBoxes = [BoxCount]Box{BoxZero, BoxOne, BoxTwo, BoxThree, BoxFour, BoxFive}

type boxTransition struct {
	index    int
	promote  Box
	demote   Box
	terminal bool
}

// boxTransitions is the progression table. A wrong answer always lands in
// boxOne; boxZero is the no-penalty intro box.
var boxTransitions = map[Box]boxTransition{
	BoxZero:  {index: 0, promote: BoxOne, demote: BoxOne},
	BoxOne:   {index: 1, promote: BoxTwo, demote: BoxOne},
	BoxTwo:   {index: 2, promote: BoxThree, demote: BoxOne},
	BoxThree: {index: 3, promote: BoxFour, demote: BoxOne},
	BoxFour:  {index: 4, promote: BoxFive, demote: BoxOne},
	BoxFive:  {index: 5, demote: BoxOne, terminal: true},
}

func (b Box) String() string { return string(b) }

func (b Box) IsValid() bool {
	_, ok := boxTransitions[b]
	return ok
}

// Index is the position of the box in AllBoxes, or -1.
func (b Box) Index() int {
	if t, ok := boxTransitions[b]; ok {
		return t.index
	}
	return -1
}

// Promote returns the box a correct answer moves to. ok is false for the
// terminal box, where a correct answer graduates the word instead.
func (b Box) Promote() (Box, bool) {
	t := boxTransitions[b]
	if t.terminal || t.promote == "" {
		return "", false
	}
	return t.promote, true
}

// Demote returns the box a wrong answer moves to.
func (b Box) Demote() Box {
	return boxTransitions[b].demote
}

// IsTerminal reports whether a correct answer in b graduates the word.
func (b Box) IsTerminal() bool {
	return boxTransitions[b].terminal
}

// IsCleanup reports whether b is one of the review boxes beyond boxOne.
func (b Box) IsCleanup() bool {
	i := b.Index()
	return i >= BoxTwo.Index()
}

// ParseBox converts a stored box name into a Box.
func ParseBox(s string) (Box, error) {
	b := Box(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: unknown box %q", ErrValidation, s)
	}
	return b, nil
}

// BoxState is the per-scope Leitner state: six ordered boxes, the graduated
// ids (newest first) and the number of refills performed.
type BoxState struct {
	Boxes      [BoxCount][]Word
	Learned    []int64
	BatchIndex int
}

// Words returns the ordered contents of a box.
func (s *BoxState) Words(b Box) []Word {
	return s.Boxes[b.Index()]
}

// SetWords replaces the contents of a box.
func (s *BoxState) SetWords(b Box, words []Word) {
	s.Boxes[b.Index()] = words
}

// Len returns the number of words in a box.
func (s *BoxState) Len(b Box) int {
	return len(s.Boxes[b.Index()])
}

// Total returns the number of words across all boxes.
func (s *BoxState) Total() int {
	n := 0
	for _, words := range s.Boxes {
		n += len(words)
	}
	return n
}

// Counts returns per-box sizes keyed by box.
func (s *BoxState) Counts() map[Box]int {
	out := make(map[Box]int, BoxCount)
	for _, b := range AllBoxes {
		out[b] = s.Len(b)
	}
	return out
}

// Locate finds the box holding id.
func (s *BoxState) Locate(id int64) (Box, bool) {
	for _, b := range AllBoxes {
		for _, w := range s.Words(b) {
			if w.ID == id {
				return b, true
			}
		}
	}
	return "", false
}

// IsLearned reports whether id has graduated.
func (s *BoxState) IsLearned(id int64) bool {
	for _, l := range s.Learned {
		if l == id {
			return true
		}
	}
	return false
}

// MemberIDs returns every id held in a box or in Learned.
func (s *BoxState) MemberIDs() []int64 {
	ids := make([]int64, 0, s.Total()+len(s.Learned))
	for _, words := range s.Boxes {
		for _, w := range words {
			ids = append(ids, w.ID)
		}
	}
	return append(ids, s.Learned...)
}

// Clone returns a deep copy.
func (s *BoxState) Clone() *BoxState {
	c := &BoxState{BatchIndex: s.BatchIndex}
	for i, words := range s.Boxes {
		if words != nil {
			c.Boxes[i] = append([]Word(nil), words...)
		}
	}
	if s.Learned != nil {
		c.Learned = append([]int64(nil), s.Learned...)
	}
	return c
}
