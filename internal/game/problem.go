package game

// Problem is a single generated question. It is created fresh for every
// question and discarded once answered.
type Problem struct {
	// ID uniquely identifies this problem instance.
	ID string

	// Text is the question prompt, e.g. "What is 7 + 5?".
	Text string

	// Answer is the correct integer answer.
	Answer int

	// Options holds exactly 4 answer choices in display order. The correct
	// answer appears exactly once; the rest are distractors.
	Options []int

	// Level is the level the problem was generated for.
	Level int

	// Rank is the tier the problem was generated for.
	Rank Rank
}

// CorrectIndex returns the position of the correct answer within Options,
// or -1 if it is missing.
func (p Problem) CorrectIndex() int {
	for i, o := range p.Options {
		if o == p.Answer {
			return i
		}
	}
	return -1
}
