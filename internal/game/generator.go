package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// OptionCount is the number of answer choices per problem.
const OptionCount = 4

// Unrelated distractor values at high ranks are drawn from this fixed range.
const (
	wildMin = -250
	wildMax = 500
)

// Generator produces arithmetic problems. It carries no state beyond its
// random source, so a seeded source makes every call reproducible.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewGenerator creates a Generator seeded from the current time.
func NewGenerator() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate produces a problem for the given level and rank. The rank picks
// the problem family; the level widens the distractor spread. Levels below
// 1 are clamped to 1.
func (g *Generator) Generate(level int, rank Rank) Problem {
	if level < 1 {
		level = 1
	}

	var text string
	var answer int
	switch rank {
	case RankNovice, RankLearner:
		text, answer = g.basic()
	case RankAdept, RankSkilled:
		text, answer = g.timesTables()
	case RankExpert, RankMaster:
		text, answer = g.mixed()
	case RankGrandmaster, RankLegend:
		text, answer = g.advanced()
	default:
		text, answer = g.hardcore()
	}

	return Problem{
		ID:      uuid.New().String(),
		Text:    text,
		Answer:  answer,
		Options: g.options(answer, level, rank),
		Level:   level,
		Rank:    rank,
	}
}

// basic is addition or subtraction over 1..12. Subtraction operands are
// ordered so the result is never negative.
func (g *Generator) basic() (string, int) {
	a := g.between(1, 12)
	b := g.between(1, 12)
	if g.rng.Intn(2) == 0 {
		return fmt.Sprintf("What is %d + %d?", a, b), a + b
	}
	if b > a {
		a, b = b, a
	}
	return fmt.Sprintf("What is %d - %d?", a, b), a - b
}

// timesTables is multiplication or division over 2..15. Division picks the
// divisor and quotient first and multiplies to build the dividend, so the
// answer is always an integer.
func (g *Generator) timesTables() (string, int) {
	if g.rng.Intn(2) == 0 {
		a := g.between(2, 15)
		b := g.between(2, 15)
		return fmt.Sprintf("What is %d × %d?", a, b), a * b
	}
	divisor := g.between(2, 15)
	quotient := g.between(2, 15)
	return fmt.Sprintf("What is %d ÷ %d?", divisor*quotient, divisor), quotient
}

// mixed is a three-operand expression over -20..30 with two operators from
// + - ×, evaluated with multiplication binding tighter.
func (g *Generator) mixed() (string, int) {
	a := g.between(-20, 30)
	b := g.between(-20, 30)
	c := g.between(-20, 30)
	op1 := g.operator()
	op2 := g.operator()

	text := fmt.Sprintf("What is %s %s %s %s %s?",
		operand(a, true), op1, operand(b, false), op2, operand(c, false))
	return text, evalThree(a, op1, b, op2, c)
}

// advanced rotates between fraction-of-number, linear equations and
// arithmetic sequences.
func (g *Generator) advanced() (string, int) {
	switch g.rng.Intn(3) {
	case 0:
		return g.fractionOf(12, 96)
	case 1:
		return g.linear(2, 9, 2, 12, 1, 20)
	default:
		return g.sequence()
	}
}

// hardcore rotates between four-term expressions and wider-range fraction
// and linear problems.
func (g *Generator) hardcore() (string, int) {
	switch g.rng.Intn(3) {
	case 0:
		return g.fourTerm()
	case 1:
		return g.fractionOf(60, 360)
	default:
		return g.linear(3, 15, 5, 30, -50, 50)
	}
}

// fractionOf asks for a fraction of a whole number. The answer truncates:
// multiply first, then integer-divide.
func (g *Generator) fractionOf(nMin, nMax int) (string, int) {
	den := g.between(2, 9)
	num := g.between(1, den-1)
	n := g.between(nMin, nMax)
	return fmt.Sprintf("What is %d/%d of %d?", num, den, n), (n * num) / den
}

// linear builds ax + b = rhs from a chosen x, so the equation is always
// solvable and the answer echoes x.
func (g *Generator) linear(aMin, aMax, xMin, xMax, bMin, bMax int) (string, int) {
	a := g.between(aMin, aMax)
	x := g.between(xMin, xMax)
	b := g.between(bMin, bMax)
	for b == 0 {
		b = g.between(bMin, bMax)
	}

	sign := "+"
	off := b
	if b < 0 {
		sign = "-"
		off = -b
	}
	return fmt.Sprintf("Solve for x: %dx %s %d = %d", a, sign, off, a*x+b), x
}

// sequence asks for the nth term of an arithmetic sequence by closed form.
func (g *Generator) sequence() (string, int) {
	start := g.between(1, 10)
	diff := g.between(2, 9)
	n := g.between(5, 9)
	text := fmt.Sprintf("The sequence goes %d, %d, %d, ... What is term %d?",
		start, start+diff, start+2*diff, n)
	return text, start + (n-1)*diff
}

// fourTerm is a + b×c - d with mixed-sign outer terms; the single
// multiplication binds tighter.
func (g *Generator) fourTerm() (string, int) {
	a := g.between(-20, 40)
	b := g.between(2, 12)
	c := g.between(2, 12)
	d := g.between(-20, 40)

	text := fmt.Sprintf("What is %s + %d × %d - %s?",
		operand(a, true), b, c, operand(d, false))
	return text, a + b*c - d
}

// options builds the shuffled 4-option set: the correct answer plus three
// distinct distractors offset by at most max(2, level*2 + rankIndex). Above
// rank index 4 each distractor has a coin-flip chance of being an unrelated
// value from the wild range instead.
func (g *Generator) options(answer, level int, rank Rank) []int {
	spread := level*2 + rank.Index()
	if spread < 2 {
		spread = 2
	}

	opts := []int{answer}
	seen := map[int]bool{answer: true}

	// Random search with a retry budget; spread >= 2 always admits at
	// least three distinct neighbors, so the fallback probe terminates.
	const maxTries = 64
	for tries := 0; len(opts) < OptionCount; tries++ {
		if tries >= maxTries {
			for p := 1; len(opts) < OptionCount; p++ {
				for _, cand := range []int{answer + p, answer - p} {
					if len(opts) < OptionCount && !seen[cand] {
						seen[cand] = true
						opts = append(opts, cand)
					}
				}
			}
			break
		}

		var d int
		if rank.Index() > 4 && g.rng.Intn(2) == 0 {
			d = g.between(wildMin, wildMax)
		} else {
			d = answer + g.between(-spread, spread)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		opts = append(opts, d)
	}

	g.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// between returns a uniform value in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) operator() string {
	return []string{"+", "-", "×"}[g.rng.Intn(3)]
}

// operand formats a value for display inside an expression. Negative values
// after an operator are parenthesized.
func operand(v int, first bool) string {
	if v < 0 && !first {
		return fmt.Sprintf("(%d)", v)
	}
	return fmt.Sprintf("%d", v)
}

// evalThree evaluates a op1 b op2 c with × binding tighter than + and -.
func evalThree(a int, op1 string, b int, op2 string, c int) int {
	if op1 == "×" {
		return apply(a*b, op2, c)
	}
	if op2 == "×" {
		return apply(a, op1, b*c)
	}
	return apply(apply(a, op1, b), op2, c)
}

func apply(a int, op string, b int) int {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	default:
		return a * b
	}
}
