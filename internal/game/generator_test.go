package game

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func testGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// allRanks spans every tier with a level inside it.
var allRanks = []struct {
	level int
	rank  Rank
}{
	{1, RankNovice},
	{6, RankLearner},
	{11, RankAdept},
	{16, RankSkilled},
	{21, RankExpert},
	{26, RankMaster},
	{31, RankGrandmaster},
	{36, RankLegend},
	{41, RankMythic},
	{46, RankImmortal},
}

func TestGenerate_OptionInvariants(t *testing.T) {
	g := testGenerator(1)

	for _, tc := range allRanks {
		for i := 0; i < 200; i++ {
			p := g.Generate(tc.level, tc.rank)

			if len(p.Options) != OptionCount {
				t.Fatalf("%v level %d: got %d options, want %d", tc.rank, tc.level, len(p.Options), OptionCount)
			}

			seen := make(map[int]bool)
			correct := 0
			for _, o := range p.Options {
				if seen[o] {
					t.Fatalf("%v level %d: duplicate option %d in %v", tc.rank, tc.level, o, p.Options)
				}
				seen[o] = true
				if o == p.Answer {
					correct++
				}
			}
			if correct != 1 {
				t.Fatalf("%v level %d: answer %d appears %d times in %v", tc.rank, tc.level, p.Answer, correct, p.Options)
			}

			if p.ID == "" {
				t.Fatal("problem ID is empty")
			}
			if p.Level != tc.level || p.Rank != tc.rank {
				t.Fatalf("problem tagged (%d, %v), want (%d, %v)", p.Level, p.Rank, tc.level, tc.rank)
			}
		}
	}
}

func TestGenerate_ClampsLevel(t *testing.T) {
	g := testGenerator(2)
	p := g.Generate(0, RankNovice)
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a := testGenerator(7)
	b := testGenerator(7)

	for i := 0; i < 50; i++ {
		pa := a.Generate(10, RankLearner)
		pb := b.Generate(10, RankLearner)
		if pa.Text != pb.Text || pa.Answer != pb.Answer {
			t.Fatalf("seeded generators diverged: %q/%d vs %q/%d", pa.Text, pa.Answer, pb.Text, pb.Answer)
		}
		for j := range pa.Options {
			if pa.Options[j] != pb.Options[j] {
				t.Fatalf("seeded option order diverged: %v vs %v", pa.Options, pb.Options)
			}
		}
	}
}

func TestGenerate_NoviceNeverNegative(t *testing.T) {
	g := testGenerator(3)
	for i := 0; i < 500; i++ {
		p := g.Generate(1, RankNovice)
		if p.Answer < 0 {
			t.Fatalf("novice answer %d < 0 for %q", p.Answer, p.Text)
		}
		p = g.Generate(6, RankLearner)
		if p.Answer < 0 {
			t.Fatalf("learner answer %d < 0 for %q", p.Answer, p.Text)
		}
	}
}

func TestGenerate_DivisionIsExact(t *testing.T) {
	g := testGenerator(4)
	for i := 0; i < 500; i++ {
		p := g.Generate(12, RankAdept)
		if !strings.Contains(p.Text, "÷") {
			continue
		}
		var dividend, divisor int
		if _, err := fmt.Sscanf(p.Text, "What is %d ÷ %d?", &dividend, &divisor); err != nil {
			t.Fatalf("unparseable division text %q: %v", p.Text, err)
		}
		if dividend%divisor != 0 {
			t.Fatalf("%d ÷ %d is not exact", dividend, divisor)
		}
		if dividend/divisor != p.Answer {
			t.Fatalf("%q: answer %d, want %d", p.Text, p.Answer, dividend/divisor)
		}
	}
}

func TestGenerate_LinearEquationHolds(t *testing.T) {
	g := testGenerator(5)
	checked := 0
	for _, rank := range []Rank{RankGrandmaster, RankMythic} {
		for i := 0; i < 500; i++ {
			p := g.Generate(35, rank)
			if !strings.HasPrefix(p.Text, "Solve for x:") {
				continue
			}
			var a, b, rhs int
			var sign string
			if _, err := fmt.Sscanf(p.Text, "Solve for x: %dx %s %d = %d", &a, &sign, &b, &rhs); err != nil {
				t.Fatalf("unparseable equation %q: %v", p.Text, err)
			}
			if sign == "-" {
				b = -b
			}
			if a*p.Answer+b != rhs {
				t.Fatalf("%q: %d*%d + %d != %d", p.Text, a, p.Answer, b, rhs)
			}
			checked++
		}
	}
	if checked == 0 {
		t.Fatal("no linear equations generated across 1000 attempts")
	}
}

func TestGenerate_SequenceClosedForm(t *testing.T) {
	g := testGenerator(6)
	checked := 0
	for i := 0; i < 500; i++ {
		p := g.Generate(32, RankGrandmaster)
		if !strings.HasPrefix(p.Text, "The sequence goes") {
			continue
		}
		var t1, t2, t3, n int
		if _, err := fmt.Sscanf(p.Text, "The sequence goes %d, %d, %d, ... What is term %d?", &t1, &t2, &t3, &n); err != nil {
			t.Fatalf("unparseable sequence text %q: %v", p.Text, err)
		}
		diff := t2 - t1
		if t3-t2 != diff {
			t.Fatalf("%q: terms are not arithmetic", p.Text)
		}
		if want := t1 + (n-1)*diff; p.Answer != want {
			t.Fatalf("%q: answer %d, want %d", p.Text, p.Answer, want)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no sequences generated across 500 attempts")
	}
}

func TestEvalThree(t *testing.T) {
	tests := []struct {
		a    int
		op1  string
		b    int
		op2  string
		c    int
		want int
	}{
		{2, "+", 3, "×", 4, 14},
		{2, "×", 3, "+", 4, 10},
		{2, "×", 3, "×", 4, 24},
		{10, "-", 3, "-", 4, 3},
		{-5, "+", 2, "×", 3, 1},
		{7, "-", 2, "×", 3, 1},
	}

	for _, tt := range tests {
		got := evalThree(tt.a, tt.op1, tt.b, tt.op2, tt.c)
		if got != tt.want {
			t.Errorf("evalThree(%d %s %d %s %d) = %d, want %d", tt.a, tt.op1, tt.b, tt.op2, tt.c, got, tt.want)
		}
	}
}

func TestCorrectIndex(t *testing.T) {
	p := Problem{Answer: 9, Options: []int{3, 9, 12, 7}}
	if got := p.CorrectIndex(); got != 1 {
		t.Errorf("CorrectIndex() = %d, want 1", got)
	}
	p = Problem{Answer: 9, Options: []int{3, 4, 12, 7}}
	if got := p.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex() = %d, want -1", got)
	}
}
