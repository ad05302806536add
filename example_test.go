package texmath_test

import (
	"fmt"
	"os"

	"github.com/zephyrtronium/texmath"
)

func ExampleFormat() {
	s, err := texmath.Format("1+2*8-3/27+4-13*([4-2]*5)")
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// 1 + 2*8 - 3/27 + 4 - 13*((4 - 2)*5)
}

func ExampleParseTree() {
	for _, src := range []string{"1-2-3", "2x", `x^2_3`, `\sum_{i=1}^n i`} {
		n, err := texmath.ParseTree(src)
		if err != nil {
			panic(err)
		}
		fmt.Println(n)
	}
	// Output:
	// Minus(Minus(1, 2), 3)
	// Dot(2, x)
	// RaiseToIndex(LowerToIndex(x, 3), 2)
	// Sum[LowerToIndex(Equals(i, 1)), RaiseToIndex(n)](i)
}

func ExampleRender() {
	// (a+b)c built by hand.
	n := texmath.NewNode(texmath.Dot, nil,
		texmath.NewNode(texmath.Plus, nil,
			texmath.NewNode(texmath.Letter, 'a'),
			texmath.NewNode(texmath.Letter, 'b'),
		),
		texmath.NewNode(texmath.Letter, 'c'),
	)
	s, err := texmath.Render(n, texmath.PadPlusMinusSigns(false))
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// (a+b)c
}

func ExampleNode_Dump() {
	n, err := texmath.ParseTree(`\sqrt[3]{x}+1`)
	if err != nil {
		panic(err)
	}
	n.Dump(os.Stdout)
	// Output:
	// Plus
	//   Root
	//     @Number 3
	//     Letter x
	//   Number 1
}

func ExampleParseError() {
	_, err := texmath.ParseTree("x^2^3")
	fmt.Println(err)
	// Output:
	// 4: expected LowerToIndex but found RaiseToIndex@4
}

func ExampleTokenize() {
	toks, err := texmath.Collect(texmath.Tokenize(`x\leq 2`))
	if err != nil {
		panic(err)
	}
	for _, tok := range toks {
		fmt.Println(tok)
	}
	// Output:
	// Letter:x@1
	// LessThanOrEqualTo@2
	// Number:2@7
	// EndOfStream@8
}
