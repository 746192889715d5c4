package link_test

import (
	"fmt"

	"github.com/katalvlaran/kirby/link"
)

// ExampleParseCode parses a one-crossing unknot and inspects it.
func ExampleParseCode() {
	code, _ := link.ParseCode("(1,2,2,1)")
	l, _ := link.FromCode(code)
	fmt.Println(l.CountComponents(), l.Writhe(0), l.Kinds()[0] == link.NegCurlA)
	// Output:
	// 1 -1 true
}

// ExampleDiagram_SelfFrame frames the unknot to +2 by inserting curls.
func ExampleDiagram_SelfFrame() {
	code, _ := link.ParseCode("(1,2,2,1)")
	l, _ := link.FromCode(code)
	fr, _ := link.ParseFramings("2")
	d, _ := link.NewDiagram(l, fr)
	framed, _ := d.SelfFrame(3)
	fmt.Println(framed.Link().Writhe(0), len(framed.Link().Code()))
	// Output:
	// 2 4
}
