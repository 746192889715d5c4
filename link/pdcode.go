// PD-code parsing, crossing classification, and the
// extended-orientation-vector analysis.
package link

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCode extracts a PD code from free-form text. Any non-digit is a
// separator; every group of four consecutive integers forms a tuple.
// If any integer is zero the code is taken to be 0-indexed (SnapPy
// console output) and every label is bumped by one.
func ParseCode(s string) (Code, error) {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return ' '
	}, s)

	fields := strings.Fields(clean)
	if len(fields) == 0 || len(fields)%4 != 0 {
		return nil, fmt.Errorf("%w: expected a multiple of four labels, got %d", ErrMalformedPD, len(fields))
	}

	raw := make([]int, len(fields))
	fromSnappy := false
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPD, f)
		}
		raw[i] = v
		if v == 0 {
			fromSnappy = true
		}
	}
	if fromSnappy {
		for i := range raw {
			raw[i]++
		}
	}

	code := make(Code, 0, len(raw)/4)
	for i := 0; i < len(raw); i += 4 {
		code = append(code, Tuple{raw[i], raw[i+1], raw[i+2], raw[i+3]})
	}

	return code, nil
}

// kinds classifies every tuple of the code.
func kinds(code Code) []CrossKind {
	out := make([]CrossKind, len(code))
	for i, x := range code {
		switch {
		case x[2] == x[3]:
			out[i] = PosCurlA
		case x[0] == x[1]:
			out[i] = PosCurlB
		case x[1] == x[2]:
			out[i] = NegCurlA
		case x[0] == x[3]:
			out[i] = NegCurlB
		default:
			out[i] = Regular
		}
	}

	return out
}

// Extended orientation vectors of the two crossing signs: entries are
// +1 at positions where the traversal enters the crossing and −1
// where it exits.
var (
	eovPositive = [4]int{1, -1, -1, 1}
	eovNegative = [4]int{1, 1, -1, -1}
)

// orientations walks every component of the code, assigning
// alternating entry/exit marks to the visited tuple positions, and
// reads each crossing's sign off the finished vector. The walk enters
// each crossing at an in-position, leaves two positions around the
// cycle, and follows the exit label to the next unvisited position
// carrying it; when a strand label completes its second appearance the
// walk carries on from the first tuple whose in-position is still
// unvisited.
func orientations(code Code) ([][4]int, []int, error) {
	n := len(code)
	eov := make([][4]int, n)
	visited := make([][4]bool, n)
	seenCount := make(map[int]int)

	i, j := 0, 0
	currentStrand := code[0][0]
	count := 1

	for !visited[i][j] {
		carry := false
		carryRow := 0

		visited[i][j] = true
		seenCount[currentStrand]++
		if count%2 == 1 {
			eov[i][j] = 1
		} else {
			eov[i][j] = -1
		}
		count++

		j = (j + 2) % 4

		currentStrand = code[i][j]
		visited[i][j] = true
		seenCount[currentStrand]++
		if count%2 == 1 {
			eov[i][j] = 1
		} else {
			eov[i][j] = -1
		}
		count++

		if seenCount[currentStrand] == 2 {
			carry = true
			for row := 0; row < n; row++ {
				if !visited[row][0] {
					currentStrand = code[row][0]
					carryRow = row

					break
				}
			}
		}

		nextI, nextJ := -1, -1
		if !carry {
			for row := 0; row < n && nextI == -1; row++ {
				for col := 0; col < 4; col++ {
					if !visited[row][col] && code[row][col] == currentStrand {
						nextI, nextJ = row, col

						break
					}
				}
			}
		} else {
			nextI, nextJ = carryRow, 0
		}

		if nextI == -1 {
			break
		}
		i, j = nextI, nextJ
	}

	signs := make([]int, n)
	for idx, v := range eov {
		switch v {
		case eovPositive:
			signs[idx] = 1
		case eovNegative:
			signs[idx] = -1
		default:
			return nil, nil, fmt.Errorf("%w: crossing %d has inconsistent orientation %v", ErrMalformedPD, idx, v)
		}
	}

	return eov, signs, nil
}
