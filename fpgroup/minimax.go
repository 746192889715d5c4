// Generator reordering for backtracking searches.
package fpgroup

// MinimaxGenerators reorders the relations and relabels the generators
// in place so that a depth-first search over generator representatives
// can test relations as early as possible:
//
//   - relations are consumed in an order that introduces previously
//     unseen generators as late, and in as small batches, as possible
//     (fewest unseen generators first, ties broken by shorter word);
//   - newly introduced generators are relabelled onto the next free
//     labels, so a relation at row r binds a prefix of the generator
//     list;
//   - each relation is cycled so its final term uses its
//     highest-labelled generator.
//
// After this transform, the relations placed at the front fail at the
// shallowest possible search depth.
func (p *Presentation) MinimaxGenerators() {
	if len(p.rels) == 0 || p.nGen == 0 {
		return
	}

	inc := p.Incidence()

	// relabel maps old labels to new; relabelInv is its inverse.
	relabel := make([]int, p.nGen)
	relabelInv := make([]int, p.nGen)
	for i := range relabel {
		relabel[i] = i
		relabelInv[i] = i
	}

	gensUsed := 0
	for rowsUsed := 0; rowsUsed < len(inc); rowsUsed++ {
		// Find the row in [rowsUsed, #relations) using the fewest
		// generators not yet seen.
		useRow := rowsUsed
		best := 0
		for g := gensUsed; g < p.nGen; g++ {
			if inc[rowsUsed].Test(uint(relabelInv[g])) {
				best++
			}
		}
		for r := rowsUsed + 1; r < len(inc); r++ {
			curr := 0
			for g := gensUsed; g < p.nGen; g++ {
				if inc[r].Test(uint(relabelInv[g])) {
					curr++
				}
			}
			if curr < best || (curr == best &&
				p.rels[r].WordLength() < p.rels[useRow].WordLength()) {
				best = curr
				useRow = r
			}
		}

		if useRow != rowsUsed {
			inc[useRow], inc[rowsUsed] = inc[rowsUsed], inc[useRow]
			p.rels[useRow], p.rels[rowsUsed] = p.rels[rowsUsed], p.rels[useRow]
		}

		if gensUsed == 0 && best == 0 {
			// Empty relations sort to the top; skip them.
			continue
		}

		if best > 0 {
			// This relation introduces new generators: relabel them
			// onto the next free labels.
			for g := gensUsed; g < p.nGen; g++ {
				if inc[rowsUsed].Test(uint(relabelInv[g])) {
					if g != gensUsed {
						relabelInv[g], relabelInv[gensUsed] = relabelInv[gensUsed], relabelInv[g]
						relabel[relabelInv[g]], relabel[relabelInv[gensUsed]] =
							relabel[relabelInv[gensUsed]], relabel[relabelInv[g]]
					}
					gensUsed++
				}
			}
		}

		// The highest label this relation uses is now gensUsed−1.
		// Cycle it so its final term carries that generator.
		terms := p.rels[rowsUsed].Terms()
		for terms[len(terms)-1].Gen != relabelInv[gensUsed-1] {
			p.rels[rowsUsed].CycleLeft()
		}
	}

	for ri := range p.rels {
		for ti := range p.rels[ri].terms {
			p.rels[ri].terms[ti].Gen = relabel[p.rels[ri].terms[ti].Gen]
		}
	}
}
