package generic

// =============================================================================
// CANDIDATE POOL - Per-group append-only reference candidates
// =============================================================================

// CandidatePool keeps, per group, the ordered list of members that later
// members may reference. Lists only grow. A member picks from the list as it
// exists at its own creation time and is appended afterwards, so every
// reference points backwards and the reference graph is acyclic.
type CandidatePool[G comparable, ID any] struct {
	groups map[G][]ID
}

func NewCandidatePool[G comparable, ID any]() *CandidatePool[G, ID] {
	return &CandidatePool[G, ID]{groups: make(map[G][]ID)}
}

// Add appends id to the group's candidates.
func (p *CandidatePool[G, ID]) Add(group G, id ID) {
	p.groups[group] = append(p.groups[group], id)
}

// Pick returns a uniformly chosen candidate of the group, or false when the
// group has none yet.
func (p *CandidatePool[G, ID]) Pick(r *Random, group G) (ID, bool) {
	candidates := p.groups[group]
	if len(candidates) == 0 {
		var zero ID
		return zero, false
	}
	return Pick(r, candidates), true
}

// Len returns how many candidates the group holds.
func (p *CandidatePool[G, ID]) Len(group G) int {
	return len(p.groups[group])
}
