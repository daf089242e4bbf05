package ecsdb

import (
	"math"
	"sort"

	"github.com/TheBitDrifter/mask"
)

// RequirementKind is the presence/polarity of one query requirement.
type RequirementKind uint8

const (
	// With requires the archetype to carry the component.
	With RequirementKind = iota
	// Without requires the archetype to NOT carry the component.
	Without
	// Optional matches whether or not the archetype carries the
	// component; never drives archetype selection.
	Optional
)

// Requirement is one element of a query request: a component type and
// the polarity under which it must (or must not, or may) appear.
type Requirement struct {
	Type ComponentTypeID
	Kind RequirementKind
}

// archetypeMatch is one archetype satisfying a set of requirements,
// together with the channel ordinal for each requirement in the
// caller's original order (-1 where the requirement has no channel:
// Without, or an absent Optional).
type archetypeMatch struct {
	arch            *archetype
	channelOrdinals []int
}

// archetypeIndex maintains the signature index (canonical signature ->
// archetype) and the inverted per-component index (component ->
// archetypes carrying it), and answers selectivity-driven requirement
// matching. Grounded on the teacher's storage.archetypes
// (idsGroupedByMask map[mask.Mask]archetypeID), generalized with the
// inverted index and cardinality-driven matching spec.md §4.4
// requires and the teacher's query.go mask evaluation lacks.
type archetypeIndex struct {
	bySignature map[mask.Mask]archetypeID
	byComponent map[ComponentTypeID]map[archetypeID]struct{}
	all         []*archetype
	nextID      archetypeID
}

func newArchetypeIndex() *archetypeIndex {
	return &archetypeIndex{
		bySignature: make(map[mask.Mask]archetypeID),
		byComponent: make(map[ComponentTypeID]map[archetypeID]struct{}),
		nextID:      1,
	}
}

// findOrCreate returns the archetype for sig, creating and announcing
// one (updating both indices) if none exists yet. Fresh channels are
// built from the global component registry, since there is no source
// archetype to clone from (a brand-new Spawn signature).
func (idx *archetypeIndex) findOrCreate(sig Signature) *archetype {
	return idx.findOrCreateFrom(sig, nil)
}

// findOrCreateFrom is findOrCreate, but when source is non-nil, every
// channel sig shares with source's signature is built by cloning
// source's own column via column.newEmptyOfSameType() rather than
// looking the type up in the global registry again — this is spec.md
// §4.7 step 3's "build its channels by cloning the column types from
// source" algorithm, used by AddComponent/RemoveComponent's
// destination-archetype construction. Any channel sig carries that
// source does not (the newly added component) still falls back to the
// registry.
func (idx *archetypeIndex) findOrCreateFrom(sig Signature, source *archetype) *archetype {
	if id, ok := idx.bySignature[sig.bit]; ok {
		return idx.all[id-1]
	}

	channels := make([]*column, sig.Len())
	for i, cid := range sig.IDs() {
		if source != nil {
			if ch := source.channelIndex(cid); ch >= 0 {
				channels[i] = source.channels[ch].newEmptyOfSameType()
				continue
			}
		}
		channels[i] = newColumn(reflectTypeOf(cid))
	}
	arch := newArchetypeFromChannels(idx.nextID, sig, channels)
	idx.all = append(idx.all, arch)
	idx.bySignature[sig.bit] = arch.id
	idx.nextID++

	for _, cid := range sig.IDs() {
		set, ok := idx.byComponent[cid]
		if !ok {
			set = make(map[archetypeID]struct{})
			idx.byComponent[cid] = set
		}
		set[arch.id] = struct{}{}
	}
	return arch
}

func (idx *archetypeIndex) archetypeByID(id archetypeID) *archetype {
	return idx.all[id-1]
}

func (idx *archetypeIndex) count(id ComponentTypeID) int {
	return len(idx.byComponent[id])
}

// cardinality implements the per-requirement selectivity estimate of
// spec.md §4.4.
func (idx *archetypeIndex) cardinality(r Requirement) int {
	switch r.Kind {
	case With:
		return idx.count(r.Type)
	case Without:
		n := idx.count(r.Type)
		if n == 0 {
			return math.MaxInt
		}
		return len(idx.all) - n
	default: // Optional
		return math.MaxInt
	}
}

// match enumerates every archetype satisfying requirements, returning
// each match's channel ordinals in the caller's original requirement
// order. An empty requirement list matches every archetype.
func (idx *archetypeIndex) match(requirements []Requirement) []archetypeMatch {
	if len(requirements) == 0 {
		out := make([]archetypeMatch, len(idx.all))
		for i, a := range idx.all {
			out[i] = archetypeMatch{arch: a}
		}
		return out
	}

	driver := 0
	driverCard := idx.cardinality(requirements[0])
	for i := 1; i < len(requirements); i++ {
		c := idx.cardinality(requirements[i])
		if c < driverCard {
			driver, driverCard = i, c
		}
	}

	var candidates []*archetype
	switch requirements[driver].Kind {
	case With:
		ids := make([]archetypeID, 0, idx.count(requirements[driver].Type))
		for id := range idx.byComponent[requirements[driver].Type] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			candidates = append(candidates, idx.archetypeByID(id))
		}
	case Without:
		excluded := idx.byComponent[requirements[driver].Type]
		for _, a := range idx.all {
			if _, skip := excluded[a.id]; !skip {
				candidates = append(candidates, a)
			}
		}
	default: // every requirement is Optional
		candidates = idx.all
	}

	var out []archetypeMatch
	for _, a := range candidates {
		ordinals := make([]int, len(requirements))
		ok := true
		for i, r := range requirements {
			has := a.signature.Contains(r.Type)
			switch r.Kind {
			case With:
				if !has {
					ok = false
				} else {
					ordinals[i] = a.channelIndex(r.Type)
				}
			case Without:
				if has {
					ok = false
				} else {
					ordinals[i] = -1
				}
			case Optional:
				if has {
					ordinals[i] = a.channelIndex(r.Type)
				} else {
					ordinals[i] = -1
				}
			}
			if !ok {
				break
			}
		}
		if ok {
			out = append(out, archetypeMatch{arch: a, channelOrdinals: ordinals})
		}
	}
	return out
}
