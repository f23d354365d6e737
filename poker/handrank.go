package poker

// HandRank is the result of a single pattern check. Value is caller specific:
// run length for flushes and straights, group size for n-of-a-kind, and the
// number of tuples for pair detection.
type HandRank struct {
	Matches bool
	Rank    int
	Value   int
}

// noMatch is returned by every predicate that does not match.
var noMatch = HandRank{}

func matched(rank, value int) HandRank {
	return HandRank{Matches: true, Rank: rank, Value: value}
}
