package search

// Hit is one ranked document before enrichment.
type Hit struct {
	DocID uint32              // internal id, build order
	ID    string              // document id (slug)
	Score float64             // summed weighted BM25+ score
	Match map[string][]string // indexed term -> fields it matched in
}

// candidateHit accumulates a document's score while a query is evaluated
type candidateHit struct {
	score        float64
	queryTerms   map[string]struct{}            // distinct query tokens that matched
	fieldsByTerm map[string]map[string]struct{} // indexed term -> fields
}

// termMatch is an indexed term reached from a query token, with its match weight
type termMatch struct {
	term   string
	weight float64
}
