package index

// PostingEntry records that a term occurs in one field of one document.
// Short JSON keys keep the artifact small; there is one entry per term per field.
type PostingEntry struct {
	DocID     uint32 `json:"d"`  // Internal numeric ID, see InvertedIndex.DocumentIDs
	FieldName string `json:"f"`  // The searchable field the term was found in
	TermFreq  int    `json:"tf"` // Occurrences of the term in that field
}

// PostingList is a slice of PostingEntry, sorted by DocID then field order.
type PostingList []PostingEntry
