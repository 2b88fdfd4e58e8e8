package query

// QueryType selects how query words are interpreted.
type QueryType string

const (
	// QueryTypePrefixAll interprets all query words as prefixes.
	QueryTypePrefixAll QueryType = "prefixAll"
	// QueryTypePrefixLast interprets only the last word as a prefix.
	QueryTypePrefixLast QueryType = "prefixLast"
	// QueryTypePrefixNone interprets no query word as a prefix.
	QueryTypePrefixNone QueryType = "prefixNone"
)

func (t QueryType) valid() bool {
	switch t {
	case QueryTypePrefixAll, QueryTypePrefixLast, QueryTypePrefixNone:
		return true
	}
	return false
}

// TypoTolerance controls how typos are handled during matching.
type TypoTolerance string

const (
	// TypoToleranceTrue enables typo tolerance (the engine default).
	TypoToleranceTrue TypoTolerance = "true"
	// TypoToleranceFalse disables typo tolerance.
	TypoToleranceFalse TypoTolerance = "false"
	// TypoToleranceMin keeps only hits with the lowest typo count.
	TypoToleranceMin TypoTolerance = "min"
	// TypoToleranceStrict keeps hits close to the lowest typo count.
	TypoToleranceStrict TypoTolerance = "strict"
)

func (t TypoTolerance) valid() bool {
	switch t {
	case TypoToleranceTrue, TypoToleranceFalse, TypoToleranceMin, TypoToleranceStrict:
		return true
	}
	return false
}

// RemoveWordsIfNoResults selects the strategy applied when a query
// returns nothing.
type RemoveWordsIfNoResults string

const (
	// RemoveWordsLast progressively drops words from the end of the query.
	RemoveWordsLast RemoveWordsIfNoResults = "lastWords"
	// RemoveWordsFirst progressively drops words from the start of the query.
	RemoveWordsFirst RemoveWordsIfNoResults = "firstWords"
	// RemoveWordsAllOptional retries with every word marked optional.
	RemoveWordsAllOptional RemoveWordsIfNoResults = "allOptional"
	// RemoveWordsNone disables the fallback (the engine default).
	RemoveWordsNone RemoveWordsIfNoResults = "none"
)

func (t RemoveWordsIfNoResults) valid() bool {
	switch t {
	case RemoveWordsLast, RemoveWordsFirst, RemoveWordsAllOptional, RemoveWordsNone:
		return true
	}
	return false
}

// ExactOnSingleWordQuery controls the exact ranking criterion on
// single-word queries.
type ExactOnSingleWordQuery string

const (
	// ExactOnSingleWordNone never counts single-word matches as exact.
	ExactOnSingleWordNone ExactOnSingleWordQuery = "none"
	// ExactOnSingleWordAttribute counts a match as exact when it spans a full attribute.
	ExactOnSingleWordAttribute ExactOnSingleWordQuery = "attribute"
	// ExactOnSingleWordWord counts any full-word match as exact.
	ExactOnSingleWordWord ExactOnSingleWordQuery = "word"
)

func (t ExactOnSingleWordQuery) valid() bool {
	switch t {
	case ExactOnSingleWordNone, ExactOnSingleWordAttribute, ExactOnSingleWordWord:
		return true
	}
	return false
}

// AlternativeAsExact names an alternative form treated as an exact
// match. The parameter takes a set of these.
type AlternativeAsExact string

const (
	// AlternativeIgnorePlurals treats singular/plural forms as exact matches.
	AlternativeIgnorePlurals AlternativeAsExact = "ignorePlurals"
	// AlternativeSingleWordSynonym treats single-word synonyms as exact matches.
	AlternativeSingleWordSynonym AlternativeAsExact = "singleWordSynonym"
	// AlternativeMultiWordsSynonym treats multi-word synonyms as exact matches.
	AlternativeMultiWordsSynonym AlternativeAsExact = "multiWordsSynonym"
)

func (t AlternativeAsExact) valid() bool {
	switch t {
	case AlternativeIgnorePlurals, AlternativeSingleWordSynonym, AlternativeMultiWordsSynonym:
		return true
	}
	return false
}
