package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"pkt.systems/seekd/query"
)

// queryDefinition is the YAML surface of seekq build. Pointer fields
// distinguish "unset" from a zero value; unset fields stay out of the
// canonical string entirely.
type queryDefinition struct {
	Text                      *string  `yaml:"text"`
	QueryType                 *string  `yaml:"queryType"`
	TypoTolerance             *string  `yaml:"typoTolerance"`
	MinWordSizefor1Typo       *int     `yaml:"minWordSizefor1Typo"`
	MinWordSizefor2Typos      *int     `yaml:"minWordSizefor2Typos"`
	AllowTyposOnNumericTokens *bool    `yaml:"allowTyposOnNumericTokens"`
	DisableTypoToleranceOn    []string `yaml:"disableTypoToleranceOnAttributes"`

	Page                         *int     `yaml:"page"`
	HitsPerPage                  *int     `yaml:"hitsPerPage"`
	AttributesToRetrieve         []string `yaml:"attributesToRetrieve"`
	AttributesToHighlight        []string `yaml:"attributesToHighlight"`
	AttributesToSnippet          []string `yaml:"attributesToSnippet"`
	RestrictSearchableAttributes []string `yaml:"restrictSearchableAttributes"`
	HighlightPreTag              *string  `yaml:"highlightPreTag"`
	HighlightPostTag             *string  `yaml:"highlightPostTag"`
	SnippetEllipsisText          *string  `yaml:"snippetEllipsisText"`

	MinProximity               *int     `yaml:"minProximity"`
	Distinct                   *int     `yaml:"distinct"`
	GetRankingInfo             *bool    `yaml:"getRankingInfo"`
	Analytics                  *bool    `yaml:"analytics"`
	AnalyticsTags              []string `yaml:"analyticsTags"`
	Synonyms                   *bool    `yaml:"synonyms"`
	ReplaceSynonymsInHighlight *bool    `yaml:"replaceSynonymsInHighlight"`
	OptionalWords              []string `yaml:"optionalWords"`
	AdvancedSyntax             *bool    `yaml:"advancedSyntax"`
	RemoveWordsIfNoResults     *string  `yaml:"removeWordsIfNoResults"`
	RemoveStopWords            any      `yaml:"removeStopWords"`
	ExactOnSingleWordQuery     *string  `yaml:"exactOnSingleWordQuery"`
	AlternativesAsExact        []string `yaml:"alternativesAsExact"`
	IgnorePlurals              *bool    `yaml:"ignorePlurals"`

	Filters           *string  `yaml:"filters"`
	FacetFilters      *string  `yaml:"facetFilters"`
	NumericFilters    *string  `yaml:"numericFilters"`
	TagFilters        *string  `yaml:"tagFilters"`
	Facets            []string `yaml:"facets"`
	MaxValuesPerFacet *int     `yaml:"maxValuesPerFacet"`

	AroundLatLng        *latLngDef   `yaml:"aroundLatLng"`
	AroundLatLngViaIP   *bool        `yaml:"aroundLatLngViaIP"`
	AroundRadius        any          `yaml:"aroundRadius"`
	AroundPrecision     *int         `yaml:"aroundPrecision"`
	MinimumAroundRadius *int         `yaml:"minimumAroundRadius"`
	InsideBoundingBox   [][4]float64 `yaml:"insideBoundingBox"`
	InsidePolygon       []latLngDef  `yaml:"insidePolygon"`

	// Params is a raw passthrough for parameters seekq has no typed
	// field for. Values are stored verbatim.
	Params map[string]string `yaml:"params"`
}

type latLngDef struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

func loadQueryDefinition(r io.Reader) (*queryDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read query definition: %w", err)
	}
	var def queryDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode query definition: %w", err)
	}
	return &def, nil
}

// toQuery translates the definition through the typed accessors so
// the output uses the same canonical forms the SDK emits.
func (d *queryDefinition) toQuery() (*query.Query, error) {
	q := query.New()

	if d.Text != nil {
		q.SetText(*d.Text)
	}
	if d.QueryType != nil {
		t := query.QueryType(*d.QueryType)
		switch t {
		case query.QueryTypePrefixAll, query.QueryTypePrefixLast, query.QueryTypePrefixNone:
			q.SetQueryType(t)
		default:
			return nil, fmt.Errorf("invalid queryType %q", *d.QueryType)
		}
	}
	if d.TypoTolerance != nil {
		t := query.TypoTolerance(*d.TypoTolerance)
		switch t {
		case query.TypoToleranceTrue, query.TypoToleranceFalse, query.TypoToleranceMin, query.TypoToleranceStrict:
			q.SetTypoTolerance(t)
		default:
			return nil, fmt.Errorf("invalid typoTolerance %q", *d.TypoTolerance)
		}
	}
	if d.MinWordSizefor1Typo != nil {
		q.SetMinWordSizefor1Typo(*d.MinWordSizefor1Typo)
	}
	if d.MinWordSizefor2Typos != nil {
		q.SetMinWordSizefor2Typos(*d.MinWordSizefor2Typos)
	}
	if d.AllowTyposOnNumericTokens != nil {
		q.SetAllowTyposOnNumericTokens(*d.AllowTyposOnNumericTokens)
	}
	if d.DisableTypoToleranceOn != nil {
		q.SetDisableTypoToleranceOnAttributes(d.DisableTypoToleranceOn...)
	}

	if d.Page != nil {
		q.SetPage(*d.Page)
	}
	if d.HitsPerPage != nil {
		q.SetHitsPerPage(*d.HitsPerPage)
	}
	if d.AttributesToRetrieve != nil {
		q.SetAttributesToRetrieve(d.AttributesToRetrieve...)
	}
	if d.AttributesToHighlight != nil {
		q.SetAttributesToHighlight(d.AttributesToHighlight...)
	}
	if d.AttributesToSnippet != nil {
		q.SetAttributesToSnippet(d.AttributesToSnippet...)
	}
	if d.RestrictSearchableAttributes != nil {
		q.SetRestrictSearchableAttributes(d.RestrictSearchableAttributes...)
	}
	if d.HighlightPreTag != nil {
		q.SetHighlightPreTag(*d.HighlightPreTag)
	}
	if d.HighlightPostTag != nil {
		q.SetHighlightPostTag(*d.HighlightPostTag)
	}
	if d.SnippetEllipsisText != nil {
		q.SetSnippetEllipsisText(*d.SnippetEllipsisText)
	}

	if d.MinProximity != nil {
		q.SetMinProximity(*d.MinProximity)
	}
	if d.Distinct != nil {
		q.SetDistinct(*d.Distinct)
	}
	if d.GetRankingInfo != nil {
		q.SetGetRankingInfo(*d.GetRankingInfo)
	}
	if d.Analytics != nil {
		q.SetAnalytics(*d.Analytics)
	}
	if d.AnalyticsTags != nil {
		q.SetAnalyticsTags(d.AnalyticsTags...)
	}
	if d.Synonyms != nil {
		q.SetSynonyms(*d.Synonyms)
	}
	if d.ReplaceSynonymsInHighlight != nil {
		q.SetReplaceSynonymsInHighlight(*d.ReplaceSynonymsInHighlight)
	}
	if d.OptionalWords != nil {
		q.SetOptionalWords(d.OptionalWords...)
	}
	if d.AdvancedSyntax != nil {
		q.SetAdvancedSyntax(*d.AdvancedSyntax)
	}
	if d.RemoveWordsIfNoResults != nil {
		t := query.RemoveWordsIfNoResults(*d.RemoveWordsIfNoResults)
		switch t {
		case query.RemoveWordsLast, query.RemoveWordsFirst, query.RemoveWordsAllOptional, query.RemoveWordsNone:
			q.SetRemoveWordsIfNoResults(t)
		default:
			return nil, fmt.Errorf("invalid removeWordsIfNoResults %q", *d.RemoveWordsIfNoResults)
		}
	}
	if d.RemoveStopWords != nil {
		if err := q.SetRemoveStopWords(d.RemoveStopWords); err != nil {
			return nil, err
		}
	}
	if d.ExactOnSingleWordQuery != nil {
		t := query.ExactOnSingleWordQuery(*d.ExactOnSingleWordQuery)
		switch t {
		case query.ExactOnSingleWordNone, query.ExactOnSingleWordAttribute, query.ExactOnSingleWordWord:
			q.SetExactOnSingleWordQuery(t)
		default:
			return nil, fmt.Errorf("invalid exactOnSingleWordQuery %q", *d.ExactOnSingleWordQuery)
		}
	}
	if d.AlternativesAsExact != nil {
		types := make([]query.AlternativeAsExact, 0, len(d.AlternativesAsExact))
		for _, s := range d.AlternativesAsExact {
			t := query.AlternativeAsExact(s)
			switch t {
			case query.AlternativeIgnorePlurals, query.AlternativeSingleWordSynonym, query.AlternativeMultiWordsSynonym:
				types = append(types, t)
			default:
				return nil, fmt.Errorf("invalid alternativesAsExact entry %q", s)
			}
		}
		q.SetAlternativesAsExact(types...)
	}
	if d.IgnorePlurals != nil {
		q.SetIgnorePlurals(*d.IgnorePlurals)
	}

	if d.Filters != nil {
		q.SetFilters(*d.Filters)
	}
	if err := setJSONFilter(d.FacetFilters, "facetFilters", q.SetFacetFilters); err != nil {
		return nil, err
	}
	if err := setJSONFilter(d.NumericFilters, "numericFilters", q.SetNumericFilters); err != nil {
		return nil, err
	}
	if err := setJSONFilter(d.TagFilters, "tagFilters", q.SetTagFilters); err != nil {
		return nil, err
	}
	if d.Facets != nil {
		q.SetFacets(d.Facets...)
	}
	if d.MaxValuesPerFacet != nil {
		q.SetMaxValuesPerFacet(*d.MaxValuesPerFacet)
	}

	if d.AroundLatLng != nil {
		q.SetAroundLatLng(query.LatLng{Lat: d.AroundLatLng.Lat, Lng: d.AroundLatLng.Lng})
	}
	if d.AroundLatLngViaIP != nil {
		q.SetAroundLatLngViaIP(*d.AroundLatLngViaIP)
	}
	if d.AroundRadius != nil {
		switch v := d.AroundRadius.(type) {
		case int:
			q.SetAroundRadius(v)
		case string:
			if v != "all" {
				return nil, fmt.Errorf("invalid aroundRadius %q (want an integer or \"all\")", v)
			}
			q.SetAroundRadius(query.RadiusAll)
		default:
			return nil, fmt.Errorf("invalid aroundRadius type %T", d.AroundRadius)
		}
	}
	if d.AroundPrecision != nil {
		q.SetAroundPrecision(*d.AroundPrecision)
	}
	if d.MinimumAroundRadius != nil {
		q.SetMinimumAroundRadius(*d.MinimumAroundRadius)
	}
	if len(d.InsideBoundingBox) > 0 {
		boxes := make([]query.GeoRect, 0, len(d.InsideBoundingBox))
		for _, b := range d.InsideBoundingBox {
			boxes = append(boxes, query.GeoRect{
				P1: query.LatLng{Lat: b[0], Lng: b[1]},
				P2: query.LatLng{Lat: b[2], Lng: b[3]},
			})
		}
		q.SetInsideBoundingBox(boxes...)
	}
	if len(d.InsidePolygon) > 0 {
		points := make([]query.LatLng, 0, len(d.InsidePolygon))
		for _, p := range d.InsidePolygon {
			points = append(points, query.LatLng{Lat: p.Lat, Lng: p.Lng})
		}
		polygon, err := query.NewPolygon(points...)
		if err != nil {
			return nil, err
		}
		q.SetInsidePolygon(polygon)
	}

	for name, value := range d.Params {
		q.Set(name, value)
	}

	return q, nil
}

func setJSONFilter(raw *string, name string, set func(json.RawMessage) *query.Query) error {
	if raw == nil {
		return nil
	}
	if !json.Valid([]byte(*raw)) {
		return fmt.Errorf("invalid %s: not valid JSON", name)
	}
	set(json.RawMessage(*raw))
	return nil
}
