package query

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Wire keys for the typed parameter catalog. Kept alphabetical.
const (
	keyAdvancedSyntax             = "advancedSyntax"
	keyAllowTyposOnNumericTokens  = "allowTyposOnNumericTokens"
	keyAlternativesAsExact        = "alternativesAsExact"
	keyAnalytics                  = "analytics"
	keyAnalyticsTags              = "analyticsTags"
	keyAroundLatLng               = "aroundLatLng"
	keyAroundLatLngViaIP          = "aroundLatLngViaIP"
	keyAroundPrecision            = "aroundPrecision"
	keyAroundRadius               = "aroundRadius"
	keyAttributesToHighlight      = "attributesToHighlight"
	keyAttributesToRetrieve       = "attributesToRetrieve"
	keyAttributesToRetrieveLegacy = "attributes"
	keyAttributesToSnippet        = "attributesToSnippet"
	keyDisableTypoToleranceAttrs  = "disableTypoToleranceOnAttributes"
	keyDistinct                   = "distinct"
	keyExactOnSingleWordQuery     = "exactOnSingleWordQuery"
	keyFacetFilters               = "facetFilters"
	keyFacets                     = "facets"
	keyFilters                    = "filters"
	keyGetRankingInfo             = "getRankingInfo"
	keyHighlightPostTag           = "highlightPostTag"
	keyHighlightPreTag            = "highlightPreTag"
	keyHitsPerPage                = "hitsPerPage"
	keyIgnorePlurals              = "ignorePlurals"
	keyInsideBoundingBox          = "insideBoundingBox"
	keyInsidePolygon              = "insidePolygon"
	keyMaxValuesPerFacet          = "maxValuesPerFacet"
	keyMinProximity               = "minProximity"
	keyMinWordSizefor1Typo        = "minWordSizefor1Typo"
	keyMinWordSizefor2Typos       = "minWordSizefor2Typos"
	keyMinimumAroundRadius        = "minimumAroundRadius"
	keyNumericFilters             = "numericFilters"
	keyOptionalWords              = "optionalWords"
	keyPage                       = "page"
	keyQuery                      = "query"
	keyQueryType                  = "queryType"
	keyRemoveStopWords            = "removeStopWords"
	keyRemoveWordsIfNoResults     = "removeWordsIfNoResults"
	keyReplaceSynonymsHighlight   = "replaceSynonymsInHighlight"
	keyRestrictSearchableAttrs    = "restrictSearchableAttributes"
	keySnippetEllipsisText        = "snippetEllipsisText"
	keySynonyms                   = "synonyms"
	keyTagFilters                 = "tagFilters"
	keyTypoTolerance              = "typoTolerance"
)

// ----------------------------------------------------------------------
// Encode/decode helpers shared by the typed accessors.
// ----------------------------------------------------------------------

func (q *Query) setBool(key string, v bool) *Query {
	return q.Set(key, strconv.FormatBool(v))
}

// boolVal decodes a stored boolean. Historical encodings used integer
// strings, so any non-zero integer counts as true. An unparseable
// stored value decodes to false; only an absent key yields ok=false.
func (q *Query) boolVal(key string) (bool, bool) {
	raw, ok := q.Get(key)
	if !ok {
		return false, false
	}
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "true") {
		return true, true
	}
	n, err := strconv.Atoi(trimmed)
	return err == nil && n != 0, true
}

func (q *Query) setInt(key string, v int) *Query {
	return q.Set(key, strconv.Itoa(v))
}

// intVal decodes a stored integer. Malformed values degrade to absent
// rather than surfacing an error.
func (q *Query) intVal(key string) (int, bool) {
	raw, ok := q.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// setList encodes items as a JSON array literal, the canonical wire
// form for list parameters.
func (q *Query) setList(key string, items []string) *Query {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		// strings always marshal
		return q
	}
	return q.Set(key, string(data))
}

// listVal decodes a stored list. JSON array notation is tried first;
// older writers emitted bare comma-separated values, so that form is
// accepted as a decode-only fallback.
func (q *Query) listVal(key string) ([]string, bool) {
	raw, ok := q.Get(key)
	if !ok {
		return nil, false
	}
	return parseList(raw), true
}

func parseList(raw string) []string {
	var generic []any
	if err := json.Unmarshal([]byte(raw), &generic); err == nil {
		out := make([]string, len(generic))
		for i, v := range generic {
			if s, ok := v.(string); ok {
				out[i] = s
			} else {
				out[i] = fmt.Sprint(v)
			}
		}
		return out
	}
	return strings.Split(raw, ",")
}

// jsonArrayVal returns the stored raw JSON when it is a well-formed
// JSON array, absent otherwise.
func (q *Query) jsonArrayVal(key string) (json.RawMessage, bool) {
	raw, ok := q.Get(key)
	if !ok {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return nil, false
	}
	return json.RawMessage(raw), true
}

func (q *Query) stringVal(key string) (string, bool) {
	return q.Get(key)
}

// ----------------------------------------------------------------------
// Typed accessors. Kept alphabetical, like the wire keys above.
// ----------------------------------------------------------------------

// SetAdvancedSyntax enables the advanced query syntax (phrase queries
// with double quotes, prohibit operator with a leading minus).
// Disabled by default.
func (q *Query) SetAdvancedSyntax(enabled bool) *Query {
	return q.setBool(keyAdvancedSyntax, enabled)
}

// AdvancedSyntax reports the advanced-syntax flag.
func (q *Query) AdvancedSyntax() (bool, bool) {
	return q.boolVal(keyAdvancedSyntax)
}

// SetAllowTyposOnNumericTokens toggles typo tolerance on numeric
// tokens. Enabled by default.
func (q *Query) SetAllowTyposOnNumericTokens(enabled bool) *Query {
	return q.setBool(keyAllowTyposOnNumericTokens, enabled)
}

// AllowTyposOnNumericTokens reports the numeric-token typo flag.
func (q *Query) AllowTyposOnNumericTokens() (bool, bool) {
	return q.boolVal(keyAllowTyposOnNumericTokens)
}

// SetAlternativesAsExact selects which alternative forms count as
// exact matches. The set encodes as comma-joined tokens.
func (q *Query) SetAlternativesAsExact(types ...AlternativeAsExact) *Query {
	tokens := make([]string, len(types))
	for i, t := range types {
		tokens[i] = string(t)
	}
	return q.Set(keyAlternativesAsExact, strings.Join(tokens, ","))
}

// AlternativesAsExact returns the configured set. Unrecognized tokens
// in the stored value are skipped.
func (q *Query) AlternativesAsExact() ([]AlternativeAsExact, bool) {
	raw, ok := q.Get(keyAlternativesAsExact)
	if !ok {
		return nil, false
	}
	out := make([]AlternativeAsExact, 0, 3)
	for _, token := range strings.Split(raw, ",") {
		if t := AlternativeAsExact(token); t.valid() {
			out = append(out, t)
		}
	}
	return out, true
}

// SetAnalytics controls whether this query is recorded by the
// analytics feature. Enabled by default.
func (q *Query) SetAnalytics(enabled bool) *Query {
	return q.setBool(keyAnalytics, enabled)
}

// Analytics reports the analytics flag.
func (q *Query) Analytics() (bool, bool) {
	return q.boolVal(keyAnalytics)
}

// SetAnalyticsTags sets the analytics tags identifying the query.
func (q *Query) SetAnalyticsTags(tags ...string) *Query {
	return q.setList(keyAnalyticsTags, tags)
}

// AnalyticsTags returns the analytics tags.
func (q *Query) AnalyticsTags() ([]string, bool) {
	return q.listVal(keyAnalyticsTags)
}

// SetAroundLatLng searches for entries around a given point.
func (q *Query) SetAroundLatLng(p LatLng) *Query {
	return q.Set(keyAroundLatLng, formatCoord(p.Lat)+","+formatCoord(p.Lng))
}

// AroundLatLng returns the configured center point.
func (q *Query) AroundLatLng() (LatLng, bool) {
	raw, ok := q.Get(keyAroundLatLng)
	if !ok {
		return LatLng{}, false
	}
	points, ok := splitCoords(raw)
	if !ok || len(points) != 1 {
		return LatLng{}, false
	}
	return points[0], true
}

// SetAroundLatLngViaIP searches for entries around the caller's
// location as derived from their IP address.
func (q *Query) SetAroundLatLngViaIP(enabled bool) *Query {
	return q.setBool(keyAroundLatLngViaIP, enabled)
}

// AroundLatLngViaIP reports the IP-geolocation flag.
func (q *Query) AroundLatLngViaIP() (bool, bool) {
	return q.boolVal(keyAroundLatLngViaIP)
}

// SetAroundPrecision sets the precision of geo ranking, in meters.
func (q *Query) SetAroundPrecision(precision int) *Query {
	return q.setInt(keyAroundPrecision, precision)
}

// AroundPrecision returns the geo ranking precision.
func (q *Query) AroundPrecision() (int, bool) {
	return q.intVal(keyAroundPrecision)
}

// RadiusAll disables the distance cap for around queries. It encodes
// as the sentinel token "all" rather than a number.
const RadiusAll = math.MaxInt32

// SetAroundRadius caps the search radius for around queries, in
// meters. Pass RadiusAll to search without a distance cap.
func (q *Query) SetAroundRadius(radius int) *Query {
	if radius == RadiusAll {
		return q.Set(keyAroundRadius, "all")
	}
	return q.setInt(keyAroundRadius, radius)
}

// AroundRadius returns the configured radius, RadiusAll when the
// stored value is the "all" sentinel.
func (q *Query) AroundRadius() (int, bool) {
	if raw, ok := q.Get(keyAroundRadius); ok && raw == "all" {
		return RadiusAll, true
	}
	return q.intVal(keyAroundRadius)
}

// SetAttributesToHighlight selects the attributes to highlight. By
// default all indexed attributes are highlighted.
func (q *Query) SetAttributesToHighlight(attributes ...string) *Query {
	return q.setList(keyAttributesToHighlight, attributes)
}

// AttributesToHighlight returns the highlight attribute list.
func (q *Query) AttributesToHighlight() ([]string, bool) {
	return q.listVal(keyAttributesToHighlight)
}

// SetAttributesToRetrieve selects the attributes returned in hits. By
// default all attributes are retrieved.
func (q *Query) SetAttributesToRetrieve(attributes ...string) *Query {
	return q.setList(keyAttributesToRetrieve, attributes)
}

// AttributesToRetrieve returns the retrieve attribute list. Values
// written by old SDK versions under the deprecated "attributes" wire
// key are honored when the current key is unset.
func (q *Query) AttributesToRetrieve() ([]string, bool) {
	if out, ok := q.listVal(keyAttributesToRetrieve); ok {
		return out, true
	}
	return q.listVal(keyAttributesToRetrieveLegacy)
}

// SetAttributesToSnippet selects the attributes to snippet, each in
// the form "attributeName:nbWords". No snippet is computed by
// default.
func (q *Query) SetAttributesToSnippet(attributes ...string) *Query {
	return q.setList(keyAttributesToSnippet, attributes)
}

// AttributesToSnippet returns the snippet attribute list.
func (q *Query) AttributesToSnippet() ([]string, bool) {
	return q.listVal(keyAttributesToSnippet)
}

// SetDisableTypoToleranceOnAttributes lists attributes on which typo
// tolerance is disabled.
func (q *Query) SetDisableTypoToleranceOnAttributes(attributes ...string) *Query {
	return q.setList(keyDisableTypoToleranceAttrs, attributes)
}

// DisableTypoToleranceOnAttributes returns that attribute list.
func (q *Query) DisableTypoToleranceOnAttributes() ([]string, bool) {
	return q.listVal(keyDisableTypoToleranceAttrs)
}

// SetDistinct keeps only n hits per distinct value of the attribute
// configured for deduplication.
func (q *Query) SetDistinct(n int) *Query {
	return q.setInt(keyDistinct, n)
}

// Distinct returns the distinct hit count.
func (q *Query) Distinct() (int, bool) {
	return q.intVal(keyDistinct)
}

// SetExactOnSingleWordQuery selects the exact criterion used on
// single-word queries.
func (q *Query) SetExactOnSingleWordQuery(t ExactOnSingleWordQuery) *Query {
	return q.Set(keyExactOnSingleWordQuery, string(t))
}

// ExactOnSingleWordQuery returns the configured criterion.
func (q *Query) ExactOnSingleWordQuery() (ExactOnSingleWordQuery, bool) {
	raw, ok := q.Get(keyExactOnSingleWordQuery)
	if !ok || !ExactOnSingleWordQuery(raw).valid() {
		return "", false
	}
	return ExactOnSingleWordQuery(raw), true
}

// SetFacetFilters filters hits by facet value. The argument must be a
// JSON array, e.g. ["category:Book","author:John Doe"].
func (q *Query) SetFacetFilters(filters json.RawMessage) *Query {
	return q.Set(keyFacetFilters, string(filters))
}

// FacetFilters returns the facet filters when the stored value is a
// well-formed JSON array.
func (q *Query) FacetFilters() (json.RawMessage, bool) {
	return q.jsonArrayVal(keyFacetFilters)
}

// SetFacets lists the attributes used for faceting. "*" facets on
// every attribute declared facetable in the index settings.
func (q *Query) SetFacets(facets ...string) *Query {
	return q.setList(keyFacets, facets)
}

// Facets returns the facet attribute list.
func (q *Query) Facets() ([]string, bool) {
	return q.listVal(keyFacets)
}

// SetFilters sets the filter expression (SQL-like syntax combining
// numeric, facet and tag filters).
func (q *Query) SetFilters(filters string) *Query {
	return q.Set(keyFilters, filters)
}

// Filters returns the filter expression.
func (q *Query) Filters() (string, bool) {
	return q.stringVal(keyFilters)
}

// SetGetRankingInfo requests ranking diagnostics on each hit.
func (q *Query) SetGetRankingInfo(enabled bool) *Query {
	return q.setBool(keyGetRankingInfo, enabled)
}

// GetRankingInfo reports the ranking-info flag.
func (q *Query) GetRankingInfo() (bool, bool) {
	return q.boolVal(keyGetRankingInfo)
}

// SetHighlightPostTag sets the tag inserted after highlighted parts.
func (q *Query) SetHighlightPostTag(tag string) *Query {
	return q.Set(keyHighlightPostTag, tag)
}

// HighlightPostTag returns the closing highlight tag.
func (q *Query) HighlightPostTag() (string, bool) {
	return q.stringVal(keyHighlightPostTag)
}

// SetHighlightPreTag sets the tag inserted before highlighted parts.
func (q *Query) SetHighlightPreTag(tag string) *Query {
	return q.Set(keyHighlightPreTag, tag)
}

// HighlightPreTag returns the opening highlight tag.
func (q *Query) HighlightPreTag() (string, bool) {
	return q.stringVal(keyHighlightPreTag)
}

// SetHitsPerPage sets the number of hits per page. Defaults to 10.
func (q *Query) SetHitsPerPage(n int) *Query {
	return q.setInt(keyHitsPerPage, n)
}

// HitsPerPage returns the page size.
func (q *Query) HitsPerPage() (int, bool) {
	return q.intVal(keyHitsPerPage)
}

// SetIgnorePlurals stops plurals from counting as typos (car/cars
// match exactly). Disabled by default.
func (q *Query) SetIgnorePlurals(enabled bool) *Query {
	return q.setBool(keyIgnorePlurals, enabled)
}

// IgnorePlurals reports the plural handling flag.
func (q *Query) IgnorePlurals() (bool, bool) {
	return q.boolVal(keyIgnorePlurals)
}

// SetInsideBoundingBox restricts the search to entries inside the
// given rectangles (multiple rectangles combine as OR). Passing no
// rectangles removes the restriction.
func (q *Query) SetInsideBoundingBox(boxes ...GeoRect) *Query {
	if len(boxes) == 0 {
		return q.Unset(keyInsideBoundingBox)
	}
	points := make([]LatLng, 0, len(boxes)*2)
	for _, box := range boxes {
		points = append(points, box.P1, box.P2)
	}
	return q.Set(keyInsideBoundingBox, joinCoords(points))
}

// InsideBoundingBox returns the configured rectangles. A stored value
// whose coordinate count is not a multiple of four decodes to absent.
func (q *Query) InsideBoundingBox() ([]GeoRect, bool) {
	raw, ok := q.Get(keyInsideBoundingBox)
	if !ok {
		return nil, false
	}
	points, ok := splitCoords(raw)
	if !ok || len(points) == 0 || len(points)%2 != 0 {
		return nil, false
	}
	boxes := make([]GeoRect, len(points)/2)
	for i := range boxes {
		boxes[i] = GeoRect{P1: points[2*i], P2: points[2*i+1]}
	}
	return boxes, true
}

// SetInsidePolygon restricts the search to entries inside a polygon.
// Build the polygon with NewPolygon, which enforces the three-vertex
// minimum. Passing an empty polygon removes the restriction.
func (q *Query) SetInsidePolygon(p Polygon) *Query {
	if len(p) == 0 {
		return q.Unset(keyInsidePolygon)
	}
	return q.Set(keyInsidePolygon, joinCoords(p))
}

// InsidePolygon returns the configured polygon. Stored values with an
// odd coordinate count or fewer than three vertices decode to absent.
func (q *Query) InsidePolygon() (Polygon, bool) {
	raw, ok := q.Get(keyInsidePolygon)
	if !ok {
		return nil, false
	}
	points, ok := splitCoords(raw)
	if !ok || len(points) < 3 {
		return nil, false
	}
	return Polygon(points), true
}

// SetMaxValuesPerFacet limits the number of values returned per facet.
func (q *Query) SetMaxValuesPerFacet(n int) *Query {
	return q.setInt(keyMaxValuesPerFacet, n)
}

// MaxValuesPerFacet returns the per-facet value limit.
func (q *Query) MaxValuesPerFacet() (int, bool) {
	return q.intVal(keyMaxValuesPerFacet)
}

// SetMinProximity adjusts the minimum proximity between matched words.
func (q *Query) SetMinProximity(n int) *Query {
	return q.setInt(keyMinProximity, n)
}

// MinProximity returns the proximity setting.
func (q *Query) MinProximity() (int, bool) {
	return q.intVal(keyMinProximity)
}

// SetMinWordSizefor1Typo sets the minimum word length to accept one
// typo. Defaults to 4.
func (q *Query) SetMinWordSizefor1Typo(n int) *Query {
	return q.setInt(keyMinWordSizefor1Typo, n)
}

// MinWordSizefor1Typo returns the one-typo threshold.
func (q *Query) MinWordSizefor1Typo() (int, bool) {
	return q.intVal(keyMinWordSizefor1Typo)
}

// SetMinWordSizefor2Typos sets the minimum word length to accept two
// typos. Defaults to 8.
func (q *Query) SetMinWordSizefor2Typos(n int) *Query {
	return q.setInt(keyMinWordSizefor2Typos, n)
}

// MinWordSizefor2Typos returns the two-typo threshold.
func (q *Query) MinWordSizefor2Typos() (int, bool) {
	return q.intVal(keyMinWordSizefor2Typos)
}

// SetMinimumAroundRadius sets the minimum radius used by around
// queries when no explicit radius is given.
func (q *Query) SetMinimumAroundRadius(radius int) *Query {
	return q.setInt(keyMinimumAroundRadius, radius)
}

// MinimumAroundRadius returns the minimum around radius.
func (q *Query) MinimumAroundRadius() (int, bool) {
	return q.intVal(keyMinimumAroundRadius)
}

// SetNumericFilters filters hits on numeric attributes. The argument
// must be a JSON array of filter expressions.
func (q *Query) SetNumericFilters(filters json.RawMessage) *Query {
	return q.Set(keyNumericFilters, string(filters))
}

// NumericFilters returns the numeric filters when the stored value is
// a well-formed JSON array.
func (q *Query) NumericFilters() (json.RawMessage, bool) {
	return q.jsonArrayVal(keyNumericFilters)
}

// SetOptionalWords lists words that may be dropped from the query
// without failing the match.
func (q *Query) SetOptionalWords(words ...string) *Query {
	return q.setList(keyOptionalWords, words)
}

// OptionalWords returns the optional word list.
func (q *Query) OptionalWords() ([]string, bool) {
	return q.listVal(keyOptionalWords)
}

// SetPage selects the page to retrieve (zero-based). Defaults to 0.
func (q *Query) SetPage(page int) *Query {
	return q.setInt(keyPage, page)
}

// Page returns the requested page.
func (q *Query) Page() (int, bool) {
	return q.intVal(keyPage)
}

// SetText sets the full-text query ("query" wire key).
func (q *Query) SetText(text string) *Query {
	return q.Set(keyQuery, text)
}

// Text returns the full-text query.
func (q *Query) Text() (string, bool) {
	return q.stringVal(keyQuery)
}

// SetQueryType selects how query words are interpreted.
func (q *Query) SetQueryType(t QueryType) *Query {
	return q.Set(keyQueryType, string(t))
}

// QueryType returns the configured interpretation; unknown stored
// tokens decode to absent.
func (q *Query) QueryType() (QueryType, bool) {
	raw, ok := q.Get(keyQueryType)
	if !ok || !QueryType(raw).valid() {
		return "", false
	}
	return QueryType(raw), true
}

// SetRemoveStopWords enables stop-word removal. The value must be a
// bool (all supported languages) or a string of comma-separated ISO
// language codes; any other type is rejected. This parameter is
// dynamically typed on the wire, hence the any-typed signature.
func (q *Query) SetRemoveStopWords(v any) error {
	switch value := v.(type) {
	case bool:
		q.setBool(keyRemoveStopWords, value)
		return nil
	case string:
		q.Set(keyRemoveStopWords, value)
		return nil
	default:
		return fmt.Errorf("seekd: removeStopWords must be a bool or a string, got %T", v)
	}
}

// RemoveStopWords returns either a bool or a []string of language
// codes, mirroring the two accepted encodings.
func (q *Query) RemoveStopWords() (any, bool) {
	raw, ok := q.Get(keyRemoveStopWords)
	if !ok {
		return nil, false
	}
	tokens := strings.Split(raw, ",")
	if len(tokens) == 1 && (tokens[0] == "true" || tokens[0] == "false") {
		return tokens[0] == "true", true
	}
	return tokens, true
}

// SetRemoveWordsIfNoResults selects the strategy applied when the
// query returns no results.
func (q *Query) SetRemoveWordsIfNoResults(t RemoveWordsIfNoResults) *Query {
	return q.Set(keyRemoveWordsIfNoResults, string(t))
}

// RemoveWordsIfNoResults returns the configured strategy.
func (q *Query) RemoveWordsIfNoResults() (RemoveWordsIfNoResults, bool) {
	raw, ok := q.Get(keyRemoveWordsIfNoResults)
	if !ok || !RemoveWordsIfNoResults(raw).valid() {
		return "", false
	}
	return RemoveWordsIfNoResults(raw), true
}

// SetReplaceSynonymsInHighlight controls whether matched synonyms are
// replaced by the query word in highlights. Enabled by default.
func (q *Query) SetReplaceSynonymsInHighlight(enabled bool) *Query {
	return q.setBool(keyReplaceSynonymsHighlight, enabled)
}

// ReplaceSynonymsInHighlight reports the synonym highlight flag.
func (q *Query) ReplaceSynonymsInHighlight() (bool, bool) {
	return q.boolVal(keyReplaceSynonymsHighlight)
}

// SetRestrictSearchableAttributes restricts textual search to a
// subset of the searchable attributes.
func (q *Query) SetRestrictSearchableAttributes(attributes ...string) *Query {
	return q.setList(keyRestrictSearchableAttrs, attributes)
}

// RestrictSearchableAttributes returns the restricted attribute list.
func (q *Query) RestrictSearchableAttributes() ([]string, bool) {
	return q.listVal(keyRestrictSearchableAttrs)
}

// SetSnippetEllipsisText sets the ellipsis marker used when a snippet
// is truncated.
func (q *Query) SetSnippetEllipsisText(text string) *Query {
	return q.Set(keySnippetEllipsisText, text)
}

// SnippetEllipsisText returns the ellipsis marker.
func (q *Query) SnippetEllipsisText() (string, bool) {
	return q.stringVal(keySnippetEllipsisText)
}

// SetSynonyms controls whether synonyms configured on the index apply
// to this query. Enabled by default.
func (q *Query) SetSynonyms(enabled bool) *Query {
	return q.setBool(keySynonyms, enabled)
}

// Synonyms reports the synonym flag.
func (q *Query) Synonyms() (bool, bool) {
	return q.boolVal(keySynonyms)
}

// SetTagFilters filters hits by tag. The argument must be a JSON
// array.
func (q *Query) SetTagFilters(filters json.RawMessage) *Query {
	return q.Set(keyTagFilters, string(filters))
}

// TagFilters returns the tag filters when the stored value is a
// well-formed JSON array.
func (q *Query) TagFilters() (json.RawMessage, bool) {
	return q.jsonArrayVal(keyTagFilters)
}

// SetTypoTolerance selects the typo tolerance mode.
func (q *Query) SetTypoTolerance(t TypoTolerance) *Query {
	return q.Set(keyTypoTolerance, string(t))
}

// TypoTolerance returns the configured mode.
func (q *Query) TypoTolerance() (TypoTolerance, bool) {
	raw, ok := q.Get(keyTypoTolerance)
	if !ok || !TypoTolerance(raw).valid() {
		return "", false
	}
	return TypoTolerance(raw), true
}
