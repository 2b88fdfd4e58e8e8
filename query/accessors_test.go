package query

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBoolAccessor(t *testing.T) {
	q := New()
	if _, ok := q.AdvancedSyntax(); ok {
		t.Fatalf("unset boolean must be absent")
	}
	q.SetAdvancedSyntax(true)
	if raw, _ := q.Get("advancedSyntax"); raw != "true" {
		t.Fatalf("boolean must encode as \"true\", got %q", raw)
	}
	if v, ok := q.AdvancedSyntax(); !ok || !v {
		t.Fatalf("round trip failed: %v ok=%v", v, ok)
	}
	q.SetAdvancedSyntax(false)
	if v, ok := q.AdvancedSyntax(); !ok || v {
		t.Fatalf("false round trip failed: %v ok=%v", v, ok)
	}
}

func TestBoolDecodeTolerance(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{" True ", true},
		{"false", false},
		{"1", true},
		{"-2", true},
		{"0", false},
		{" 0 ", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		q := New().Set("analytics", tc.raw)
		v, ok := q.Analytics()
		if !ok {
			t.Fatalf("%q: stored value must decode as present", tc.raw)
		}
		if v != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.raw, v, tc.want)
		}
	}
}

func TestIntAccessor(t *testing.T) {
	q := New().SetHitsPerPage(50)
	if v, ok := q.HitsPerPage(); !ok || v != 50 {
		t.Fatalf("round trip failed: %d ok=%v", v, ok)
	}
	q.Set("hitsPerPage", " 42 ")
	if v, ok := q.HitsPerPage(); !ok || v != 42 {
		t.Fatalf("whitespace must be tolerated: %d ok=%v", v, ok)
	}
	q.Set("hitsPerPage", "not-a-number")
	if _, ok := q.HitsPerPage(); ok {
		t.Fatalf("malformed integer must degrade to absent, not error")
	}
}

func TestListAccessorCanonicalJSON(t *testing.T) {
	q := New().SetFacets("brand", "price range")
	raw, _ := q.Get("facets")
	if raw != `["brand","price range"]` {
		t.Fatalf("canonical list emission must be a JSON array, got %q", raw)
	}
	got, ok := q.Facets()
	if !ok || len(got) != 2 || got[0] != "brand" || got[1] != "price range" {
		t.Fatalf("round trip failed: %v ok=%v", got, ok)
	}
}

func TestListAccessorEmpty(t *testing.T) {
	q := New().SetFacets()
	if raw, _ := q.Get("facets"); raw != "[]" {
		t.Fatalf("empty list must encode as [], got %q", raw)
	}
	got, ok := q.Facets()
	if !ok || len(got) != 0 {
		t.Fatalf("empty list round trip failed: %v ok=%v", got, ok)
	}
}

func TestListAccessorCommaFallback(t *testing.T) {
	// Legacy writers stored bare comma-joined values.
	q := New().Set("optionalWords", "blue,navy,indigo")
	got, ok := q.OptionalWords()
	if !ok || len(got) != 3 || got[0] != "blue" || got[2] != "indigo" {
		t.Fatalf("comma fallback failed: %v ok=%v", got, ok)
	}
}

func TestListAccessorNonStringJSONEntries(t *testing.T) {
	q := New().Set("analyticsTags", `["a",2,true]`)
	got, ok := q.AnalyticsTags()
	if !ok || len(got) != 3 || got[1] != "2" || got[2] != "true" {
		t.Fatalf("non-string entries must stringify: %v ok=%v", got, ok)
	}
}

func TestAttributesToRetrieveLegacyKey(t *testing.T) {
	q := New().Set("attributes", `["name","address"]`)
	got, ok := q.AttributesToRetrieve()
	if !ok || len(got) != 2 || got[0] != "name" {
		t.Fatalf("legacy key fallback failed: %v ok=%v", got, ok)
	}
	q.SetAttributesToRetrieve("email")
	got, ok = q.AttributesToRetrieve()
	if !ok || len(got) != 1 || got[0] != "email" {
		t.Fatalf("current key must win over legacy: %v ok=%v", got, ok)
	}
}

func TestEnumRoundTrips(t *testing.T) {
	q := New()

	q.SetQueryType(QueryTypePrefixLast)
	if v, ok := q.QueryType(); !ok || v != QueryTypePrefixLast {
		t.Fatalf("queryType round trip failed: %q ok=%v", v, ok)
	}
	q.Set("queryType", "prefixSome")
	if _, ok := q.QueryType(); ok {
		t.Fatalf("unknown queryType token must decode to absent")
	}

	q.SetTypoTolerance(TypoToleranceStrict)
	if v, ok := q.TypoTolerance(); !ok || v != TypoToleranceStrict {
		t.Fatalf("typoTolerance round trip failed: %q ok=%v", v, ok)
	}

	q.SetRemoveWordsIfNoResults(RemoveWordsAllOptional)
	if v, ok := q.RemoveWordsIfNoResults(); !ok || v != RemoveWordsAllOptional {
		t.Fatalf("removeWordsIfNoResults round trip failed: %q ok=%v", v, ok)
	}

	q.SetExactOnSingleWordQuery(ExactOnSingleWordAttribute)
	if v, ok := q.ExactOnSingleWordQuery(); !ok || v != ExactOnSingleWordAttribute {
		t.Fatalf("exactOnSingleWordQuery round trip failed: %q ok=%v", v, ok)
	}
}

func TestAlternativesAsExactSet(t *testing.T) {
	q := New().SetAlternativesAsExact(AlternativeIgnorePlurals, AlternativeMultiWordsSynonym)
	if raw, _ := q.Get("alternativesAsExact"); raw != "ignorePlurals,multiWordsSynonym" {
		t.Fatalf("set must encode comma-joined, got %q", raw)
	}
	got, ok := q.AlternativesAsExact()
	if !ok || len(got) != 2 || got[0] != AlternativeIgnorePlurals || got[1] != AlternativeMultiWordsSynonym {
		t.Fatalf("round trip failed: %v ok=%v", got, ok)
	}

	q.Set("alternativesAsExact", "ignorePlurals,bogus,singleWordSynonym")
	got, ok = q.AlternativesAsExact()
	if !ok || len(got) != 2 || got[1] != AlternativeSingleWordSynonym {
		t.Fatalf("unknown tokens must be skipped: %v ok=%v", got, ok)
	}

	q.SetAlternativesAsExact()
	got, ok = q.AlternativesAsExact()
	if !ok || len(got) != 0 {
		t.Fatalf("explicit empty set must decode as present and empty: %v ok=%v", got, ok)
	}
}

func TestAroundRadiusSentinel(t *testing.T) {
	q := New().SetAroundRadius(RadiusAll)
	if raw, _ := q.Get("aroundRadius"); raw != "all" {
		t.Fatalf("RadiusAll must encode as the \"all\" token, got %q", raw)
	}
	if v, ok := q.AroundRadius(); !ok || v != RadiusAll {
		t.Fatalf("sentinel decode failed: %d ok=%v", v, ok)
	}
	q.SetAroundRadius(500)
	if v, ok := q.AroundRadius(); !ok || v != 500 {
		t.Fatalf("numeric radius round trip failed: %d ok=%v", v, ok)
	}
}

func TestAroundLatLng(t *testing.T) {
	q := New().SetAroundLatLng(LatLng{Lat: 48.853409, Lng: 2.3488})
	if raw, _ := q.Get("aroundLatLng"); raw != "48.853409,2.3488" {
		t.Fatalf("unexpected encoding %q", raw)
	}
	p, ok := q.AroundLatLng()
	if !ok || p.Lat != 48.853409 || p.Lng != 2.3488 {
		t.Fatalf("round trip failed: %+v ok=%v", p, ok)
	}
	q.Set("aroundLatLng", "48.8,2.3,1.0")
	if _, ok := q.AroundLatLng(); ok {
		t.Fatalf("three fields must decode to absent")
	}
}

func TestInsideBoundingBox(t *testing.T) {
	boxes := []GeoRect{
		{P1: LatLng{11.111111, 22.222222}, P2: LatLng{33.333333, 44.444444}},
		{P1: LatLng{-1.5, -2.5}, P2: LatLng{3.5, 4.5}},
	}
	q := New().SetInsideBoundingBox(boxes...)
	got, ok := q.InsideBoundingBox()
	if !ok || len(got) != 2 {
		t.Fatalf("round trip failed: %v ok=%v", got, ok)
	}
	for i := range boxes {
		if got[i] != boxes[i] {
			t.Fatalf("box %d mismatch: got %+v want %+v", i, got[i], boxes[i])
		}
	}

	q.Set("insideBoundingBox", "1,2,3,4,5,6")
	if _, ok := q.InsideBoundingBox(); ok {
		t.Fatalf("field count not a multiple of 4 must decode to absent")
	}
	q.Set("insideBoundingBox", "1,2,x,4")
	if _, ok := q.InsideBoundingBox(); ok {
		t.Fatalf("non-numeric field must decode to absent")
	}
}

func TestPolygonMinimumVertices(t *testing.T) {
	if _, err := NewPolygon(LatLng{1, 2}, LatLng{3, 4}); !errors.Is(err, ErrPolygonTooSmall) {
		t.Fatalf("two vertices must fail fast, got %v", err)
	}
	poly, err := NewPolygon(LatLng{1, 2}, LatLng{3, 4}, LatLng{5, 6})
	if err != nil {
		t.Fatalf("three vertices must succeed: %v", err)
	}
	q := New().SetInsidePolygon(poly)
	got, ok := q.InsidePolygon()
	if !ok || len(got) != 3 || got[2] != (LatLng{5, 6}) {
		t.Fatalf("round trip failed: %v ok=%v", got, ok)
	}

	q.Set("insidePolygon", "1,2,3,4")
	if _, ok := q.InsidePolygon(); ok {
		t.Fatalf("two points must decode to absent")
	}
	q.Set("insidePolygon", "1,2,3,4,5")
	if _, ok := q.InsidePolygon(); ok {
		t.Fatalf("odd field count must decode to absent")
	}
}

func TestRemoveStopWords(t *testing.T) {
	q := New()
	if err := q.SetRemoveStopWords(true); err != nil {
		t.Fatalf("bool must be accepted: %v", err)
	}
	v, ok := q.RemoveStopWords()
	if !ok {
		t.Fatalf("expected present value")
	}
	if b, isBool := v.(bool); !isBool || !b {
		t.Fatalf("expected bool true, got %T %v", v, v)
	}

	if err := q.SetRemoveStopWords("en,fr"); err != nil {
		t.Fatalf("string must be accepted: %v", err)
	}
	v, _ = q.RemoveStopWords()
	langs, isList := v.([]string)
	if !isList || len(langs) != 2 || langs[0] != "en" || langs[1] != "fr" {
		t.Fatalf("expected language list, got %T %v", v, v)
	}

	if err := q.SetRemoveStopWords(12); err == nil {
		t.Fatalf("non bool/string must be rejected")
	}
}

func TestJSONFragmentAccessors(t *testing.T) {
	filters := json.RawMessage(`["category:Book",["author:Jane","author:John"]]`)
	q := New().SetFacetFilters(filters)
	got, ok := q.FacetFilters()
	if !ok || string(got) != string(filters) {
		t.Fatalf("round trip failed: %s ok=%v", got, ok)
	}
	q.Set("facetFilters", "{not an array}")
	if _, ok := q.FacetFilters(); ok {
		t.Fatalf("non-array JSON must decode to absent")
	}

	q.SetNumericFilters(json.RawMessage(`["price>10"]`))
	if _, ok := q.NumericFilters(); !ok {
		t.Fatalf("numericFilters round trip failed")
	}
	q.SetTagFilters(json.RawMessage(`["tag1",["tag2","tag3"]]`))
	if _, ok := q.TagFilters(); !ok {
		t.Fatalf("tagFilters round trip failed")
	}
}

func TestStringAccessors(t *testing.T) {
	q := New().
		SetFilters(`price > 10 AND brand:"apple"`).
		SetHighlightPreTag("<em>").
		SetHighlightPostTag("</em>").
		SetSnippetEllipsisText("…")
	if v, _ := q.Filters(); v != `price > 10 AND brand:"apple"` {
		t.Fatalf("filters mismatch: %q", v)
	}
	if v, _ := q.HighlightPreTag(); v != "<em>" {
		t.Fatalf("pre tag mismatch: %q", v)
	}
	if v, _ := q.HighlightPostTag(); v != "</em>" {
		t.Fatalf("post tag mismatch: %q", v)
	}
	if v, _ := q.SnippetEllipsisText(); v != "…" {
		t.Fatalf("ellipsis mismatch: %q", v)
	}
}
