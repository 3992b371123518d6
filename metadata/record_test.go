package metadata_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/birkland/showid"
	"github.com/birkland/showid/metadata"
	"github.com/go-test/deep"
	"github.com/google/uuid"
)

var testRecord = metadata.Record{
	Item: uuid.MustParse("8f3c1a2e-7b4d-4c1e-9a5f-2d6b8e0c4a11"),
	Identifiers: []metadata.Identifier{
		{Type: "handle", Value: "123456789/42"},
		{Type: "DOI", Value: "doi:10.5072/dspace-42"},
		{Type: "handle", Value: "123456789/43"},
	},
}

const testRecordJSON = `{
  "item": "8f3c1a2e-7b4d-4c1e-9a5f-2d6b8e0c4a11",
  "identifiers": [
    {"type": "handle", "value": "123456789/42"},
    {"type": "DOI", "value": "doi:10.5072/dspace-42"},
    {"type": "handle", "value": "123456789/43"}
  ]
}`

func TestParse(t *testing.T) {
	rec := metadata.Record{}
	if err := metadata.Parse(strings.NewReader(testRecordJSON), &rec); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(testRecord, rec); diff != nil {
		t.Error(diff)
	}
}

func TestSerializeParses(t *testing.T) {
	var buf bytes.Buffer
	if err := testRecord.Serialize(&buf); err != nil {
		t.Fatal(err)
	}

	rec := metadata.Record{}
	if err := metadata.Parse(&buf, &rec); err != nil {
		t.Logf("Raw serialized json: %s", buf.String())
		t.Fatal(err)
	}
	if diff := deep.Equal(testRecord, rec); diff != nil {
		t.Error(diff)
	}
}

func TestParseBadInput(t *testing.T) {

	err := metadata.Parse(strings.NewReader("bad json"), &metadata.Record{})
	if err == nil {
		t.Fatal("Parser should have thrown an error")
	}
}

func TestRecordLookup(t *testing.T) {
	cases := []struct {
		name     string
		record   metadata.Record
		kind     showid.Kind
		expected string
	}{
		{"firstHandle", testRecord, showid.Handle, "123456789/42"},
		{"doiAnyCase", testRecord, showid.DOI, "doi:10.5072/dspace-42"},
		{"unknownKind", testRecord, showid.Unknown, ""},
		{"none", metadata.Record{}, showid.DOI, ""},
		{"skipEmpty", metadata.Record{Identifiers: []metadata.Identifier{
			{Type: "doi", Value: ""},
			{Type: "doi", Value: "10.5072/x"},
		}}, showid.DOI, "10.5072/x"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := c.record.Lookup(c.kind); got != c.expected {
				t.Errorf("expected %q but got %q", c.expected, got)
			}
		})
	}
}

func TestRecordValidate(t *testing.T) {
	cases := []struct {
		name      string
		record    metadata.Record
		expectErr bool
	}{
		{"valid", testRecord, false},
		{"noIdentifiers", metadata.Record{Item: testRecord.Item}, false},
		{"noItem", metadata.Record{Identifiers: testRecord.Identifiers}, true},
		{"unknownType", metadata.Record{Item: testRecord.Item, Identifiers: []metadata.Identifier{
			{Type: "ark", Value: "ark:/13030/tf5p30086k"},
		}}, true},
		{"emptyValue", metadata.Record{Item: testRecord.Item, Identifiers: []metadata.Identifier{
			{Type: "doi"},
		}}, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := c.record.Validate()
			if (err != nil) != c.expectErr {
				t.Errorf("expected error: %t, got error: %v", c.expectErr, err)
			}
		})
	}
}
