package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
	"github.com/luxfi/vss/pkg/party"
	"github.com/luxfi/vss/pkg/share"
	"github.com/luxfi/vss/pkg/vss"
)

// shareDoc is a share.Share projected to hex strings, the CBOR-friendly
// shape persisted to disk (mirrors the teacher's protocols/lss/config JSON
// convenience marshaling, swapped to CBOR per this module's wire stack).
type shareDoc struct {
	Identifier string `cbor:"identifier"`
	Value      string `cbor:"value"`
}

// splitDoc is the full bundle a split subcommand writes out: shares plus
// whichever verifier sets the chosen scheme produced.
type splitDoc struct {
	Scheme              string     `cbor:"scheme"`
	Threshold           int        `cbor:"threshold"`
	Limit               int        `cbor:"limit"`
	IdentifierWidth     int        `cbor:"identifier_width"`
	Shares              []shareDoc `cbor:"shares"`
	FeldmanGenerator    string     `cbor:"feldman_generator,omitempty"`
	FeldmanCommitments  []string   `cbor:"feldman_commitments,omitempty"`
	PedersenH           string     `cbor:"pedersen_h,omitempty"`
	PedersenCommitments []string   `cbor:"pedersen_commitments,omitempty"`
	BlinderShares       []shareDoc `cbor:"blinder_shares,omitempty"`
	Blinder             string     `cbor:"blinder,omitempty"`
}

func toShareDocs(shares share.Set) []shareDoc {
	out := make([]shareDoc, len(shares))
	for i, s := range shares {
		out[i] = shareDoc{
			Identifier: hex.EncodeToString(s.ID.Bytes()),
			Value:      hex.EncodeToString(s.Value.Bytes()),
		}
	}
	return out
}

func fromShareDocs(f field.Field, width int, docs []shareDoc) (share.Set, error) {
	out := make(share.Set, len(docs))
	for i, d := range docs {
		idBytes, err := hex.DecodeString(d.Identifier)
		if err != nil {
			return nil, fmt.Errorf("share %d: decoding identifier: %w", i, err)
		}
		valueBytes, err := hex.DecodeString(d.Value)
		if err != nil {
			return nil, fmt.Errorf("share %d: decoding value: %w", i, err)
		}
		id, err := party.FromBytes(f, width, idBytes)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		value, err := f.ScalarFromBytes(valueBytes)
		if err != nil {
			return nil, fmt.Errorf("share %d: decoding value scalar: %w", i, err)
		}
		out[i] = share.New(id, value)
	}
	return out, nil
}

func elementsToHex(elements []group.Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = hex.EncodeToString(e.Bytes())
	}
	return out
}

func elementsFromHex(grp group.Group, hexes []string) ([]group.Element, error) {
	out := make([]group.Element, len(hexes))
	for i, h := range hexes {
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("commitment %d: decoding: %w", i, err)
		}
		el, err := grp.ElementFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("commitment %d: parsing: %w", i, err)
		}
		out[i] = el
	}
	return out, nil
}

func writeSplitDoc(path string, doc splitDoc) error {
	bytes, err := cbor.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding split output: %w", err)
	}
	return os.WriteFile(path, bytes, 0o600)
}

func readSplitDoc(path string) (splitDoc, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return splitDoc{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc splitDoc
	if err := cbor.Unmarshal(bytes, &doc); err != nil {
		return splitDoc{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// feldmanVerifierSetFromDoc reconstructs a vss.VerifierSet from its
// hex-encoded persisted form.
func feldmanVerifierSetFromDoc(grp group.Group, generatorHex string, commitmentHexes []string) (*vss.VerifierSet, error) {
	genBytes, err := hex.DecodeString(generatorHex)
	if err != nil {
		return nil, fmt.Errorf("decoding feldman generator: %w", err)
	}
	generator, err := grp.ElementFromBytes(genBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing feldman generator: %w", err)
	}
	commitments, err := elementsFromHex(grp, commitmentHexes)
	if err != nil {
		return nil, err
	}
	return &vss.VerifierSet{Generator: generator, Commitments: commitments}, nil
}

// pedersenVerifierSet folds a reconstructed Feldman verifier set together
// with the decoded Pedersen blinding generator and dual commitments into the
// combined verifier set vss.PedersenVerifierSet.VerifyShare expects.
func pedersenVerifierSet(feldman *vss.VerifierSet, h group.Element, commitments []group.Element) *vss.PedersenVerifierSet {
	return &vss.PedersenVerifierSet{
		Generator:   feldman.Generator,
		H:           h,
		Commitments: commitments,
	}
}
