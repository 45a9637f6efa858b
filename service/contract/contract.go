package contract

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"mint/core"
	"mint/pkg/number"
)

type contractService struct{}

// New new contract service
func New() core.IContractService {
	return &contractService{}
}

// canonicalContract mirrors the registry's canonical form: keys in sorted
// order, compact separators. Field order here IS the serialization order,
// so it must stay sorted.
type canonicalContract struct {
	Entity       canonicalEntity `json:"entity"`
	IssuerPubkey string          `json:"issuer_pubkey"`
	Name         string          `json:"name"`
	Precision    uint8           `json:"precision"`
	Ticker       string          `json:"ticker"`
	Version      uint            `json:"version"`
}

type canonicalEntity struct {
	Domain string `json:"domain"`
}

// Canonical serialize the contract in its canonical form. The bytes are
// the commitment input: any reordering or whitespace change would alter
// the derived asset identity.
func (s *contractService) Canonical(c *core.AssetContract) ([]byte, error) {
	if err := validate(c); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(canonicalContract{
		Entity:       canonicalEntity{Domain: c.Domain},
		IssuerPubkey: c.IssuerPubkey,
		Name:         c.Name,
		Precision:    c.Precision,
		Ticker:       c.Ticker,
		Version:      c.Version,
	}); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Commit hash the canonical serialization and derive both commitment
// forms. The reversed form is a plain byte reversal of the digest, not a
// second hash.
func (s *contractService) Commit(c *core.AssetContract) (*core.ContractCommitment, error) {
	raw, err := s.Canonical(c)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(raw)

	reversed := make([]byte, len(digest))
	for i, b := range digest {
		reversed[len(digest)-1-i] = b
	}

	return &core.ContractCommitment{
		Hash:     hex.EncodeToString(digest[:]),
		Reversed: hex.EncodeToString(reversed),
	}, nil
}

func validate(c *core.AssetContract) error {
	if c == nil {
		return errors.New("contract: nil contract")
	}

	if c.Precision > number.MaxPrecision {
		return number.ErrInvalidPrecision
	}

	for _, v := range []string{c.Name, c.Ticker, c.IssuerPubkey, c.Domain} {
		if !utf8.ValidString(v) {
			return errors.New("contract: field is not valid utf-8")
		}
	}

	return nil
}
