package core

// AssetContract asset metadata committed on chain at issuance. External
// registries recompute the commitment from these fields, so the canonical
// serialization must be byte-for-byte reproducible: keys in sorted order,
// no whitespace, version pinned to 0.
type AssetContract struct {
	Name         string `json:"name" valid:"required"`
	Ticker       string `json:"ticker" valid:"required"`
	Precision    uint8  `json:"precision"`
	IssuerPubkey string `json:"issuer_pubkey" valid:"hexadecimal,required"`
	Domain       string `json:"domain" valid:"dns,required"`
	Version      uint   `json:"version"`
}

// ContractCommitment sha256 digest of the canonical contract serialization.
// Reversed is the same digest in reversed byte order, the form the node
// expects as the issuance contract_hash field.
type ContractCommitment struct {
	Hash     string `json:"hash"`
	Reversed string `json:"reversed"`
}

// IContractService contract committer interface
type IContractService interface {
	// Canonical render the contract in its canonical serialized form
	Canonical(contract *AssetContract) ([]byte, error)
	// Commit derive the contract commitment. Pure, no I/O.
	Commit(contract *AssetContract) (*ContractCommitment, error)
}
