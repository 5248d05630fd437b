package core

// AssetKind role of an asset in the ledger
type AssetKind int

const (
	// AssetKindUnsupported neither base nor collateral
	AssetKindUnsupported AssetKind = iota
	// AssetKindBase the borrowable asset
	AssetKindBase
	// AssetKindCollateral the asset pledged against borrows
	AssetKindCollateral
)

func (k AssetKind) String() string {
	switch k {
	case AssetKindBase:
		return "base"
	case AssetKindCollateral:
		return "collateral"
	default:
		return "unsupported"
	}
}

// Asset supported asset
type Asset struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals int32  `json:"decimals,omitempty"`
}

// Assets the two assets a ledger is created with
type Assets struct {
	Base       Asset `json:"base"`
	Collateral Asset `json:"collateral"`
}

// Kind resolve the role of assetID
func (a Assets) Kind(assetID string) AssetKind {
	switch assetID {
	case "":
		return AssetKindUnsupported
	case a.Base.ID:
		return AssetKindBase
	case a.Collateral.ID:
		return AssetKindCollateral
	default:
		return AssetKindUnsupported
	}
}

// Supported is base or collateral
func (a Assets) Supported(assetID string) bool {
	return a.Kind(assetID) != AssetKindUnsupported
}

// Find asset by id
func (a Assets) Find(assetID string) (Asset, bool) {
	switch a.Kind(assetID) {
	case AssetKindBase:
		return a.Base, true
	case AssetKindCollateral:
		return a.Collateral, true
	default:
		return Asset{}, false
	}
}
