package assetpair

// AssetPair is a tradable instrument of the dictionary.
type AssetPair struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	BaseAssetID      string `json:"baseAssetId"`
	QuotingAssetID   string `json:"quotingAssetId"`
	Accuracy         int    `json:"accuracy"`
	InvertedAccuracy int    `json:"invertedAccuracy"`
	IsDisabled       bool   `json:"isDisabled"`
}
