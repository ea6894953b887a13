package model

// HeaderResult is the verbose getblockheader response.
type HeaderResult struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Height            uint32  `json:"height"`
	Version           int32   `json:"version"`
	VersionHex        string  `json:"versionHex"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             uint32  `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	Chainwork         string  `json:"chainwork"`
	PreviousBlockHash string  `json:"previousblockhash,omitempty"`
	NextBlockHash     string  `json:"nextblockhash,omitempty"`
}

// BlockchainInfo is the getblockchaininfo response.
type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               uint32  `json:"blocks"`
	Headers              uint32  `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	Chainwork            string  `json:"chainwork"`
	Pruned               bool    `json:"pruned"`
	Warnings             string  `json:"warnings"`
}

// PeerInfo is one entry of the getpeerinfo response.
type PeerInfo struct {
	Addr           string `json:"addr"`
	Subver         string `json:"subver"`
	ConnTime       int64  `json:"conntime"`
	StartingHeight *int32 `json:"startingheight"`
	Network        string `json:"network"`
}

// ScriptPubKeyResult describes a locking script.
type ScriptPubKeyResult struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   int      `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses,omitempty"`
}

// TxOutResult is the gettxout response.
type TxOutResult struct {
	BestBlock     string             `json:"bestblock"`
	Confirmations int64              `json:"confirmations"`
	Value         float64            `json:"value"`
	ScriptPubKey  ScriptPubKeyResult `json:"scriptPubKey"`
	Coinbase      bool               `json:"coinbase"`
}

// MempoolInfo is the getmempoolinfo response.
type MempoolInfo struct {
	Loaded bool  `json:"loaded"`
	Size   int   `json:"size"`
	Bytes  int64 `json:"bytes"`
}

// MempoolEntry is one verbose getrawmempool entry.
type MempoolEntry struct {
	VSize  int64  `json:"vsize"`
	Time   int64  `json:"time"`
	Height uint32 `json:"height"`
}

// AddressValidation is the validateaddress response.
type AddressValidation struct {
	IsValid bool   `json:"isvalid"`
	Address string `json:"address,omitempty"`
}

// TxOutSetInfo is the gettxoutsetinfo response.
type TxOutSetInfo struct {
	Height      uint32  `json:"height"`
	BestBlock   string  `json:"bestblock"`
	TxOuts      int64   `json:"txouts"`
	TotalAmount float64 `json:"total_amount"`
}
