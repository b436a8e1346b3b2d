package model

// Action type discriminators recognized by the interpreter. Any other value
// is treated as an unrecognized kind and interpreted to the default result.
const (
	ActionTonTransfer       = "TonTransfer"
	ActionJettonTransfer    = "JettonTransfer"
	ActionContractDeploy    = "ContractDeploy"
	ActionSmartContractExec = "SmartContractExec"
)

// RawEvent is a transaction event as returned by an indexing API. Only the
// first action is interpreted; the record is never trusted.
type RawEvent struct {
	EventID   string   `json:"event_id,omitempty"`
	Timestamp int64    `json:"timestamp,omitempty"`
	Actions   []Action `json:"actions"`
}

// Action is a tagged union over the known action kinds. The nested object
// matching Type carries the type-specific fields; mismatched or missing
// payloads fail closed in the interpreter.
type Action struct {
	Type              string                   `json:"type"`
	TonTransfer       *TonTransferAction       `json:"TonTransfer,omitempty"`
	JettonTransfer    *JettonTransferAction    `json:"JettonTransfer,omitempty"`
	ContractDeploy    *ContractDeployAction    `json:"ContractDeploy,omitempty"`
	SmartContractExec *SmartContractExecAction `json:"SmartContractExec,omitempty"`
}

// AccountRef identifies a party of an action.
type AccountRef struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	IsScam  bool   `json:"is_scam,omitempty"`
}

// TonTransferAction is a native coin transfer. Amount is in nanotons.
// Comment may arrive plain or base64-encoded; Payload is always encoded.
type TonTransferAction struct {
	Sender    AccountRef  `json:"sender"`
	Recipient AccountRef  `json:"recipient"`
	Amount    LooseNumber `json:"amount"`
	Comment   string      `json:"comment,omitempty"`
	Payload   string      `json:"payload,omitempty"`
}

// JettonTransferAction is a fungible token transfer. Amount is in the
// token's smallest units.
type JettonTransferAction struct {
	Sender    AccountRef  `json:"sender"`
	Recipient AccountRef  `json:"recipient"`
	Amount    LooseNumber `json:"amount"`
	Comment   string      `json:"comment,omitempty"`
	Jetton    JettonInfo  `json:"jetton"`
}

// JettonInfo is the token metadata nested in a jetton transfer. Decimals is
// kept loose on purpose: indexers emit it absent, negative, or garbled.
type JettonInfo struct {
	Address  string      `json:"address,omitempty"`
	Name     string      `json:"name,omitempty"`
	Symbol   string      `json:"symbol,omitempty"`
	Decimals LooseNumber `json:"decimals,omitempty"`
}

// ContractDeployAction reports a new contract deployment.
type ContractDeployAction struct {
	Address    string   `json:"address,omitempty"`
	Interfaces []string `json:"interfaces,omitempty"`
}

// SmartContractExecAction is a direct contract call.
type SmartContractExecAction struct {
	Executor    AccountRef  `json:"executor"`
	Contract    AccountRef  `json:"contract"`
	TonAttached LooseNumber `json:"ton_attached,omitempty"`
	Operation   string      `json:"operation,omitempty"`
	Payload     string      `json:"payload,omitempty"`
}
