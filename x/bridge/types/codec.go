package types

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

var msgFactories = map[string]func() chain.Msg{
	TypeMsgTransferOwnership:      func() chain.Msg { return &MsgTransferOwnership{} },
	TypeMsgSetFee:                 func() chain.Msg { return &MsgSetFee{} },
	TypeMsgSetThreshold:           func() chain.Msg { return &MsgSetThreshold{} },
	TypeMsgSetTxExpirationTime:    func() chain.Msg { return &MsgSetTxExpirationTime{} },
	TypeMsgSetMinAmountToTransfer: func() chain.Msg { return &MsgSetMinAmountToTransfer{} },
	TypeMsgSetMaxValidatorCount:   func() chain.Msg { return &MsgSetMaxValidatorCount{} },
	TypeMsgAddValidator:           func() chain.Msg { return &MsgAddValidator{} },
	TypeMsgRemoveValidator:        func() chain.Msg { return &MsgRemoveValidator{} },
	TypeMsgAddToken:               func() chain.Msg { return &MsgAddToken{} },
	TypeMsgRemoveToken:            func() chain.Msg { return &MsgRemoveToken{} },
	TypeMsgSetDailyLimit:          func() chain.Msg { return &MsgSetDailyLimit{} },
	TypeMsgTransferCoin:           func() chain.Msg { return &MsgTransferCoin{} },
	TypeMsgTransferToken:          func() chain.Msg { return &MsgTransferToken{} },
	TypeMsgRequestSwap:            func() chain.Msg { return &MsgRequestSwap{} },
	TypeMsgRequestRewards:         func() chain.Msg { return &MsgRequestRewards{} },
	TypeMsgCleanRequestSwaps:      func() chain.Msg { return &MsgCleanRequestSwaps{} },
}

// MsgTypes lists every message type handled by the module, sorted.
func MsgTypes() []string {
	return slices.Sorted(maps.Keys(msgFactories))
}

// DecodeMsg builds the Msg registered under msgType from its JSON form.
func DecodeMsg(msgType string, bz []byte) (chain.Msg, error) {
	factory, ok := msgFactories[msgType]
	if !ok {
		return nil, fmt.Errorf("unrecognized %s message type: %s", ModuleName, msgType)
	}
	msg := factory()
	if err := json.Unmarshal(bz, msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", msgType, err)
	}
	return msg, nil
}
