package types

import (
	"encoding/json"
	"fmt"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// DecodeMsg builds a ledger Msg from its JSON form.
func DecodeMsg(msgType string, bz []byte) (chain.Msg, error) {
	if msgType != TypeMsgSend {
		return nil, fmt.Errorf("unrecognized %s message type: %s", ModuleName, msgType)
	}
	var msg MsgSend
	if err := json.Unmarshal(bz, &msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", msgType, err)
	}
	return &msg, nil
}
