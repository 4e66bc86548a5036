package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

const (
	EventTypeTransfer          = "transfer"
	EventTypeSwapApproved      = "swap_approved"
	EventTypeSwapExecuted      = "swap_executed"
	EventTypeRewardsClaimed    = "rewards_claimed"
	EventTypeValidatorAdded    = "validator_added"
	EventTypeValidatorRemoved  = "validator_removed"
	EventTypeTokenAdded        = "token_added"
	EventTypeTokenRemoved      = "token_removed"
	EventTypeDailyLimitSet     = "daily_limit_set"
	EventTypeConfigUpdated     = "config_updated"
	EventTypePendingSwapsPurge = "pending_swaps_purged"

	AttributeKeyReceiver      = "receiver"
	AttributeKeySender        = "sender"
	AttributeKeyAmount        = "amount"
	AttributeKeyAsset         = "asset"
	AttributeKeyTransferNonce = "transfer_nonce"
	AttributeKeyTimestamp     = "timestamp"
	AttributeKeyHash          = "hash"
	AttributeKeyValidator     = "validator"
	AttributeKeyApprovals     = "approvals"
	AttributeKeyLimit         = "limit"
	AttributeKeyParam         = "param"
	AttributeKeyValue         = "value"
	AttributeKeyCount         = "count"
)

// TransferRecord is the outbound transfer a relayer must deliver on the
// remote chain. Receiver is free-form since it names a remote account.
type TransferRecord struct {
	Receiver      string        `json:"receiver"`
	Sender        chain.Address `json:"sender"`
	Amount        sdkmath.Uint  `json:"amount"`
	Asset         chain.Address `json:"asset"`
	TransferNonce sdkmath.Uint  `json:"transfer_nonce"`
	Timestamp     uint64        `json:"timestamp"`
}

func (r TransferRecord) Event() sdk.Event {
	return sdk.NewEvent(EventTypeTransfer,
		sdk.NewAttribute(AttributeKeyReceiver, r.Receiver),
		sdk.NewAttribute(AttributeKeySender, r.Sender.Hex()),
		sdk.NewAttribute(AttributeKeyAmount, r.Amount.String()),
		sdk.NewAttribute(AttributeKeyAsset, r.Asset.Hex()),
		sdk.NewAttribute(AttributeKeyTransferNonce, r.TransferNonce.String()),
		sdk.NewAttribute(AttributeKeyTimestamp, strconv.FormatUint(r.Timestamp, 10)),
	)
}

// EventAttribute returns the value of the first attribute named key.
func EventAttribute(ev sdk.Event, key string) (string, bool) {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// TransferRecordFromEvent parses an event emitted by TransferRecord.Event.
func TransferRecordFromEvent(ev sdk.Event) (TransferRecord, bool) {
	if ev.Type != EventTypeTransfer {
		return TransferRecord{}, false
	}

	var (
		r   TransferRecord
		err error
	)
	attr := func(key string) string {
		v, _ := EventAttribute(ev, key)
		return v
	}

	r.Receiver = attr(AttributeKeyReceiver)
	if r.Sender, err = chain.AddressFromHex(attr(AttributeKeySender)); err != nil {
		return TransferRecord{}, false
	}
	if r.Asset, err = chain.AddressFromHex(attr(AttributeKeyAsset)); err != nil {
		return TransferRecord{}, false
	}
	if r.Amount, err = sdkmath.ParseUint(attr(AttributeKeyAmount)); err != nil {
		return TransferRecord{}, false
	}
	if r.TransferNonce, err = sdkmath.ParseUint(attr(AttributeKeyTransferNonce)); err != nil {
		return TransferRecord{}, false
	}
	if r.Timestamp, err = strconv.ParseUint(attr(AttributeKeyTimestamp), 10, 64); err != nil {
		return TransferRecord{}, false
	}
	return r, true
}
