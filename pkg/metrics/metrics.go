package metrics

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

const (
	namespace = "quorum_bridge"

	LabelRoute     = "route"
	LabelType      = "type"
	LabelOutcome   = "outcome"
	LabelAsset     = "asset"
	LabelCodespace = "codespace"
	LabelCode      = "code"

	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFatal    = "fatal"
)

// Metrics holds the collectors reported by the node. Each instance owns its
// registry so tests and multiple apps never collide.
type Metrics struct {
	registry *prometheus.Registry

	calls        *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	attestations prometheus.Counter
	swaps        *prometheus.CounterVec
	transfers    *prometheus.CounterVec
	lastTransfer *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Number of delivered calls by route, message type and outcome.",
		}, []string{LabelRoute, LabelType, LabelOutcome}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Number of rejected calls by registered error.",
		}, []string{LabelCodespace, LabelCode}),
		attestations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swap_attestations_total",
			Help:      "Number of accepted validator attestations.",
		}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_executed_total",
			Help:      "Number of inbound swaps released after reaching quorum.",
		}, []string{LabelAsset}),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Number of committed outbound transfers.",
		}, []string{LabelAsset}),
		lastTransfer: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_transfer_amount",
			Help:      "Amount of the most recent outbound transfer per asset.",
		}, []string{LabelAsset}),
	}

	m.registry.MustRegister(
		m.calls,
		m.rejections,
		m.attestations,
		m.swaps,
		m.transfers,
		m.lastTransfer,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ReportCall records the outcome of one call along with the events it
// committed. Events of a failed call are never passed in.
func (m *Metrics) ReportCall(route, msgType string, events sdk.Events, err error) {
	if err != nil {
		outcome := OutcomeRejected
		if types.IsFatal(err) {
			outcome = OutcomeFatal
		}
		m.calls.WithLabelValues(route, msgType, outcome).Inc()

		codespace, code, _ := errorsmod.ABCIInfo(err, false)
		m.rejections.WithLabelValues(codespace, strconv.FormatUint(uint64(code), 10)).Inc()
		return
	}

	m.calls.WithLabelValues(route, msgType, OutcomeOK).Inc()
	for _, ev := range events {
		m.reportEvent(ev)
	}
}

func (m *Metrics) reportEvent(ev sdk.Event) {
	switch ev.Type {
	case types.EventTypeSwapApproved:
		m.attestations.Inc()
	case types.EventTypeSwapExecuted:
		asset, _ := types.EventAttribute(ev, types.AttributeKeyAsset)
		m.swaps.WithLabelValues(asset).Inc()
	case types.EventTypeTransfer:
		asset, _ := types.EventAttribute(ev, types.AttributeKeyAsset)
		m.transfers.WithLabelValues(asset).Inc()

		raw, _ := types.EventAttribute(ev, types.AttributeKeyAmount)
		if amount, err := sdkmath.ParseUint(raw); err == nil && amount.BigInt().IsUint64() {
			m.lastTransfer.WithLabelValues(asset).Set(float64(amount.Uint64()))
		}
	}
}
