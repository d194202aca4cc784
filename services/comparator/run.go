package comparator

import (
	"context"
	"encoding/json"
	"time"

	"tinygo.org/x/drivers"

	"devicecode-comp/bus"
	"devicecode-comp/types"
)

var (
	TopicConfig = bus.T("config", "comp")
	TopicState  = bus.T("comp", "state")
	TopicValue  = bus.T("comp", "value")
)

// DefaultPeriod is how often Run reads the comparators when no period is
// given.
const DefaultPeriod = 100 * time.Millisecond

// Run serves s on conn until ctx is done. Setups arrive on config/comp; the
// status is retained on comp/state and every read that differs from the last
// published one is retained on comp/value.
func (s *Service) Run(ctx context.Context, conn *bus.Connection, period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	cfgSub := conn.Subscribe(TopicConfig)
	defer conn.Unsubscribe(cfgSub)

	s.publishState(conn, "idle", "awaiting_config", nil)

	tick := time.NewTicker(period)
	defer tick.Stop()

	var sent *types.ComparatorSnapshot
	poll := func() {
		_ = s.Update(drivers.Voltage)
		snap := s.Snapshot()
		if sent != nil && !changed(*sent, snap) {
			return
		}
		sent = &snap
		conn.Publish(conn.NewMessage(TopicValue, snap, true))
	}

	for {
		select {
		case <-ctx.Done():
			s.publishState(conn, "stopped", "context_cancelled", nil)
			return

		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return
			}
			var setup types.ComparatorSetup
			if err := decodeSetup(msg.Payload, &setup); err != nil {
				s.log.Warn("config decode failed", "err", err.Error())
				s.publishState(conn, "error", "config_decode_failed", err)
				continue
			}
			if err := s.Configure(setup); err != nil {
				s.publishState(conn, "error", "apply_config_failed", err)
				continue
			}
			s.publishState(conn, "ready", "configured", nil)
			sent = nil
			poll()

		case <-tick.C:
			poll()
		}
	}
}

func (s *Service) publishState(conn *bus.Connection, level, status string, err error) {
	st := types.ComparatorState{Level: level, Status: status, TS: s.now().UnixMilli()}
	if err != nil {
		st.Error = err.Error()
	}
	conn.Publish(conn.NewMessage(TopicState, st, true))
}

// decodeSetup accepts a setup value, a pointer to one, or anything that
// round-trips through JSON (raw bytes, strings, maps).
func decodeSetup(src any, dst *types.ComparatorSetup) error {
	switch v := src.(type) {
	case types.ComparatorSetup:
		*dst = v
		return nil
	case *types.ComparatorSetup:
		if v != nil {
			*dst = *v
		}
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}
