// window-demo brackets PA1 between VREFINT/4 and 3·VREFINT/4 with COMP1 and
// COMP2. The setup goes to the comparator service over the bus and every
// change of the window state is logged.
package main

import (
	"context"
	"time"

	"devicecode-comp/bus"
	"devicecode-comp/drivers/comp"
	"devicecode-comp/services/comparator"
	"devicecode-comp/types"
	"devicecode-comp/x/logx"
)

var setup = types.ComparatorSetup{
	Window: &types.WindowParams{
		Upper:          "comp1",
		Input:          "PA1",
		LowerThreshold: "vrefint_1_4",
		UpperThreshold: "vrefint_3_4",
		Electrical:     types.Electrical{Hysteresis: "low", Power: "medium_speed"},
		Enable:         true,
	},
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	log := logx.New("main")

	p, ok := comp.Take()
	if !ok {
		log.Error("COMP block already taken")
		return
	}
	c1, c2 := p.Split(comp.DefaultClockControl())
	log.Info("comparators up")

	b := bus.NewBus(16)
	conn := b.NewConnection("main")

	stateSub := conn.Subscribe(comparator.TopicState)
	defer conn.Unsubscribe(stateSub)
	valueSub := conn.Subscribe(comparator.TopicValue)
	defer conn.Unsubscribe(valueSub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go comparator.New(c1, c2).Run(ctx, conn, 500*time.Millisecond)

	conn.Publish(conn.NewMessage(comparator.TopicConfig, setup, false))

	for {
		select {
		case m := <-stateSub.Channel():
			st := m.Payload.(types.ComparatorState)
			if st.Level == "error" {
				log.Error("comparator service", "status", st.Status, "err", st.Error)
				continue
			}
			log.Info("comparator service", "level", st.Level, "status", st.Status)
		case m := <-valueSub.Channel():
			w := m.Payload.(types.ComparatorSnapshot).Window
			if w == nil {
				continue
			}
			log.Info("window", "inside", logx.Bool(w.Inside), "above_lower", logx.Bool(w.AboveLower))
		}
	}
}
