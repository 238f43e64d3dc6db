package latency

import (
	"testing"
	"time"
)

func TestWait(t *testing.T) {
	var slept []time.Duration
	record := func(d time.Duration) { slept = append(slept, d) }

	on := &Simulator{enabled: true, sleep: record}
	on.Wait(Install)

	off := &Simulator{enabled: false, sleep: record}
	off.Wait(Install)

	var none *Simulator
	none.Wait(Install)

	if len(slept) != 1 || slept[0] != Install {
		t.Errorf("slept = %v, want [%v]", slept, Install)
	}
}
