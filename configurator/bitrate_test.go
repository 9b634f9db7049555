package configurator

import (
	"testing"
)

// thousandsDivider models a chip whose divider produces exactly the
// multiples of 1000 Hz, rounding every other request down.
func thousandsDivider(rate uint32) uint32 {
	return rate - rate%1000
}

func TestNearestCompatibleBitRateExact(t *testing.T) {
	sim := newSimChannel()
	sim.divider = thousandsDivider
	session := NewSession(sim)

	before := sim.volatileSPI

	rate, outcome := session.NearestCompatibleBitRate(1_000_000)
	if !outcome.OK() {
		t.Fatalf("search failed: %q", outcome.Message)
	}
	if rate != 1_000_000 {
		t.Errorf("rate = %d, want 1000000", rate)
	}
	if sim.volatileSPI != before {
		t.Errorf("volatile SPI settings not restored: %+v, want %+v", sim.volatileSPI, before)
	}
}

func TestNearestCompatibleBitRateTieResolvesDown(t *testing.T) {
	sim := newSimChannel()
	sim.divider = thousandsDivider
	session := NewSession(sim)

	// 999500 sits exactly between the achievable 999000 and 1000000.
	rate, outcome := session.NearestCompatibleBitRate(999_500)
	if !outcome.OK() {
		t.Fatalf("search failed: %q", outcome.Message)
	}
	if rate != 999_000 {
		t.Errorf("rate = %d, want 999000 (ties resolve to the lower rate)", rate)
	}
}

func TestNearestCompatibleBitRateNearestAbove(t *testing.T) {
	sim := newSimChannel()
	sim.divider = thousandsDivider
	session := NewSession(sim)

	// 999600 is 400 Hz below 1000000 and 600 Hz above 999000.
	rate, outcome := session.NearestCompatibleBitRate(999_600)
	if !outcome.OK() {
		t.Fatalf("search failed: %q", outcome.Message)
	}
	if rate != 1_000_000 {
		t.Errorf("rate = %d, want 1000000", rate)
	}
}

func TestNearestCompatibleBitRateIdempotent(t *testing.T) {
	sim := newSimChannel()
	sim.divider = thousandsDivider
	session := NewSession(sim)

	first, outcome := session.NearestCompatibleBitRate(123_456)
	if !outcome.OK() {
		t.Fatalf("first search failed: %q", outcome.Message)
	}
	second, outcome := session.NearestCompatibleBitRate(123_456)
	if !outcome.OK() {
		t.Fatalf("second search failed: %q", outcome.Message)
	}
	if first != second {
		t.Errorf("results differ across identical calls: %d then %d", first, second)
	}
	if first != 123_000 {
		t.Errorf("rate = %d, want 123000", first)
	}
}

func TestNearestCompatibleBitRateRestoresOnProbeFailure(t *testing.T) {
	sim := newSimChannel()
	sim.divider = thousandsDivider
	sim.failSPIWriteAt = 3 // fail mid-search, after a couple of probes
	session := NewSession(sim)

	before := sim.volatileSPI

	rate, outcome := session.NearestCompatibleBitRate(1_000_000)
	if outcome.OK() {
		t.Fatal("search succeeded, want failure")
	}
	if rate != 0 {
		t.Errorf("rate = %d, want 0 on failure", rate)
	}
	if sim.volatileSPI != before {
		t.Errorf("volatile SPI settings not restored after failure: %+v, want %+v", sim.volatileSPI, before)
	}
}

func TestNearestCompatibleBitRateSnapshotReadFailure(t *testing.T) {
	sim := newSimChannel()
	sim.failing["SPISettings"] = errSimulated
	session := NewSession(sim)

	rate, outcome := session.NearestCompatibleBitRate(1_000_000)
	if outcome.OK() {
		t.Fatal("search succeeded, want failure")
	}
	if rate != 0 {
		t.Errorf("rate = %d, want 0 on failure", rate)
	}
	// Without a snapshot there is nothing to probe or restore.
	if got := sim.countCalls("ConfigureSPISettings"); got != 0 {
		t.Errorf("ConfigureSPISettings called %d times, want 0", got)
	}
}

func TestNearestCompatibleBitRateResultIsAchievable(t *testing.T) {
	sim := newSimChannel()
	sim.divider = thousandsDivider
	session := NewSession(sim)

	for _, requested := range []uint32{5_000, 250_001, 1_999_999, 3_141_592} {
		rate, outcome := session.NearestCompatibleBitRate(requested)
		if !outcome.OK() {
			t.Fatalf("search for %d failed: %q", requested, outcome.Message)
		}
		if thousandsDivider(rate) != rate {
			t.Errorf("rate %d for request %d is not achievable", rate, requested)
		}
	}
}
