package configurator

import "github.com/mvieira/go-mcp2210/mcp2210"

// NearestCompatibleBitRate discovers the SPI bit rate closest to requested
// that the chip's clock divider can actually produce, by issuing
// speculative write/read-back round trips against the volatile SPI
// settings. The divider's formula is undocumented; writing an arbitrary
// value makes the chip silently round it down, observable only by reading
// the settings back.
//
// The search starts at four times the requested rate, well above any
// achievable ceiling near the target. A read-back that differs from the
// written value jumps the probe directly to the returned (lower, and by
// construction achievable-adjacent) rate; a read-back that matches proves
// the value achievable and the probe descends by 1 Hz until it crosses the
// target. The first achievable value at or below the target is therefore
// the closest one from below, and the last achievable value recorded at or
// above it is the closest from above. Whichever of the two is strictly
// nearer to the request wins; on a tie the lower one is returned.
//
// The volatile SPI settings captured before the search are restored before
// returning, success or failure, so the device is left exactly as found.
// On failure the returned rate is 0 and the outcome carries the error.
//
// The search transiently mutates live volatile state: it must not run
// concurrently with any other access to the same device.
func (s *Session) NearestCompatibleBitRate(requested uint32) (uint32, Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	snapshot, err := s.channel.SPISettings()
	if err != nil {
		errs = append(errs, err)
		return 0, Validate("get bit rate", errs, s.channel.Disconnected())
	}

	test := snapshot
	testBitrate := 4 * requested
	nearestGE := mcp2210.BitRateMax
	nearestLE := mcp2210.BitRateMin

	for len(errs) == 0 {
		test.BitRate = testBitrate
		if err := s.channel.ConfigureSPISettings(test); err != nil {
			errs = append(errs, err)
			break
		}
		readBack, err := s.channel.SPISettings()
		if err != nil {
			errs = append(errs, err)
			break
		}

		if readBack.BitRate == testBitrate {
			if testBitrate >= requested {
				nearestGE = testBitrate
			}
			if testBitrate <= requested {
				nearestLE = testBitrate
				break
			}
			testBitrate--
		} else {
			// The chip rounded down; probe from the rate it settled on.
			testBitrate = readBack.BitRate
		}
	}

	if err := s.channel.ConfigureSPISettings(snapshot); err != nil {
		errs = append(errs, err)
	}

	outcome := Validate("get bit rate", errs, s.channel.Disconnected())
	if !outcome.OK() {
		s.logError("bit rate search failed", "requested", requested, "message", outcome.Message)
		return 0, outcome
	}

	var nearest uint32
	if nearestGE-requested < requested-nearestLE {
		nearest = nearestGE
	} else {
		nearest = nearestLE
	}
	s.logDebug("bit rate negotiated", "requested", requested, "nearest", nearest)
	return nearest, outcome
}
