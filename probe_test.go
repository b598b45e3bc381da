package wpinq

// fakeProbe is a minimal Prober test double: Reached defaults to true
// immediately (mirroring this package's synchronous propagation), or
// can be pinned open to exercise the premature-observation contract
// violation.
type fakeProbe struct {
	sealed    Epoch
	neverSeal bool
}

func (p *fakeProbe) Seal(epoch Epoch) {
	if p.neverSeal {
		return
	}
	if epoch > p.sealed {
		p.sealed = epoch
	}
}

func (p *fakeProbe) Reached(epoch Epoch) bool {
	return p.sealed >= epoch
}
