package wpinq

// measureEntry is one row of a measurement's count table: running
// truth and synth sums plus the noise drawn the first time this datum
// was touched.
type measureEntry struct {
	truthSum, synthSum, noise int64
}

// MeasurementState is the shared, jointly-owned state behind a
// Measurement: the per-datum count table, the caller-owned error
// accumulator, and the noise source. It is reached by the Measurement
// handle returned to the caller and by both of Measure's internal sink
// closures. The single-threaded, cooperative scheduling model (§5) is
// what makes sharing this without a mutex safe — there is never more
// than one invocation in flight against it at a time; nothing here
// enforces that beyond the doc comment, mirroring how eventloop.Loop
// documents "call only from the loop goroutine" rather than locking.
type MeasurementState[D comparable] struct {
	table     map[D]*measureEntry
	errTotal  *int64
	noise     NoiseSource
	probe     Prober
	logger    Logger
	highWater Epoch
}

func (ms *MeasurementState[D]) entry(d D) *measureEntry {
	e, ok := ms.table[d]
	if !ok {
		e = &measureEntry{noise: ms.noise.Laplace()}
		ms.table[d] = e
		ms.logger.Debug().
			Int64(`noise`, e.noise).
			Log(`measure: drew noise for newly observed datum`)
	}
	return e
}

// Measurement is a handle to a noisy, truth-vs-synth count comparison
// over data of type D, bound to a shared error accumulator.
type Measurement[D comparable] struct {
	state *MeasurementState[D]
}

// Measure attaches a terminal measurement to ds: two sink operators,
// one per side, that consolidate each incoming batch and fold it into a
// shared count table, adjusting errTotal by the change in absolute
// error their update causes, then sealing probe at that batch's epoch.
//
// Observe checks that probe has reached the highest epoch either sink
// has drained; calling Observe before that is a fatal contract
// violation.
func (ds *Dataset[D]) Measure(errTotal *int64, probe Prober, opts ...Option) *Measurement[D] {
	if errTotal == nil {
		Violate(`Dataset.Measure`, ErrNilErrorAccumulator)
	}
	if probe == nil {
		Violate(`Dataset.Measure`, ErrNilProbe)
	}
	cfg := newConfig(opts...)
	ms := &MeasurementState[D]{
		table:    make(map[D]*measureEntry),
		errTotal: errTotal,
		noise:    cfg.noiseSource,
		probe:    probe,
		logger:   cfg.logger,
	}

	sink := func(truthSide bool) func(Epoch, []Update[D]) {
		return func(epoch Epoch, updates []Update[D]) {
			if epoch > ms.highWater {
				ms.highWater = epoch
			}
			for _, u := range consolidate(updates) {
				e := ms.entry(u.Datum)
				oldAbs := absInt64(e.truthSum + e.noise - e.synthSum)
				if truthSide {
					e.truthSum += u.Weight
				} else {
					e.synthSum += u.Weight
				}
				newAbs := absInt64(e.truthSum + e.noise - e.synthSum)
				*ms.errTotal += newAbs - oldAbs
			}
			ms.probe.Seal(epoch)
		}
	}

	ds.truth.Attach(sink(true))
	ds.synth.Attach(sink(false))

	return &Measurement[D]{state: ms}
}

// Observe ensures an entry exists for d, drawing noise if this is the
// first time d has been touched by either update or observation, and
// returns truth_sum(d) + noise(d). Repeated calls within the same epoch
// return the same value, since nothing but a subsequent truth update
// changes it (§3 invariant 2).
//
// Observe panics with a *ContractViolation wrapping ErrPrematureObservation
// if probe has not yet reported quiescence up to the highest epoch
// observed by either sink.
func (m *Measurement[D]) Observe(d D) int64 {
	ms := m.state
	if !ms.probe.Reached(ms.highWater) {
		Violate(`Measurement.Observe`, ErrPrematureObservation)
	}
	e := ms.entry(d)
	return e.truthSum + e.noise
}
