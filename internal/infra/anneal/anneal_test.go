package anneal

import (
	"math"
	"math/rand"
	"testing"
)

func TestSetProgress_Endpoints(t *testing.T) {
	a := New(200, 10, rand.New(rand.NewSource(1)))

	a.SetProgress(0)
	if math.Abs(a.Temperature()-200) > 1e-9 {
		t.Errorf("Temperature at tau=0 = %v, want 200", a.Temperature())
	}

	a.SetProgress(1)
	if math.Abs(a.Temperature()-10) > 1e-9 {
		t.Errorf("Temperature at tau=1 = %v, want 10", a.Temperature())
	}
}

func TestAccept_AlwaysAcceptsImprovement(t *testing.T) {
	a := New(200, 10, rand.New(rand.NewSource(1)))
	a.SetProgress(0.5)
	if !a.Accept(0) {
		t.Error("Accept(0) should always be true")
	}
	if !a.Accept(5) {
		t.Error("Accept(positive delta) should always be true")
	}
}

func TestAccept_WorsePairsAcceptanceShrinksAsTempCools(t *testing.T) {
	const trials = 20000
	const delta = -5.0

	count := func(temp float64) int {
		a := New(temp, temp, rand.New(rand.NewSource(42)))
		a.SetProgress(0) // temp stays fixed at t0 == t1
		n := 0
		for i := 0; i < trials; i++ {
			if a.Accept(delta) {
				n++
			}
		}
		return n
	}

	hot := count(200)
	cold := count(10)
	if cold >= hot {
		t.Errorf("acceptances at low temp (%d) should be fewer than at high temp (%d)", cold, hot)
	}
}

func TestAccept_ZeroTemperatureRejectsWorse(t *testing.T) {
	a := New(0, 0, rand.New(rand.NewSource(1)))
	a.SetProgress(0)
	if a.Accept(-1) {
		t.Error("Accept at zero temperature should reject any worsening move")
	}
}
