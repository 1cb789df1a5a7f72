package cascade

// Observer receives session notifications. Calls happen synchronously on the
// goroutine that invoked the session operation.
type Observer interface {
	// OnUpdate is called at game start and after every successful match.
	OnUpdate(score, combo int)

	// OnGameEnded is called once per game with the score reached.
	OnGameEnded(finalScore int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Update func(score, combo int)
	Ended  func(finalScore int)
}

// OnUpdate implements Observer.
func (f ObserverFuncs) OnUpdate(score, combo int) {
	if f.Update != nil {
		f.Update(score, combo)
	}
}

// OnGameEnded implements Observer.
func (f ObserverFuncs) OnGameEnded(finalScore int) {
	if f.Ended != nil {
		f.Ended(finalScore)
	}
}

// Observers fans a notification out to each observer in order.
type Observers []Observer

// OnUpdate implements Observer.
func (o Observers) OnUpdate(score, combo int) {
	for _, obs := range o {
		obs.OnUpdate(score, combo)
	}
}

// OnGameEnded implements Observer.
func (o Observers) OnGameEnded(finalScore int) {
	for _, obs := range o {
		obs.OnGameEnded(finalScore)
	}
}

type nopObserver struct{}

func (nopObserver) OnUpdate(int, int) {}
func (nopObserver) OnGameEnded(int)   {}
