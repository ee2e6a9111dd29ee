package snakex

// TurnState is the top-level game state.
type TurnState int

const (
	TurnStart TurnState = iota
	TurnCreate
	TurnWait
	TurnAction
	TurnDestroy
)

// String returns the state name.
func (s TurnState) String() string {
	switch s {
	case TurnStart:
		return "Start"
	case TurnCreate:
		return "Create"
	case TurnWait:
		return "Wait"
	case TurnAction:
		return "Action"
	case TurnDestroy:
		return "Destroy"
	default:
		return "Unknown"
	}
}

// PauseState is the orthogonal pause machine state.
type PauseState int

const (
	Resumed PauseState = iota
	Pausing
	Paused
	Resuming
)

// String returns the state name.
func (s PauseState) String() string {
	switch s {
	case Resumed:
		return "Resumed"
	case Pausing:
		return "Pause"
	case Paused:
		return "Paused"
	case Resuming:
		return "Resume"
	default:
		return "Unknown"
	}
}

// FoodState records whether the resolved turn ate the food.
type FoodState int

const (
	FoodNormal FoodState = iota
	FoodNew
)

// ShineState records the shine sub-transition of the resolved turn.
type ShineState int

const (
	ShineIdle           ShineState = iota
	ShineNew                       // a shine food is being consumed
	ShineRemoveObstacle            // a hazard is being devoured
)

// String returns the state name.
func (s ShineState) String() string {
	switch s {
	case ShineNew:
		return "NewShine"
	case ShineRemoveObstacle:
		return "RemoveObstacle"
	default:
		return "Normal"
	}
}
